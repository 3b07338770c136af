// Package validation checks request payloads with go-playground/validator
// and turns failures into client-facing messages, one per invalid field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// FirstVehicleYear is the earliest accepted vehicle year.
const FirstVehicleYear = 1886

// fieldMessages maps the JSON name of a field, optionally suffixed with
// ".<tag>", to its message. The suffixed entry wins.
var fieldMessages = map[string]string{
	"Email.max":  MsgLongEmail,
	"Senha.max":  MsgLongSecret,
	"Nome.max":   MsgLongVehicleName,
	"Modelo.max": MsgLongModel,

	"Email":  MsgInvalidEmail,
	"Senha":  MsgShortSecret,
	"Perfil": MsgInvalidRole,
	"Nome":   MsgShortVehicleName,
	"Modelo": MsgShortModel,
	"Ano":    MsgVehicleYear,
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Validator)

// WithClock replaces time.Now when checking vehicle years.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New returns a Validator with the "role" and "vehicle_year" tags
// registered and field names taken from json tags.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("role", validRole)
	_ = v.validate.RegisterValidation("vehicle_year", v.validYear)

	return v
}

// Struct validates s. It returns nil, an *Errors listing one message per
// failing field in declaration order, or a plain error if s is not a struct.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &Errors{Messages: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = fieldMessages[fe.Field()]
		}
		if !ok {
			msg = fmt.Sprintf("%s inválido.", fe.Field())
		}
		out.Messages = append(out.Messages, msg)
	}

	return out
}

func validRole(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := models.ParseRole(fl.Field().String())
	return err == nil
}

func (v *Validator) validYear(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		year := fl.Field().Int()
		return year >= FirstVehicleYear && year <= int64(v.now().Year())
	default:
		return false
	}
}
