package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminInput struct {
	Email  string `json:"Email" validate:"required,contains=@,max=255"`
	Secret string `json:"Senha" validate:"min=6,max=50"`
	Role   string `json:"Perfil" validate:"role"`
}

type vehicleInput struct {
	Name  string `json:"Nome" validate:"min=3,max=150"`
	Model string `json:"Modelo" validate:"min=3,max=100"`
	Year  int    `json:"Ano" validate:"vehicle_year"`
}

type otherInput struct {
	Code string `json:"Codigo" validate:"required"`
}

func newValidator() *Validator {
	return New(WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func messages(t *testing.T, err error) []string {
	t.Helper()
	var verrs *Errors
	require.True(t, errors.As(err, &verrs), "expected *Errors, got %v", err)
	assert.True(t, errors.Is(err, common.ErrorValidation))
	return verrs.Messages
}

func TestStruct_Administrator(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name string
		in   adminInput
		want []string
	}{
		{name: "valid admin", in: adminInput{"a@b.com", "123456", "Admin"}},
		{name: "valid editor", in: adminInput{"e@b", "abcdefg", "Editor"}},
		{name: "missing at", in: adminInput{"ab.com", "123456", "Admin"}, want: []string{MsgInvalidEmail}},
		{name: "empty email", in: adminInput{"", "123456", "Editor"}, want: []string{MsgInvalidEmail}},
		{name: "short secret", in: adminInput{"a@b", "12345", "Admin"}, want: []string{MsgShortSecret}},
		{name: "longest email", in: adminInput{strings.Repeat("a", 253) + "@b", "123456", "Admin"}},
		{name: "email too long", in: adminInput{strings.Repeat("a", 254) + "@b", "123456", "Admin"}, want: []string{MsgLongEmail}},
		{name: "longest secret", in: adminInput{"a@b", strings.Repeat("s", 50), "Admin"}},
		{name: "secret too long", in: adminInput{"a@b", strings.Repeat("s", 51), "Admin"}, want: []string{MsgLongSecret}},
		{name: "lowercase role", in: adminInput{"a@b", "123456", "admin"}, want: []string{MsgInvalidRole}},
		{
			name: "everything wrong",
			in:   adminInput{},
			want: []string{MsgInvalidEmail, MsgShortSecret, MsgInvalidRole},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, messages(t, err))
		})
	}
}

func TestStruct_Vehicle(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name string
		in   vehicleInput
		want []string
	}{
		{name: "fusca", in: vehicleInput{"Fusca", "1.0", 1980}},
		{name: "first year", in: vehicleInput{"Benz", "Patent", 1886}},
		{name: "current year", in: vehicleInput{"Onix", "Plus", 2025}},
		{name: "next year", in: vehicleInput{"Onix", "Plus", 2026}, want: []string{MsgVehicleYear}},
		{name: "longest name", in: vehicleInput{strings.Repeat("n", 150), strings.Repeat("m", 100), 2000}},
		{
			name: "name and model too long",
			in:   vehicleInput{strings.Repeat("n", 151), strings.Repeat("m", 101), 2000},
			want: []string{MsgLongVehicleName, MsgLongModel},
		},
		{name: "multibyte name at limit", in: vehicleInput{strings.Repeat("é", 150), "Base", 2000}},
		{name: "multibyte name", in: vehicleInput{"Ká", "Sport", 2000}, want: []string{MsgShortVehicleName}},
		{
			name: "three failures",
			in:   vehicleInput{"Ca", "X", 1800},
			want: []string{MsgShortVehicleName, MsgShortModel, MsgVehicleYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, messages(t, err))
		})
	}
}

func TestStruct_FallbackMessage(t *testing.T) {
	err := newValidator().Struct(otherInput{})
	assert.Equal(t, []string{"Codigo inválido."}, messages(t, err))
}

func TestStruct_NotAStruct(t *testing.T) {
	err := newValidator().Struct(42)
	require.Error(t, err)
	var verrs *Errors
	assert.False(t, errors.As(err, &verrs))
}

func TestErrors(t *testing.T) {
	err := NewErrors(MsgNullVehicle)
	assert.Equal(t, []string{MsgNullVehicle}, err.Messages)
	assert.Contains(t, err.Error(), MsgNullVehicle)
	assert.ErrorIs(t, err, common.ErrorValidation)
}
