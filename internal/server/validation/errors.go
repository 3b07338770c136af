package validation

import (
	"strings"

	"github.com/dmitrijs2005/motorpool/internal/common"
)

// Messages shown to API clients.
const (
	MsgInvalidEmail     = "Email inválido."
	MsgShortSecret      = "Senha não pode ter menos que 6 caracteres."
	MsgLongEmail        = "Email não pode ter mais que 255 caracteres."
	MsgLongSecret       = "Senha não pode ter mais que 50 caracteres."
	MsgInvalidRole      = "Perfil inválido."
	MsgEmailTaken       = "Email já cadastrado."
	MsgNullVehicle      = "Dados do veículo não podem ser nulos."
	MsgShortVehicleName = "Nome do veículo deve ter pelo menos 3 caracteres."
	MsgShortModel       = "Modelo do veículo deve ter pelo menos 3 caracteres."
	MsgLongVehicleName  = "Nome do veículo não pode ter mais que 150 caracteres."
	MsgLongModel        = "Modelo do veículo não pode ter mais que 100 caracteres."
	MsgVehicleYear      = "Ano do veículo deve ser entre 1886 e o ano atual."
	MsgInvalidBody      = "Corpo da requisição inválido."
	MsgInvalidID        = "Id inválido."
	MsgInvalidPage      = "Página inválida."
)

// Errors is an itemized list of validation messages. It matches
// common.ErrorValidation under errors.Is.
type Errors struct {
	Messages []string
}

func NewErrors(messages ...string) *Errors {
	return &Errors{Messages: messages}
}

func (e *Errors) Error() string {
	return "validation failed: " + strings.Join(e.Messages, " ")
}

func (e *Errors) Unwrap() error {
	return common.ErrorValidation
}
