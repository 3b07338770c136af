package rest

import "github.com/dmitrijs2005/motorpool/internal/server/models"

type loginRequest struct {
	Email  string `json:"Email"`
	Secret string `json:"Senha"`
}

type loginResponse struct {
	Email string      `json:"Email"`
	Role  models.Role `json:"Perfil"`
	Token string      `json:"Token"`
}

type administratorRequest struct {
	Email  string `json:"Email" validate:"required,contains=@,max=255"`
	Secret string `json:"Senha" validate:"min=6,max=50"`
	Role   string `json:"Perfil" validate:"role"`
}

func (r *administratorRequest) model(id int64) *models.Administrator {
	// Role was checked by the validator.
	role, _ := models.ParseRole(r.Role)
	return &models.Administrator{ID: id, Email: r.Email, Secret: r.Secret, Role: role}
}

// administratorView never exposes the secret.
type administratorView struct {
	ID    int64       `json:"Id"`
	Email string      `json:"Email"`
	Role  models.Role `json:"Perfil"`
}

func newAdministratorView(a *models.Administrator) administratorView {
	return administratorView{ID: a.ID, Email: a.Email, Role: a.Role}
}

type vehicleRequest struct {
	Name  string `json:"Nome" validate:"min=3,max=150"`
	Model string `json:"Modelo" validate:"min=3,max=100"`
	Year  int    `json:"Ano" validate:"vehicle_year"`
}

func (r *vehicleRequest) model(id int64) *models.Vehicle {
	return &models.Vehicle{ID: id, Name: r.Name, Model: r.Model, Year: r.Year}
}

type vehicleView struct {
	ID    int64  `json:"Id"`
	Name  string `json:"Nome"`
	Model string `json:"Modelo"`
	Year  int    `json:"Ano"`
}

func newVehicleView(v *models.Vehicle) vehicleView {
	return vehicleView{ID: v.ID, Name: v.Name, Model: v.Model, Year: v.Year}
}

type errorResponse struct {
	Messages []string `json:"Mensagens"`
}

type homeResponse struct {
	Message string `json:"Mensagem"`
	Version string `json:"Versao"`
}

type healthResponse struct {
	Status string `json:"status"`
}
