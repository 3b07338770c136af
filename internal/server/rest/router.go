package rest

import (
	"net/http"

	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and the route table.
//
//	GET    /                          public
//	GET    /health                    public
//	POST   /administradores/login     public
//	POST   /administrador             Admin
//	GET    /administradores           Admin
//	GET    /administrador/:id         Admin
//	PUT    /administradores/:id       Admin
//	DELETE /administrador/:id         Admin
//	POST   /veiculo                   Admin, Editor
//	GET    /veiculos                  Admin, Editor
//	GET    /veiculo/:id               Admin, Editor
//	PUT    /veiculos/:id              Admin
//	DELETE /veiculos/:id              Admin
func NewRouter(d Deps) *gin.Engine {
	h := NewHandler(d)

	r := gin.New()
	r.Use(requestID(), accessLog(d.Logger), recovery(d.Logger))

	r.NoRoute(func(c *gin.Context) {
		abortWithMessages(c, http.StatusNotFound, msgNotFound)
	})

	admin := requireRoles(d.Gate, d.Logger, models.RoleAdmin)
	staff := requireRoles(d.Gate, d.Logger, models.RoleAdmin, models.RoleEditor)

	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	r.POST("/administradores/login", h.Login)

	r.POST("/administrador", admin, h.CreateAdministrator)
	r.GET("/administradores", admin, h.ListAdministrators)
	r.GET("/administrador/:id", admin, h.GetAdministrator)
	r.PUT("/administradores/:id", admin, h.UpdateAdministrator)
	r.DELETE("/administrador/:id", admin, h.DeleteAdministrator)

	r.POST("/veiculo", staff, h.CreateVehicle)
	r.GET("/veiculos", staff, h.ListVehicles)
	r.GET("/veiculo/:id", staff, h.GetVehicle)
	r.PUT("/veiculos/:id", admin, h.UpdateVehicle)
	r.DELETE("/veiculos/:id", admin, h.DeleteVehicle)

	return r
}
