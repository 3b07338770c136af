package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAdministrator(c *gin.Context) {
	var req administratorRequest
	if _, ok := readBody(c, &req); !ok || !h.validate(c, &req) {
		return
	}

	admin, err := h.administrators.Create(c.Request.Context(), req.model(0))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/administrador/%d", admin.ID))
	c.JSON(http.StatusCreated, newAdministratorView(admin))
}

func (h *Handler) ListAdministrators(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	admins, err := h.administrators.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]administratorView, 0, len(admins))
	for i := range admins {
		out = append(out, newAdministratorView(&admins[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAdministrator(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	admin, err := h.administrators.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAdministratorView(admin))
}

// UpdateAdministrator validates the body before looking the record up, so
// an invalid body on a missing id answers 400.
func (h *Handler) UpdateAdministrator(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req administratorRequest
	if _, ok := readBody(c, &req); !ok || !h.validate(c, &req) {
		return
	}

	admin, err := h.administrators.Update(c.Request.Context(), req.model(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAdministratorView(admin))
}

func (h *Handler) DeleteAdministrator(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.administrators.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		abortWithMessages(c, http.StatusBadRequest, msgDeleteFailed)
		return
	}

	c.Status(http.StatusNoContent)
}
