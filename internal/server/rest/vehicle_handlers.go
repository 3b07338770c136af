package rest

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/motorpool/internal/server/validation"
	"github.com/gin-gonic/gin"
)

// bindVehicle decodes and validates a vehicle body. A missing body is
// reported with a single message instead of one per field.
func (h *Handler) bindVehicle(c *gin.Context) (*vehicleRequest, bool) {
	var req vehicleRequest

	null, ok := readBody(c, &req)
	if !ok {
		return nil, false
	}
	if null {
		abortWithMessages(c, http.StatusBadRequest, validation.MsgNullVehicle)
		return nil, false
	}
	if !h.validate(c, &req) {
		return nil, false
	}

	return &req, true
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	req, ok := h.bindVehicle(c)
	if !ok {
		return
	}

	v, err := h.vehicles.Create(c.Request.Context(), req.model(0))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/veiculo/%d", v.ID))
	c.JSON(http.StatusCreated, newVehicleView(v))
}

// ListVehicles serves ?pagina= and the optional ?nome= substring filter.
func (h *Handler) ListVehicles(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	list, err := h.vehicles.List(c.Request.Context(), page, c.Query("nome"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]vehicleView, 0, len(list))
	for i := range list {
		out = append(out, newVehicleView(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	v, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newVehicleView(v))
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := h.bindVehicle(c)
	if !ok {
		return
	}

	v, err := h.vehicles.Update(c.Request.Context(), req.model(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newVehicleView(v))
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.vehicles.Delete(c.Request.Context(), id)
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
