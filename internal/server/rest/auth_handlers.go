package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login exchanges email and secret for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if _, ok := readBody(c, &req); !ok {
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Email: res.Administrator.Email,
		Role:  res.Administrator.Role,
		Token: res.Token,
	})
}
