package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/server/validation"
	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized = "Não autorizado."
	msgForbidden    = "Acesso negado."
	msgNotFound     = "Registro não encontrado."
	msgInternal     = "Erro interno do servidor."
	msgDeleteFailed = "Não foi possível remover o registro."
	msgBodyTooLarge = "Corpo da requisição muito grande."
)

func abortWithMessages(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, errorResponse{Messages: messages})
}

// respondError maps a service or gate error onto a status and message list.
func respondError(c *gin.Context, err error) {
	var verrs *validation.Errors

	switch {
	case errors.As(err, &verrs):
		abortWithMessages(c, http.StatusBadRequest, verrs.Messages...)
	case errors.Is(err, common.ErrorAlreadyExists):
		abortWithMessages(c, http.StatusBadRequest, validation.MsgEmailTaken)
	case errors.Is(err, common.ErrorNotFound):
		abortWithMessages(c, http.StatusNotFound, msgNotFound)
	case errors.Is(err, common.ErrorUnauthorized):
		abortWithMessages(c, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, common.ErrorForbidden):
		abortWithMessages(c, http.StatusForbidden, msgForbidden)
	default:
		abortWithMessages(c, http.StatusInternalServerError, msgInternal)
	}
}
