package rest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/auth"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/services"
	"github.com/dmitrijs2005/motorpool/internal/server/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Version is reported by the home endpoint.
const Version = "1.0.0"

type Authenticator interface {
	Login(ctx context.Context, email, secret string) (*services.LoginResult, error)
}

type AdministratorService interface {
	Create(ctx context.Context, admin *models.Administrator) (*models.Administrator, error)
	Get(ctx context.Context, id int64) (*models.Administrator, error)
	List(ctx context.Context, page int) ([]models.Administrator, error)
	Update(ctx context.Context, admin *models.Administrator) (*models.Administrator, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type VehicleService interface {
	Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, id int64) (*models.Vehicle, error)
	List(ctx context.Context, page int, name string) ([]models.Vehicle, error)
	Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Authorizer is implemented by auth.Gate.
type Authorizer interface {
	Authorize(header string, required models.RoleSet) (*auth.Claims, error)
}

// Pinger reports store readiness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds the endpoint implementations.
type Handler struct {
	auth           Authenticator
	administrators AdministratorService
	vehicles       VehicleService
	validator      *validation.Validator
	store          Pinger
	log            logging.Logger
}

// Deps lists the collaborators of the HTTP layer. Store may be nil, in
// which case /health always reports ok.
type Deps struct {
	Auth           Authenticator
	Administrators AdministratorService
	Vehicles       VehicleService
	Gate           Authorizer
	Validator      *validation.Validator
	Store          Pinger
	Logger         logging.Logger
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		auth:           d.Auth,
		administrators: d.Administrators,
		vehicles:       d.Vehicles,
		validator:      d.Validator,
		store:          d.Store,
		log:            d.Logger,
	}
}

// maxBodyBytes caps request bodies; every payload here is a few short fields.
const maxBodyBytes = 8 << 10

// readBody decodes the JSON body into dst. It reports null when the body is
// empty or the JSON literal null.
func readBody(c *gin.Context, dst any) (null bool, ok bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithMessages(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return false, false
		}
		abortWithMessages(c, http.StatusBadRequest, validation.MsgInvalidBody)
		return false, false
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true, true
	}

	if err := binding.JSON.BindBody(trimmed, dst); err != nil {
		abortWithMessages(c, http.StatusBadRequest, validation.MsgInvalidBody)
		return false, false
	}

	return false, true
}

// validate runs the field checks and answers 400 on failure.
func (h *Handler) validate(c *gin.Context, req any) bool {
	if err := h.validator.Struct(req); err != nil {
		h.log.Debug(c.Request.Context(), "validation failed", "error", err)
		respondError(c, err)
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithMessages(c, http.StatusBadRequest, validation.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// pageParam reads ?pagina=. Absent or empty means 1 and values below 1 are
// clamped to 1.
func pageParam(c *gin.Context) (int, bool) {
	raw := c.Query("pagina")
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		abortWithMessages(c, http.StatusBadRequest, validation.MsgInvalidPage)
		return 0, false
	}

	return max(page, 1), true
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, homeResponse{
		Message: "Bem vindo a API de veículos - Minimal API",
		Version: Version,
	})
}

func (h *Handler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.PingContext(c.Request.Context()); err != nil {
			h.log.Warn(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
