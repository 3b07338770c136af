package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/auth"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/motorpool/internal/server/services"
	"github.com/dmitrijs2005/motorpool/internal/server/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var testSecret = []byte("rest-test-secret")

type testAPI struct {
	engine      *gin.Engine
	manager     *repomanager.MemoryRepositoryManager
	adminToken  string
	editorToken string
}

// newTestAPI builds the router over the in-memory store with the bootstrap
// admin and one editor. overrides may replace any dependency.
func newTestAPI(t *testing.T, overrides ...func(*Deps)) *testAPI {
	t.Helper()
	ctx := context.Background()

	m := repomanager.NewMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, nil))
	_, err := m.Administrators(nil).Create(ctx, &models.Administrator{Email: "editor@teste.com", Secret: "editor1", Role: models.RoleEditor})
	require.NoError(t, err)

	issuer := auth.NewIssuer(testSecret, 24*time.Hour)
	log := nopLogger{}

	d := Deps{
		Auth:           services.NewAuthService(nil, m, issuer, log),
		Administrators: services.NewAdministratorService(nil, m, log),
		Vehicles:       services.NewVehicleService(nil, m, log),
		Gate:           auth.NewGate(auth.NewValidator(testSecret)),
		Validator:      validation.New(),
		Logger:         log,
	}
	for _, o := range overrides {
		o(&d)
	}

	api := &testAPI{engine: NewRouter(d), manager: m}
	api.adminToken = api.login(t, "adm@teste.com", "123456")
	api.editorToken = api.login(t, "editor@teste.com", "editor1")
	return api
}

func (a *testAPI) login(t *testing.T, email, secret string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/administradores/login", "", map[string]string{"Email": email, "Senha": secret})
	if w.Code != http.StatusOK {
		return ""
	}
	var res loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Token
}

// do sends body as JSON. A string body is sent verbatim.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeMessages(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var res errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res.Messages
}
