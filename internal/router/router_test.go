package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportszone/internal/auth"
	"sportszone/internal/config"
	apperrors "sportszone/internal/errors"
	"sportszone/internal/handler"
	"sportszone/internal/model"
	"sportszone/internal/service"
)

type roleTable map[string]model.Role

func (r roleTable) RoleOf(_ context.Context, email string) (model.Role, error) {
	role, ok := r[email]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return role, nil
}

// newTestServer mounts every route. Services are built without stores, so
// only requests answered before reaching a repository can be exercised.
func newTestServer(t *testing.T, roles roleTable) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService("router-test-secret", time.Hour)
	userService := service.NewUserService(nil, nil, nil, nil)

	e := echo.New()
	Register(e, &config.Config{CORSOrigins: []string{"*"}, RequestTimeout: time.Second}, nil, jwtService, roles, Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(jwtService, nil)),
		User:      handler.NewUserHandler(userService),
		Class:     handler.NewClassHandler(service.NewClassService(nil, nil)),
		Selection: handler.NewSelectionHandler(service.NewSelectionService(nil, nil, nil)),
		Payment:   handler.NewPaymentHandler(service.NewPaymentService(nil, nil, nil, nil, service.PaymentOptions{}, nil)),
		Review:    handler.NewReviewHandler(service.NewReviewService(nil)),
		Health:    handler.NewHealthHandler(nil),
	})
	return e, jwtService
}

func do(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	e, _ := newTestServer(t, roleTable{})

	rec := do(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sport Zone is running...", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = do(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	e, _ := newTestServer(t, roleTable{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/admin/a@example.com"},
		{http.MethodGet, "/users/instructor/a@example.com"},
		{http.MethodPatch, "/users/role?id=x&role=admin"},
		{http.MethodDelete, "/users?id=x"},
		{http.MethodGet, "/classes"},
		{http.MethodGet, "/classes/denied"},
		{http.MethodPost, "/classes"},
		{http.MethodPatch, "/classes/update"},
		{http.MethodPatch, "/classes/status?id=x&status=approved"},
		{http.MethodPatch, "/classes/feedback?id=x&feedback=ok"},
		{http.MethodGet, "/classes/selected?email=a@example.com"},
		{http.MethodPost, "/classes/selected"},
		{http.MethodPost, "/payments"},
		{http.MethodGet, "/payments/history"},
		{http.MethodGet, "/payments/enrolled/student?email=a@example.com"},
		{http.MethodGet, "/payments/enrolled/instructor?email=a@example.com"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := do(e, r.method, r.path, "")
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, "unauthorized access", body.Message)
		})
	}
}

func TestRouter_RoleGates(t *testing.T) {
	e, jwtService := newTestServer(t, roleTable{
		"admin@example.com":   model.RoleAdmin,
		"coach@example.com":   model.RoleInstructor,
		"student@example.com": model.RoleStudent,
	})
	token := func(email string) string {
		tok, err := jwtService.GenerateToken(email, "")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		method string
		path   string
		email  string
		want   int
	}{
		{"student on admin route", http.MethodGet, "/users", "student@example.com", http.StatusForbidden},
		{"instructor on admin route", http.MethodGet, "/payments/history", "coach@example.com", http.StatusForbidden},
		{"unknown user on admin route", http.MethodGet, "/classes", "ghost@example.com", http.StatusForbidden},
		{"student on instructor route", http.MethodPost, "/classes", "student@example.com", http.StatusForbidden},
		{"admin on instructor route", http.MethodGet, "/payments/enrolled/instructor", "admin@example.com", http.StatusForbidden},
		// the gate lets admins through; the bogus role is rejected by the service
		{"admin passes the gate", http.MethodPatch, "/users/role?id=x&role=owner", "admin@example.com", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, token(tt.email))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_SelfOnlyRoleCheck(t *testing.T) {
	e, jwtService := newTestServer(t, roleTable{})
	tok, err := jwtService.GenerateToken("student@example.com", "")
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/users/admin/admin@example.com", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
}

func TestRouter_PublicTokenIssuance(t *testing.T) {
	e, jwtService := newTestServer(t, roleTable{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"new@example.com","name":"New"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := jwtService.ValidateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)
}

func TestRequestTimeout(t *testing.T) {
	e := echo.New()
	var deadline time.Time
	var ok bool
	h := RequestTimeout(50*time.Millisecond)(func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()
		return c.NoContent(http.StatusNoContent)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, h(c))
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestCustomValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&handler.TokenRequest{Email: "a@example.com"}))
	assert.Error(t, v.Validate(&handler.TokenRequest{Email: "not-an-email"}))
	assert.Error(t, v.Validate(&handler.EnrollRequest{ClassID: "c1"}))
}
