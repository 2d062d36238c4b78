package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"coursematerials/internal/pkg/jwt"
	"coursematerials/internal/pkg/logger"
)

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestService(t *testing.T, password string) (*Service, *jwt.Service, *mockCounter, *mockCounter) {
	t.Helper()
	var hash string
	if password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(b)
	}
	j := jwt.New("test-secret", time.Hour)
	sections, materials := new(mockCounter), new(mockCounter)
	return NewService(hash, j, sections, materials, logger.Nop()), j, sections, materials
}

func setupTestRouter(svc *Service, j *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	adm := r.Group("/api/v1/admin")
	RegisterLoginRoute(adm, h)
	protected := adm.Group("")
	protected.Use(AdminJWTAuth(j))
	RegisterRoutes(protected, h)
	return r
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr.Code, resp
}

func TestService_Login(t *testing.T) {
	svc, j, _, _ := newTestService(t, "hunter2")

	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := svc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	claims, err := j.ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestService_LoginDisabledWithoutHash(t *testing.T) {
	svc, _, _, _ := newTestService(t, "")
	_, err := svc.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}

func TestService_Dashboard(t *testing.T) {
	svc, _, sections, materials := newTestService(t, "pw")
	sections.On("Count", mock.Anything).Return(int64(3), nil)
	materials.On("Count", mock.Anything).Return(int64(11), nil)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{Sections: 3, Materials: 11}, stats)
}

func TestService_DashboardError(t *testing.T) {
	svc, _, sections, _ := newTestService(t, "pw")
	sections.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
}

func TestAdminEndpoints_Gate(t *testing.T) {
	svc, j, sections, materials := newTestService(t, "hunter2")
	sections.On("Count", mock.Anything).Return(int64(1), nil)
	materials.On("Count", mock.Anything).Return(int64(2), nil)
	r := setupTestRouter(svc, j)

	code, resp := do(t, r, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_HEADER_MISSING", resp.Error.Code)

	code, resp = do(t, r, http.MethodGet, "/api/v1/admin/dashboard", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)

	other, err := j.GenerateToken("visitor", "viewer")
	require.NoError(t, err)
	code, resp = do(t, r, http.MethodGet, "/api/v1/admin/dashboard", other, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	code, resp = do(t, r, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_FAILED", resp.Error.Code)

	code, resp = do(t, r, http.MethodPost, "/api/v1/admin/login", "", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	code, resp = do(t, r, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"password": "hunter2"})
	require.Equal(t, http.StatusOK, code)
	var session Session
	require.NoError(t, json.Unmarshal(resp.Data, &session))

	code, resp = do(t, r, http.MethodGet, "/api/v1/admin/dashboard", session.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
	var stats Stats
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, Stats{Sections: 1, Materials: 2}, stats)
}
