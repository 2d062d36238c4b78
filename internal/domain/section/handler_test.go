package section

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *mockRemover) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, remover, _ := newTestService(t)
	h := NewHandler(svc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	RegisterPublicRoutes(v1, h)
	RegisterAdminRoutes(v1.Group("/admin"), h)
	return r, remover
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr.Code, resp
}

func TestSectionEndpoints_CRUD(t *testing.T) {
	r, remover := setupTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/v1/admin/sections", map[string]string{"name": "Calculus I"})
	require.Equal(t, http.StatusCreated, code)
	var created Section
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "calculus-i", created.Slug)

	code, resp = doJSON(t, r, http.MethodGet, "/api/v1/sections", nil)
	require.Equal(t, http.StatusOK, code)
	var list ListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Sections, 1)
	assert.Equal(t, "Calculus I", list.Sections[0].Name)

	code, resp = doJSON(t, r, http.MethodPut, "/api/v1/admin/sections/1", map[string]string{"name": "Calculus II"})
	require.Equal(t, http.StatusOK, code)
	var updated Section
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "calculus-ii", updated.Slug)

	remover.On("DeleteBySection", mock.Anything, int64(1)).Return(0, nil)
	code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/admin/sections/1", nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, r, http.MethodGet, "/api/v1/admin/sections/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SECTION_NOT_FOUND", resp.Error.Code)
}

func TestSectionEndpoints_Errors(t *testing.T) {
	r, _ := setupTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/v1/admin/sections", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "NAME_REQUIRED", resp.Error.Code)

	code, _ = doJSON(t, r, http.MethodPost, "/api/v1/admin/sections", map[string]string{"name": "Dup"})
	require.Equal(t, http.StatusCreated, code)
	code, resp = doJSON(t, r, http.MethodPost, "/api/v1/admin/sections", map[string]string{"name": "dup"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SLUG_CONFLICT", resp.Error.Code)

	code, resp = doJSON(t, r, http.MethodGet, "/api/v1/admin/sections/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}
