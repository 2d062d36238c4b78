package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBlob(t *testing.T) {
	okBefore := testutil.ToFloat64(BlobOperations.WithLabelValues("put", "ok"))
	errBefore := testutil.ToFloat64(BlobOperations.WithLabelValues("put", "error"))

	RecordBlob("put", nil)
	RecordBlob("put", errors.New("disk full"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(BlobOperations.WithLabelValues("put", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(BlobOperations.WithLabelValues("put", "error")))
}

func TestRecordRejected(t *testing.T) {
	before := testutil.ToFloat64(RejectedSubmissions.WithLabelValues("material", "TITLE_REQUIRED"))
	RecordRejected("material", "TITLE_REQUIRED")
	assert.Equal(t, before+1, testutil.ToFloat64(RejectedSubmissions.WithLabelValues("material", "TITLE_REQUIRED")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordRequest("GET", "/api/v1/sections", "200", 15*time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "courses_http_requests_total")
	assert.Contains(t, rr.Body.String(), "courses_blob_operations_total")
}
