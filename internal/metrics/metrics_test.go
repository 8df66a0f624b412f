package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/users", http.StatusOK, 42*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/users", http.StatusOK, 13*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/users", http.StatusConflict, 5*time.Millisecond)

	handler := SetupMetricsRoute(reg)
	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	response := recorder.Result()
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `usermgmt_http_requests_total{method="GET",route="/users",status_code="200"} 2`)
	assert.Contains(t, string(body), `usermgmt_http_requests_total{method="POST",route="/users",status_code="409"} 1`)
	assert.Contains(t, string(body), "usermgmt_http_request_duration_seconds")
}

func TestCollector_RequestStarted(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	done := c.RequestStarted()

	handler := SetupMetricsRoute(reg)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(recorder.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "usermgmt_http_requests_in_flight 1"))

	done()

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err = io.ReadAll(recorder.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "usermgmt_http_requests_in_flight 0"))
}
