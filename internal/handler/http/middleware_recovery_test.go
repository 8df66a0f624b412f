package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/models"
)

func executeRecovery(h *Handler, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.recovery(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/users", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestRecovery_PassesThroughHealthyHandlers(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := executeRecovery(h, next)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went sideways")
	})

	rr := executeRecovery(h, next)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, MsgInternalServerError, response.Error)
	assert.Empty(t, response.Detail, "diagnostic detail must not leak outside development mode")
}

func TestRecovery_IncludesDetailInDevelopmentMode(t *testing.T) {
	h := &Handler{logger: logger.Nop(), development: true}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went sideways")
	})

	rr := executeRecovery(h, next)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, MsgInternalServerError, response.Error)
	assert.Equal(t, "something went sideways", response.Detail)
}
