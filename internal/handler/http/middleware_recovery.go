package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/utils"
	"github.com/MKhiriev/go-user-mgmt/models"
)

// recovery is the outermost fault boundary of the request pipeline.
//
// Any panic raised downstream is caught here, logged with method and path
// context, and converted into a 500 response with a generic JSON body.
// Exactly one fault boundary exists; nothing downstream carries its own
// catch-all. Expected failures never reach this middleware — they are
// resolved into responses at the layer that detects them.
func (h *Handler) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log := logger.FromRequest(r)
				log.Error().
					Any("panic", recovered).
					Str("method", r.Method).
					Str("uri", r.RequestURI).
					Msg("unhandled fault recovered")

				h.internalServerError(w, r, fmt.Errorf("%v", recovered))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// internalServerError writes the uniform 500 response body. The diagnostic
// detail is included only in development mode so that internals never leak
// from a production deployment.
func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	response := models.ErrorResponse{Error: MsgInternalServerError}
	if h.development && err != nil {
		response.Detail = err.Error()
	}

	utils.WriteJSON(w, response, http.StatusInternalServerError)
}
