package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
)

// auth is an HTTP middleware that enforces static bearer-token
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// and validates it against the token store via
// [service.AuthService.ValidateToken] before delegating to the next handler.
// Token issuance itself is not guarded: the routing table registers the
// token endpoint outside the authenticated group.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two ways:
//   - The "Authorization" header is absent, does not carry the "Bearer"
//     scheme, or carries an empty token value — the response body is
//     [MsgMissingOrInvalidToken].
//   - The extracted token is not a member of the token store — the response
//     body is [MsgInvalidToken].
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("missing or invalid token format")
			http.Error(w, MsgMissingOrInvalidToken, http.StatusUnauthorized)
			return
		}

		if err := h.services.AuthService.ValidateToken(r.Context(), token); err != nil {
			log.Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("invalid token")
			http.Error(w, MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme comparison is case-insensitive, so "bearer" and "BEARER" are
// accepted as well. It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent or empty.
//   - [ErrInvalidAuthorizationHeader] — if the header does not start with
//     the "Bearer " scheme prefix.
//   - [ErrEmptyToken] — if the prefix is present but the token value is an
//     empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	const scheme = "Bearer "
	if len(authHeader) < len(scheme) || !strings.EqualFold(authHeader[:len(scheme)], scheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token := authHeader[len(scheme):]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
