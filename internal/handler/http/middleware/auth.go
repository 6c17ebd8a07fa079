package middleware

import (
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/auth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests that do not carry a valid access token.
// Refresh tokens are signed with the same key, so the claim type is checked
// to keep them off the API surface.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := accessClaims(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if id, _ := claims["user_id"].(string); id == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// accessClaims pulls the verified token from the request context and returns
// its claims when it is a well-formed access token.
func accessClaims(r *http.Request) (map[string]interface{}, error) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(r.Context())
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if typ, _ := claims["type"].(string); typ != "access" {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}
