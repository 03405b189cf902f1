package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyConsultant contextKey = "consultant"
)

// Rotas servidas sem token: liveness e o fluxo de redefinição de senha, que
// acontece justamente quando o consultor não consegue entrar.
var publicPaths = map[string]bool{
	"/healthcheck":             true,
	"/v1/auth/forgot-password": true,
	"/v1/auth/reset-password":  true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyConsultant, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ConsultantFromContext recupera as claims do consultor autenticado.
func ConsultantFromContext(ctx context.Context) (*authenticating.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyConsultant).(*authenticating.Claims)
	return claims, ok
}
