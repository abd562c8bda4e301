package middleware

import (
	"context"
	"net/http"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/internal/identity"
)

// SessionTokenHeader заголовок, в котором клиент передает токен сессии
const SessionTokenHeader = "X-Session-Token"

type ctxKey string

const principalKey ctxKey = "principal"

// SessionResolver восстанавливает Principal по токену сессии
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*identity.Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет токен сессии и кладет Principal в контекст запроса.
// Запросы без валидной сессии отклоняются с 401.
func Auth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			principal, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов. Вешается после Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok || principal.Role != domain.RoleAdmin {
				logger.Warn("%s %s - Forbidden for non-admin", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "доступ запрещен")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPrincipal извлекает Principal из контекста запроса
func GetPrincipal(ctx context.Context) (*identity.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*identity.Principal)
	return principal, ok
}
