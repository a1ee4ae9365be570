package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/identity"
)

const (
	msgMissingToken = "требуется bearer токен"
	msgInvalidToken = "токен не принят провайдером идентификации"
	msgAuthFailed   = "не удалось проверить токен"
)

type contextKey string

const userContextKey contextKey = "auth.user"

// IdentityResolver интерфейс обмена токена на идентичность пользователя
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*identity.UserIdentity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации. Модель авторизации сервиса умышленно
// минимальна: bearer-токен присутствует и резолвится провайдером в профиль.
// Идентичность кладётся в контекст запроса для обработчиков.
func Auth(resolver IdentityResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				log.Warn("auth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrUnauthorized) {
					log.Warn("auth: token rejected: %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				log.Error("auth: identity resolution failed: %v", err)
				handlers.RespondBadGateway(w, msgAuthFailed)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает идентичность аутентифицированного пользователя
func UserFromContext(ctx context.Context) (*identity.UserIdentity, bool) {
	user, ok := ctx.Value(userContextKey).(*identity.UserIdentity)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
