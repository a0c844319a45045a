// Package middleware HTTP middleware сервиса: аутентификация владельца, request id, метрики и access log
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
)

// UserIDHeader заголовок с ID владельца, выставляется шлюзом после аутентификации
const UserIDHeader = "X-User-ID"

const msgInvalidUserID = "отсутствует или некорректный заголовок X-User-ID"

type userIDKey struct{}

// Auth проверяет X-User-ID и кладёт ID владельца в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(UserIDHeader)), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с ID владельца
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID извлекает ID владельца из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
