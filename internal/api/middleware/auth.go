package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
)

type ctxKey string

const userIDKey ctxKey = "userID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет ID менеджера в контекст.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID менеджера из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
