package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
)

// Заголовки, проставляемые шлюзом после аутентификации
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

// Auth извлекает ID сотрудника и роль из заголовков и кладет их в контекст.
// Запросы без заголовков проходят дальше как гостевые: публичные
// endpoint'ы доступны без аутентификации, staff-only проверяют роль сами.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				ctx = context.WithValue(ctx, userIDKey, id)
			}
		}

		if raw := r.Header.Get(HeaderRole); raw != "" {
			role := domain.Role(raw)
			if domain.IsValidRole(role) {
				ctx = context.WithValue(ctx, roleKey, role)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID сотрудника из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetRole возвращает роль сотрудника из контекста
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}

// IsStaff возвращает true, если запрос пришел от сотрудника
func IsStaff(ctx context.Context) bool {
	_, ok := GetRole(ctx)
	return ok
}

// RequireStaff отклоняет запросы без роли сотрудника
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"требуется аутентификация сотрудника"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin отклоняет запросы без роли администратора
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRole(r.Context())
		if !ok || role != domain.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"требуется роль администратора"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
