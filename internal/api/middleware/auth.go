package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
	msgAdminOnly    = "действие доступно только администратору"
)

// Claims содержимое access токена
// sub ID пользователя, role роль (admin, client)
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer токен (HS256) и кладет user_id и role в контекст
func Auth(secret string) func(http.Handler) http.Handler {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			var claims Claims
			token, err := jwt.ParseWithClaims(raw, &claims, keyFunc,
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			role := claims.Role
			if role == "" {
				role = domain.RoleClient
			}

			ctx := WithIdentity(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только запросы с ролью admin
// Должен стоять после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRole(r.Context())
		if !ok || role != domain.RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity кладет пользователя в контекст
func WithIdentity(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetRole извлекает роль пользователя из контекста
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// IsAdmin true, если в контексте роль admin
func IsAdmin(ctx context.Context) bool {
	role, ok := GetRole(ctx)
	return ok && role == domain.RoleAdmin
}
