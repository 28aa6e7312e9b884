package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			rawUserID, ok := claims[models.ClaimUserID]
			if !ok {
				http.Error(w, "user_id missing in token claims", http.StatusUnauthorized)
				return
			}

			// Discord snowflakes travel as strings; older tokens carried numbers.
			var userID string
			switch v := rawUserID.(type) {
			case string:
				userID = v
			case float64:
				userID = strconv.FormatInt(int64(v), 10)
			default:
				http.Error(w, "invalid user_id type in token claims", http.StatusUnauthorized)
				return
			}
			if userID == "" {
				http.Error(w, "empty user_id in token claims", http.StatusUnauthorized)
				return
			}

			rawRole, _ := claims[models.ClaimRole].(string)
			role, err := models.ParseRole(rawRole)
			if err != nil {
				http.Error(w, "invalid role in token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, RoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after JWTMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func GetRole(ctx context.Context) models.Role {
	role, ok := ctx.Value(RoleKey).(models.Role)
	if !ok {
		return models.RoleClient
	}
	return role
}

func IsAdmin(ctx context.Context) bool {
	return GetRole(ctx) == models.RoleAdmin
}
