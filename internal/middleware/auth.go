// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"dealerdesk-backend/internal/ctxkeys"
)

// Auth validates the session JWT and injects the user's ID and role into the
// request context. The token is read from the HttpOnly "token" cookie set at
// login; an Authorization: Bearer header is accepted as a fallback for
// non-browser clients.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			userID, _ := claims["userId"].(string)
			role, _ := claims["role"].(string)

			if userID == "" {
				writeError(w, http.StatusUnauthorized, "Invalid token: missing user ID")
				return
			}

			ctx := context.WithValue(r.Context(), ctxkeys.UserID, userID)
			ctx = context.WithValue(ctx, ctxkeys.UserRole, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireMinRole returns middleware that restricts access to users with at
// least the specified role level. Role hierarchy: admin > staff.
func RequireMinRole(minRole string) func(http.Handler) http.Handler {
	minLevel := ctxkeys.RoleLevel[minRole]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole, _ := r.Context().Value(ctxkeys.UserRole).(string)
			level := ctxkeys.RoleLevel[userRole]

			if level < minLevel {
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromRequest prefers the session cookie, falling back to a Bearer header.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("token"); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
