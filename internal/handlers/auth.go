package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dealerdesk-backend/internal/ctxkeys"
	"dealerdesk-backend/internal/database"
	"dealerdesk-backend/internal/models"
)

// sessionTTL is how long a login cookie stays valid.
const sessionTTL = 12 * time.Hour

// AuthHandler manages login, logout, and profile retrieval.
type AuthHandler struct {
	db        database.Service
	jwtSecret []byte
	secure    bool // Secure+SameSite=None cookies for cross-origin deploys
}

// NewAuthHandler creates an AuthHandler with the given database and JWT
// signing key. secure should be true whenever the API is served over HTTPS
// from a different origin than the frontend.
func NewAuthHandler(db database.Service, jwtSecret string, secure bool) *AuthHandler {
	return &AuthHandler{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		secure:    secure,
	}
}

// Login authenticates a user with username + password and sets the session
// token as an HttpOnly cookie. The role is returned so the frontend can show
// or hide admin tabs; authorization is still enforced server-side.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var user models.User
	err := pool.QueryRow(ctx, `
		SELECT id, username, password_hash, role, created_at::text
		FROM users WHERE username = $1
	`, req.Username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		// Generic message to prevent username enumeration
		JSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		JSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		JSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, sessionTTL))

	JSON(w, http.StatusOK, map[string]string{"role": user.Role})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -time.Hour))
	JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetMe returns the profile of the currently authenticated user.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(ctxkeys.UserID).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var user models.User
	err := pool.QueryRow(ctx, `
		SELECT id, username, role, created_at::text
		FROM users WHERE id = $1
	`, userID,
	).Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt)
	if err != nil {
		JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	JSON(w, http.StatusOK, user)
}

// sessionCookie builds the session cookie. Cross-origin deploys need
// SameSite=None, which in turn requires Secure.
func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl.Seconds()),
		SameSite: http.SameSiteStrictMode,
	}
	if h.secure {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// generateToken creates a signed JWT with user ID and role as claims.
func (h *AuthHandler) generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(sessionTTL).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
