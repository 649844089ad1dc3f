package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"binroute-backend/internal/middleware"
	"binroute-backend/internal/models"
	"binroute-backend/internal/services"
	"binroute-backend/internal/xmlstore"
	"binroute-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK    bool                 `json:"ok"`
	Token string               `json:"token,omitempty"`
	User  *models.UserResponse `json:"user,omitempty"`
}

func Login(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Login)

		jwtSecret := os.Getenv("APP_JWT_SECRET")
		if jwtSecret == "" {
			log.Println("❌ JWT secret not configured")
			utils.JSON(w, http.StatusInternalServerError, LoginResponse{OK: false})
			return
		}

		users, err := store.LoadUsers()
		if err != nil {
			log.Printf("❌ User document unavailable: %v", err)
			utils.JSON(w, http.StatusInternalServerError, LoginResponse{OK: false})
			return
		}

		var user *models.User
		for i := range users {
			if strings.EqualFold(users[i].Login, strings.TrimSpace(req.Login)) {
				user = &users[i]
				break
			}
		}
		if user == nil || !verifyPassword(user.Password, req.Password) {
			log.Printf("❌ Login failed for: %s", req.Login)
			utils.JSON(w, http.StatusUnauthorized, LoginResponse{OK: false})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"login":   user.Login,
			"role":    user.Role,
			"iat":     time.Now().Unix(),
			"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			log.Println("❌ Failed to create token")
			utils.Error(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		userResponse := user.ToUserResponse()
		log.Printf("✅ Login successful: %s (%s)", user.Login, user.Role)
		utils.JSON(w, http.StatusOK, LoginResponse{
			OK:    true,
			Token: tokenString,
			User:  &userResponse,
		})
	}
}

// verifyPassword accepts bcrypt hashes and, for legacy user documents
// that still carry plaintext, a constant-time direct comparison.
func verifyPassword(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// GetAuthStatus reports the claims behind the caller's token, plus the
// tour auto-detected for a supervisor.
func GetAuthStatus(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		resp := map[string]interface{}{
			"user_id": claims.UserID,
			"login":   claims.Login,
			"role":    claims.Role,
		}

		vehicles, vErr := store.LoadVehicles()
		tours, tErr := store.LoadTours()
		if vErr == nil && tErr == nil {
			if active, found := services.ResolveActiveTour(claims.UserID, vehicles, tours); found {
				resp["activeTour"] = active
			}
		}

		utils.JSON(w, http.StatusOK, resp)
	}
}
