package admin

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"antojos/globals"
	"antojos/middleware"
	"antojos/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = time.Hour

type credential struct {
	username string
	password string
}

// loadCredentials reads the operator accounts from the environment. Two
// pairs are supported so the shop owners can each have their own login.
func loadCredentials() []credential {
	var creds []credential
	pairs := [][2]string{
		{"ADMIN_USERNAME", "ADMIN_PASSWORD"},
		{"ADMIN_USERNAME_2", "ADMIN_PASSWORD_2"},
	}
	for _, pair := range pairs {
		u, p := os.Getenv(pair[0]), os.Getenv(pair[1])
		if u != "" && p != "" {
			creds = append(creds, credential{username: u, password: p})
		}
	}
	return creds
}

// checkPassword accepts either a bcrypt hash or a plain value in the
// environment. Plain values are compared in constant time.
func checkPassword(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func newSessionToken(username string, now time.Time) (string, error) {
	claims := &middleware.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// Login checks the supplied credentials against the configured operator
// accounts and sets the session cookie on success.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	creds := loadCredentials()
	if len(creds) == 0 {
		log.Println("admin login attempted but no ADMIN_USERNAME/ADMIN_PASSWORD configured")
		utils.RespondWithError(w, http.StatusInternalServerError, "Login unavailable")
		return
	}

	var matched bool
	for _, c := range creds {
		if subtle.ConstantTimeCompare([]byte(c.username), []byte(input.Username)) == 1 &&
			checkPassword(c.password, input.Password) {
			matched = true
			break
		}
	}
	if !matched {
		utils.RespondWithError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	tokenString, err := newSessionToken(input.Username, time.Now())
	if err != nil {
		log.Println("admin session token error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Logout clears the session cookie.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Session reports whether the request carries a valid admin session.
// Always 200, so the back-office can poll it without error noise.
func Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := middleware.SessionClaims(r); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"isAuthenticated": false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"isAuthenticated": true})
}
