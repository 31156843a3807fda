package middleware

import (
	"context"
	"fmt"
	"net/http"

	"antojos/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// SessionCookieName is the HTTP-only cookie carrying the admin session.
const SessionCookieName = "admin_session"

// Claims is the payload of the admin session cookie.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminAuth rejects requests that do not carry a valid admin session
// cookie and stores the admin username in the request context.
func AdminAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := SessionClaims(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.AdminUserKey, claims.Username)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionClaims validates the session cookie and returns its claims.
func SessionClaims(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, fmt.Errorf("missing session cookie")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	return claims, nil
}
