package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN   = errors.New("invalid operator PIN")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// SessionTTL is how long an operator session stays valid. A food stall
// shift fits comfortably in twelve hours.
const SessionTTL = 12 * time.Hour

// VerifyPIN compares the operator PIN against its bcrypt hash.
func VerifyPIN(pinHash, pin string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// IssueToken signs a session token for the operator.
func IssueToken(secret []byte, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"role": "operator",
		"iat":  now.Unix(),
		"exp":  now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a session token.
func ParseToken(secret []byte, tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ExtractAccessToken pulls the session token from a request.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
