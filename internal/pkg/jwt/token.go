package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrMalformedToken is returned when the admin token cannot be decoded
var ErrMalformedToken = errors.New("malformed admin token")

// Claims holds the fields the dashboard reads from an admin token.
// The signature is never checked here; the Kaviar API stays the only verifier.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Inspect decodes the token payload without verifying its signature
func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, ErrMalformedToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	claims := &Claims{}
	if sub, ok := mc["sub"].(string); ok {
		claims.Subject = sub
	}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	if exp, ok := mc["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}

// Subject returns the best label for the token holder, or "" when the
// token is opaque
func Subject(tokenString string) string {
	claims, err := Inspect(tokenString)
	if err != nil {
		return ""
	}
	if claims.Email != "" {
		return claims.Email
	}
	return claims.Subject
}
