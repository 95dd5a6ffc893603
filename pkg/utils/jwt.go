package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("SUPABASE_JWT_SECRET"))

type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken verifies an HS256 access token issued for the "authenticated"
// audience and returns its claims. The subject is the user id.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	}, jwt.WithAudience("authenticated"))

	if err != nil || !token.Valid {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}

	return claims, nil
}
