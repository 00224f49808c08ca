package utils

import (
	"errors"
	"time"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint        `json:"user_id"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func GenerateJWT(secret []byte, user *entity.User, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateJWT(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// CallerFromClaims returns the claims stored on the request by the auth
// middleware.
func CallerFromClaims(c *gin.Context) (*Claims, error) {
	raw, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := raw.(*Claims)
	if !ok {
		return nil, errors.New("claims are not of type *Claims")
	}

	return claims, nil
}
