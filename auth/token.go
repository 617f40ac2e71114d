package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// IssueSellerToken signs a session token for an authenticated seller.
func IssueSellerToken(sellerID string) (string, error) {
	claims := jwt.MapClaims{
		"seller_id": sellerID,
		"role":      "seller",
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseSellerToken validates a session token and returns the seller ID.
func ParseSellerToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sellerID, _ := claims["seller_id"].(string)
	if sellerID == "" {
		return "", errors.New("token missing seller id")
	}
	return sellerID, nil
}
