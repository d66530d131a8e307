package utils

import (
	"fmt"
	"time"

	"munshiji/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenIssuer mints the login token handed out by verify-otp.
type TokenIssuer interface {
	Issue(user models.User, shop models.Shop, now time.Time) (string, error)
}

// DemoTokenIssuer returns "demo_token_" followed by the unix time in
// milliseconds. The token carries no claims and is never verified.
type DemoTokenIssuer struct{}

func (DemoTokenIssuer) Issue(_ models.User, _ models.Shop, now time.Time) (string, error) {
	return fmt.Sprintf("demo_token_%d", now.UnixMilli()), nil
}

// JWTTokenIssuer signs an HS256 token for the user and shop.
type JWTTokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func (j JWTTokenIssuer) Issue(user models.User, shop models.Shop, now time.Time) (string, error) {
	claims := models.JwtClaims{
		UserID: user.ID,
		Phone:  user.PhoneNumber,
		ShopID: shop.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}
