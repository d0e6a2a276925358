package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTProvider struct {
	Secret   string
	TokenTTL time.Duration
}

func NewJWTProvider(secret string, tokenTTL time.Duration) *JWTProvider {
	return &JWTProvider{
		Secret:   secret,
		TokenTTL: tokenTTL,
	}
}

func (p *JWTProvider) GenerateSessionToken(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"type":  "session",
		"exp":   time.Now().Add(p.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

func (p *JWTProvider) ParseSessionToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if err := claims.Valid(); err != nil {
		return "", errors.New("token expired")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("invalid email")
	}

	return email, nil
}
