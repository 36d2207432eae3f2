package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	"github.com/mayowa-ojo/digibank/internal/domain/port/core"
)

// JWTProvider implements the TokenProvider interface with HS256 signed
// tokens. Only the user id rides in the token; role is looked up from
// storage on every request.
type JWTProvider struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTProvider creates a new JWT token provider
func NewJWTProvider(secret string, ttl time.Duration, timeProvider core.TimeProvider) *JWTProvider {
	return &JWTProvider{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Generate issues a signed token for the given user id
func (p *JWTProvider) Generate(userID uint64) (string, error) {
	now := p.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return signed, nil
}

// Parse verifies a token and yields the user id it was issued for
func (p *JWTProvider) Parse(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return 0, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errs.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, errs.ErrUnauthorized
	}

	return userID, nil
}
