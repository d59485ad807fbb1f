package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/tradeops/domain"
)

// JWTServiceImpl implements domain.TokenService with HMAC-SHA-256 signed
// tokens carrying the user's email as subject.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Verify implements domain.TokenService. The three failure kinds stay
// distinguishable here even though the HTTP boundary collapses them.
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignature
		default:
			return nil, domain.ErrTokenInvalid
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}
