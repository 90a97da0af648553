package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/models"
)

// DefaultTokenTTL applies when a token is issued without a positive lifetime
const DefaultTokenTTL = 15 * time.Minute

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and unexpected algorithms
	ErrInvalidToken = fmt.Errorf("%w: could not validate credentials", models.ErrUnauthorized)
	// ErrTokenExpired is returned once the exp claim has passed
	ErrTokenExpired = fmt.Errorf("%w: token has expired", models.ErrUnauthorized)
	// ErrUnknownSubject is returned when the token names an admin that does not exist
	ErrUnknownSubject = fmt.Errorf("%w: unknown admin", models.ErrUnauthorized)
)

// TokenManager issues and verifies HS256 signed admin tokens. Tokens are
// stateless: nothing is stored server side and every request re-verifies.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager creates a token manager for the given signing secret. An
// empty secret is replaced by a random one, so tokens do not survive a restart.
func NewTokenManager(secret string) *TokenManager {
	if secret == "" {
		secret = randomSecret()
		zap.S().Warn("JWT_SECRET is not set, using a random secret for this process")
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// IssueToken signs a token for subject valid for ttl
func (t *TokenManager) IssueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// VerifyToken checks the signature and expiry of token and returns its subject
func (t *TokenManager) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
