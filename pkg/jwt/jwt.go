package jwt

import (
	"errors"
	"slices"
	"time"

	"doctor-slot-sync/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// ScopeSyncTrigger allows starting a synchronization run over HTTP
	ScopeSyncTrigger = "sync:trigger"

	issuer = "doctor-slot-sync"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims of an operator token. Subject names the operator or the calling system.
type Claims struct {
	Scopes  []string `json:"scopes"`
	TokenID string   `json:"token_id"`
	jwt.RegisteredClaims
}

// HasScope reports whether the token grants scope
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

type JWTService struct {
	config config.JWTConfig
	now    func() time.Time
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg, now: time.Now}
}

// GenerateAccessToken signs an operator token and returns it with its id
func (s *JWTService) GenerateAccessToken(subject string, scopes []string) (string, string, error) {
	if s.config.Secret == "" {
		return "", "", errors.New("jwt secret is not configured")
	}

	tokenID := uuid.New().String()
	now := s.now()
	claims := Claims{
		Scopes:  scopes,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if s.config.Secret == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}
