package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the settings for issuing and validating tokens
type Config struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// ValidateConfig checks that the config is usable
func (c *Config) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	if c.Issuer == "" {
		c.Issuer = "enactus-app"
	}
	return nil
}

// Claims represents JWT token claims. The email is the caller's identity;
// privilege is always resolved from the database, never trusted from the
// token.
type Claims struct {
	Email                string `json:"email" example:"jane.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Service provides token issuance and validation
type Service struct {
	config *Config
}

// NewService creates a new authentication service
func NewService(config *Config) (*Service, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &Service{config: config}, nil
}

// GenerateJWT creates a signed token for the given email
func (s *Service) GenerateJWT(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a token
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// TokenTTL reports the configured token lifetime
func (s *Service) TokenTTL() time.Duration {
	return s.config.TokenTTL
}
