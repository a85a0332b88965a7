// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.AccessSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour * 24
	}

	return &jwtService{
		accessSecret: cfg.Auth.AccessSecret,
		accessTTL:    ttl,
	}, nil
}

// GenerateToken creates a signed access token for a given user and role.
func (s *jwtService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),           // Subject (who the token is for)
		"role": role.String(),             // Role for stateless authorization
		"iat":  now.Unix(),                // Issued At
		"exp":  now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string and decodes its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	role, _ := claims["role"].(string)

	return &service.TokenClaims{
		UserID: userID,
		Role:   entity.RoleFromString(role),
	}, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
