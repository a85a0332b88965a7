package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the decoded identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for generating and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
