package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is the echo.Context key for the authenticated user ID.
	ContextKeyUserID = "userID"

	// ContextKeyRole is the echo.Context key for the authenticated user's role.
	ContextKeyRole = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// UserIDFromContext extracts the authenticated user ID placed by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
