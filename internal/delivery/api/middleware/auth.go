package middleware

import (
	"strings"

	"apparel/internal/delivery/api/response"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyRoles = "roles"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token. The caller's ID goes on the
// request context, its roles on the echo context. Refresh tokens are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		c.Set(keyRoles, entity.ParseRoles(claims.Roles))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUser(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Has(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserIDFromContext(c.Request().Context())
}

// GetRoles returns the authenticated user's roles, empty when unauthenticated.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(keyRoles).(entity.Roles)

	return roles
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(c echo.Context) bool {
	return GetRoles(c).Has(entity.RoleAdmin)
}
