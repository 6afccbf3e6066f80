package middleware

import (
	"net/http"
	"strings"

	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextKeyUserID is the echo context key holding the authenticated user ID.
	ContextKeyUserID = "userID"
	// ContextKeyRole is the echo context key holding the authenticated role.
	ContextKeyRole = "role"
	// ContextKeyToken is the echo context key holding the raw bearer token.
	ContextKeyToken = "token"
)

// AuthMiddleware provides middleware for session token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.Validate(c.Request().Context(), tokenString)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})
			}

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has one of the
// given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal := c.Get(ContextKeyRole)
			role, ok := roleVal.(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !entity.Roles(requiredRoles).Contains(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + rolesList(requiredRoles) + "' role"})
			}

			return next(c)
		}
	}
}

func rolesList(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}

	return strings.Join(names, "' or '")
}
