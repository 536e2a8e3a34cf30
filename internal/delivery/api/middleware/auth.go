package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// Echo context keys set by Authenticate
	KeyServiceName = "service"
	KeyRoles       = "roles"
)

// AuthMiddleware authenticates the marketplace backends calling the bot API
// with service tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer service token and stores the calling
// service and its roles on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("bearer token required")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("[Auth] Rejected service token",
				slog.Any("error", err),
			)

			return domainerrors.ErrServiceTokenInvalid.WrapMessage(err.Error())
		}

		c.Set(KeyServiceName, claims.Service)
		c.Set(KeyRoles, entity.RolesFromClaims(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects callers whose token lacks role. It must be used after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(KeyRoles).(entity.Roles)
			if !ok || !roles.Contains(role) {
				return domainerrors.ErrForbidden.WrapMessage("require role " + role.String())
			}

			return next(c)
		}
	}
}
