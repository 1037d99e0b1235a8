package middleware

import (
	"strings"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// AuthMiddleware resolves the principal of a request from its bearer token.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{identityUC: params.IdentityUC}
}

// Authenticate rejects requests without a valid access token and stores the
// resolved principal for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing.")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token.")
		}

		principal, err := m.identityUC.ResolvePrincipal(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}
