package context

import (
	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the echo.Context key of the authenticated principal.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	if p, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return p
	}

	return nil
}
