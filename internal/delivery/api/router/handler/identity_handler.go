package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// IdentityHandler serves registration, sessions and the caller's profile.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
}

// NewIdentityHandler is the constructor for IdentityHandler.
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
	}
}

// RegisterRequest is the body of POST /users/register/.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	IsVendor  bool   `json:"is_vendor"`
	IsPlanner bool   `json:"is_planner"`
}

// LoginRequest is the body of POST /users/login/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest is the body of PATCH /users/profile/.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitnil,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,max=150"`
	Email     *string `json:"email" validate:"omitnil,email"`
	IsVendor  *bool   `json:"is_vendor"`
	IsPlanner *bool   `json:"is_planner"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	Message      string    `json:"message,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserView `json:"user,omitempty"`
}

func presentAuth(message string, out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Message:      message,
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         presentUser(out.User),
	}
}

// Register creates an account and opens a session.
func (h *IdentityHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.identityUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsVendor:  req.IsVendor,
		IsPlanner: req.IsPlanner,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, presentAuth("User registered successfully.", out))
}

// Login opens a session.
func (h *IdentityHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	out, err := h.identityUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentAuth("Login successful.", out))
}

// RefreshToken rotates the refresh token.
func (h *IdentityHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.identityUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentAuth("", out))
}

// Logout revokes the presented refresh token.
func (h *IdentityHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := h.identityUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Logout successful.")
}

// GetProfile returns the caller's account.
func (h *IdentityHandler) GetProfile(c echo.Context) error {
	user, err := h.identityUC.GetProfile(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentUser(user))
}

// UpdateProfile applies a partial update to the caller's account.
func (h *IdentityHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.identityUC.UpdateProfile(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsVendor:  req.IsVendor,
		IsPlanner: req.IsPlanner,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentUser(user))
}

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
