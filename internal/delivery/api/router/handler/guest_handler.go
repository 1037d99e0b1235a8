package handler

import (
	"fmt"
	"net/http"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuestHandlerParams holds dependencies for GuestHandler, injected by Fx.
type GuestHandlerParams struct {
	fx.In

	GuestUC usecase.GuestUsecase
}

// GuestHandler serves the guest list of an event.
type GuestHandler struct {
	guestUC usecase.GuestUsecase
}

// NewGuestHandler is the constructor for GuestHandler.
func NewGuestHandler(params GuestHandlerParams) *GuestHandler {
	return &GuestHandler{guestUC: params.GuestUC}
}

// AddGuestRequest is the body of POST /events/{id}/guests/.
type AddGuestRequest struct {
	UserID     *uint   `json:"user_id" validate:"omitnil,gt=0"`
	Name       *string `json:"name" validate:"omitnil,max=255"`
	Email      *string `json:"email" validate:"omitnil,email"`
	RSVPStatus *string `json:"rsvp_status"`
}

// UpdateGuestRequest is the body of PATCH /events/{id}/guests/{guest_id}/.
type UpdateGuestRequest struct {
	Name       *string `json:"name" validate:"omitnil,max=255"`
	Email      *string `json:"email" validate:"omitnil,email"`
	RSVPStatus *string `json:"rsvp_status"`
}

// List returns the guests of an event.
func (h *GuestHandler) List(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	guests, err := h.guestUC.List(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentGuests(guests))
}

// Add invites a guest to an event.
func (h *GuestHandler) Add(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	guest, err := h.guestUC.Add(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, &usecase.AddGuestInput{
		UserID:     req.UserID,
		Name:       req.Name,
		Email:      req.Email,
		RSVPStatus: req.RSVPStatus,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, presentGuest(guest))
}

// Get returns one guest.
func (h *GuestHandler) Get(c echo.Context) error {
	eventID, guestID, err := eventGuestIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	guest, err := h.guestUC.Get(c.Request().Context(), eventID, guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentGuest(guest))
}

// Update applies a partial update to a guest.
func (h *GuestHandler) Update(c echo.Context) error {
	eventID, guestID, err := eventGuestIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	guest, err := h.guestUC.Update(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, guestID, &usecase.UpdateGuestInput{
		Name:       req.Name,
		Email:      req.Email,
		RSVPStatus: req.RSVPStatus,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentGuest(guest))
}

// Delete removes a guest.
func (h *GuestHandler) Delete(c echo.Context) error {
	eventID, guestID, err := eventGuestIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.guestUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, guestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Guest removed successfully.")
}

// InvitationQR returns the guest's invitation as a PNG image.
func (h *GuestHandler) InvitationQR(c echo.Context) error {
	eventID, guestID, err := eventGuestIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.guestUC.InvitationQR(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, guestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="invitation-%d-%d.png"`, eventID, guestID))

	return c.Blob(http.StatusOK, "image/png", png)
}

func eventGuestIDs(c echo.Context) (uint, uint, error) {
	eventID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	guestID, err := pathID(c, "guest_id")
	if err != nil {
		return 0, 0, err
	}

	return eventID, guestID, nil
}
