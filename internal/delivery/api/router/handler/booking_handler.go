package handler

import (
	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
}

// BookingHandler serves vendor bookings, both the general and the
// event-scoped routes.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler.
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{bookingUC: params.BookingUC}
}

// CreateBookingRequest is the body of POST /events/bookings/.
type CreateBookingRequest struct {
	EventID   *uint   `json:"event_id"`
	EventName string  `json:"event_name"`
	EventDate *string `json:"event_date"`
	VendorID  uint    `json:"vendor_id"`
	ServiceID uint    `json:"service_id"`
	Notes     *string `json:"notes"`
}

// CreateEventBookingRequest is the body of POST /events/{id}/vendors/.
type CreateEventBookingRequest struct {
	VendorID  uint    `json:"vendor_id"`
	ServiceID uint    `json:"service_id"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// UpdateBookingStatusRequest is the body of both status update routes.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingStatusResponse reports a booking together with its status.
type BookingStatusResponse struct {
	Status  string       `json:"status"`
	Booking *BookingView `json:"booking"`
}

// BookingListResponse wraps the vendor dashboard list.
type BookingListResponse struct {
	Bookings []*BookingView `json:"bookings"`
}

// Create books a service for an existing event or for a new one.
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	eventDate, err := parseDate(req.EventDate, "event_date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateBookingInput{
		EventID:   req.EventID,
		EventName: req.EventName,
		EventDate: eventDate,
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, BookingStatusResponse{Status: string(booking.Status), Booking: presentBooking(booking)})
}

// UpdateStatus changes the status of a booking addressed by id alone.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.updateStatus(c, nil, bookingID)
}

// ListForEvent returns the bookings of an event.
func (h *BookingHandler) ListForEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookings, err := h.bookingUC.ListForEvent(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentBookings(bookings))
}

// CreateForEvent books a service for the event in the path.
func (h *BookingHandler) CreateForEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateEventBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	booking, err := h.bookingUC.CreateForEvent(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, &usecase.CreateEventBookingInput{
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, presentBooking(booking))
}

// Get returns one booking of an event.
func (h *BookingHandler) Get(c echo.Context) error {
	eventID, bookingID, err := eventBookingIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.Get(c.Request().Context(), eventID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentBooking(booking))
}

// UpdateStatusForEvent changes the status of a booking under its event.
func (h *BookingHandler) UpdateStatusForEvent(c echo.Context) error {
	eventID, bookingID, err := eventBookingIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.updateStatus(c, &eventID, bookingID)
}

// Delete removes a booking of an event.
func (h *BookingHandler) Delete(c echo.Context) error {
	eventID, bookingID, err := eventBookingIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.bookingUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, bookingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Booking deleted successfully.")
}

// VendorDashboard returns the caller's vendor bookings, newest first.
func (h *BookingHandler) VendorDashboard(c echo.Context) error {
	bookings, err := h.bookingUC.ListForVendor(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, BookingListResponse{Bookings: presentBookings(bookings)})
}

func (h *BookingHandler) updateStatus(c echo.Context, eventID *uint, bookingID uint) error {
	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	booking, err := h.bookingUC.UpdateStatus(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.UpdateBookingStatusInput{
		EventID:   eventID,
		BookingID: bookingID,
		Status:    req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, BookingStatusResponse{Status: string(booking.Status), Booking: presentBooking(booking)})
}

func eventBookingIDs(c echo.Context) (uint, uint, error) {
	eventID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	bookingID, err := pathID(c, "booking_id")
	if err != nil {
		return 0, 0, err
	}

	return eventID, bookingID, nil
}
