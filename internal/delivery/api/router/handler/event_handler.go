package handler

import (
	"strconv"
	"strings"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
}

// EventHandler serves the event resources.
type EventHandler struct {
	eventUC usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{eventUC: params.EventUC}
}

// EventRequest is the body of event create and update. Absent fields are
// left unchanged on update.
type EventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

// EventListResponse wraps the event list.
type EventListResponse struct {
	Events []*EventSummaryView `json:"events"`
}

// List returns the events matching the query filters.
func (h *EventHandler) List(c echo.Context) error {
	input := &usecase.ListEventsInput{
		Location: c.QueryParam("location"),
		Mine:     queryBool(c, "mine"),
	}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := parseDate(&raw, "date")
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Date = date
	}

	if raw := strings.TrimSpace(c.QueryParam("planner_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.Validation("Invalid planner_id."))
		}
		plannerID := uint(id)
		input.PlannerID = &plannerID
	}

	events, err := h.eventUC.List(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, EventListResponse{Events: presentEventSummaries(events)})
}

// Create creates an event planned by the caller.
func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	date, err := parseDate(req.Date, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateEventInput{
		Title:       stringOrEmpty(req.Title),
		Description: req.Description,
		Date:        date,
		Location:    stringOrEmpty(req.Location),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, presentEvent(event))
}

// Get returns one event.
func (h *EventHandler) Get(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.Get(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentEvent(event))
}

// Update applies a partial update. PATCH and PUT behave the same.
func (h *EventHandler) Update(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	input := &usecase.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			return response.HandleAppError(c, domainerrors.Validation("Date cannot be empty."))
		}
		if input.Date, err = parseDate(req.Date, "date"); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	event, err := h.eventUC.Update(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentEvent(event))
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.eventUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), eventID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Event deleted successfully.")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
