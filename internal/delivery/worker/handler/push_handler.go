package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// errStaleEvent marks an event that no longer describes the stored booking.
var errStaleEvent = errors.New("stale booking event")

// PushHandler consumes booking events pushed by Pub/Sub and records the
// vendor notification for each one.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	bookingRepo    repository.BookingRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	BookingRepo repository.BookingRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests, and not in local development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		bookingRepo:    params.BookingRepo,
	}
}

// HandlePush handles one push delivery. Malformed messages are rejected
// with 400, transient failures answer 503 so Pub/Sub redelivers, and
// everything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse booking event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processBookingEvent(ctx, &event); err != nil {
		if isRetryableError(err) {
			reqLogger.Error("[Worker] Failed to process booking event",
				slog.String("type", event.Type),
				slog.Uint64("booking_id", uint64(event.BookingID)),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusServiceUnavailable)
		}

		reqLogger.Warn("[Worker] Dropping booking event",
			slog.String("type", event.Type),
			slog.Uint64("booking_id", uint64(event.BookingID)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the
// X-Request-Id of the push request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.BookingEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	switch event.Type {
	case service.BookingEventCreated, service.BookingEventStatusChanged:
	default:
		return errors.Errorf("unknown booking event type %q", event.Type)
	}

	if event.BookingID == 0 {
		return errors.New("booking event without booking id")
	}

	booking, err := h.bookingRepo.FindByID(ctx, event.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			// Deleted since publishing; nothing left to notify about.
			return errors.WithStack(errStaleEvent)
		}

		return newRetryableError(err)
	}

	// A later status change supersedes this one and carries its own event.
	if event.Type == service.BookingEventStatusChanged && string(booking.Status) != event.Status {
		return errors.Wrapf(errStaleEvent, "booking is %s, event says %s", booking.Status, event.Status)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Vendor notified of booking",
		slog.String("type", event.Type),
		slog.Uint64("booking_id", uint64(booking.ID)),
		slog.Uint64("vendor_id", uint64(booking.VendorID)),
		slog.String("status", string(booking.Status)),
		slog.String("summary", notificationSummary(event, booking)),
	)

	return nil
}

func notificationSummary(event *service.BookingEvent, booking *entity.Booking) string {
	eventTitle := "an event"
	if booking.Event != nil && booking.Event.Title != "" {
		eventTitle = booking.Event.Title
	}

	serviceTitle := "a service"
	if booking.Service != nil && booking.Service.Title != "" {
		serviceTitle = booking.Service.Title
	}

	if event.Type == service.BookingEventCreated {
		return fmt.Sprintf("New booking for %s at %s.", serviceTitle, eventTitle)
	}

	return fmt.Sprintf("Booking for %s at %s is now %s.", serviceTitle, eventTitle, booking.Status)
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to push requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
