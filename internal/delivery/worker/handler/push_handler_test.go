package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/pubsub"
	mockRepo "eventhub/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockBookingRepository) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)

	return NewPushHandler(PushHandlerParams{
		Config:      &config.Config{},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		BookingRepo: bookingRepo,
	}), bookingRepo
}

func pushBody(t *testing.T, event *service.BookingEvent) []byte {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-9"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	confirmed := &entity.Booking{
		ID: 5, VendorID: 2, Status: entity.BookingConfirmed,
		Event:   &entity.Event{Title: "Gala"},
		Service: &entity.Service{Title: "Buffet"},
	}

	tests := []struct {
		name   string
		event  *service.BookingEvent
		setup  func(repo *mockRepo.MockBookingRepository)
		status int
	}{
		{
			name:  "created event is acknowledged",
			event: &service.BookingEvent{Type: service.BookingEventCreated, BookingID: 5},
			setup: func(repo *mockRepo.MockBookingRepository) {
				repo.EXPECT().FindByID(mock.Anything, uint(5)).Return(confirmed, nil)
			},
			status: http.StatusOK,
		},
		{
			name:  "stale status change is dropped",
			event: &service.BookingEvent{Type: service.BookingEventStatusChanged, BookingID: 5, Status: "cancelled"},
			setup: func(repo *mockRepo.MockBookingRepository) {
				repo.EXPECT().FindByID(mock.Anything, uint(5)).Return(confirmed, nil)
			},
			status: http.StatusOK,
		},
		{
			name:  "deleted booking is dropped",
			event: &service.BookingEvent{Type: service.BookingEventStatusChanged, BookingID: 5, Status: "confirmed"},
			setup: func(repo *mockRepo.MockBookingRepository) {
				repo.EXPECT().FindByID(mock.Anything, uint(5)).Return(nil, repository.ErrBookingNotFound)
			},
			status: http.StatusOK,
		},
		{
			name:  "database failure is retried",
			event: &service.BookingEvent{Type: service.BookingEventCreated, BookingID: 5},
			setup: func(repo *mockRepo.MockBookingRepository) {
				repo.EXPECT().FindByID(mock.Anything, uint(5)).Return(nil, errors.New("connection reset"))
			},
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "unknown type is dropped without lookup",
			event:  &service.BookingEvent{Type: "booking.archived", BookingID: 5},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newTestPushHandler(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			rec := servePush(h, pushBody(t, tt.event))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessage(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, []byte(`{"message":{"data":"%%%"}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationSummary(t *testing.T) {
	booking := &entity.Booking{Status: entity.BookingCompleted, Event: &entity.Event{Title: "Gala"}}

	assert.Equal(t, "New booking for a service at Gala.",
		notificationSummary(&service.BookingEvent{Type: service.BookingEventCreated}, booking))
	assert.Equal(t, "Booking for a service at Gala is now completed.",
		notificationSummary(&service.BookingEvent{Type: service.BookingEventStatusChanged}, booking))
}
