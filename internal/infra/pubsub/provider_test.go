package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEventPublisher_DefaultsToNoop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: constants.PubSubProviderNoop}} {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishBookingEvent(context.Background(), &service.BookingEvent{Type: service.BookingEventCreated}))
	}
}

func TestNewEventPublisher_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{"kafka without brokers", &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "t"}},
		{"kafka without topic", &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}}},
		{"unknown provider", &config.PubSubConfig{Provider: "amqp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestNewEventPublisher_Kafka(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc: lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider: constants.PubSubProviderKafka,
			Brokers:  []string{"localhost:9092"},
			TopicID:  "booking-events",
		}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &kafkaPublisher{}, publisher)

	lc.RequireStart().RequireStop()
}

func TestMessageAttributes(t *testing.T) {
	attrs := messageAttributes(&service.BookingEvent{Type: service.BookingEventCreated, BookingID: 12, VendorID: 4})

	assert.Equal(t, map[string]string{
		"event_type": service.BookingEventCreated,
		"booking_id": "12",
		"vendor_id":  "4",
	}, attrs)
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.BookingEvent{
		RequestID: "req-1",
		Type:      service.BookingEventStatusChanged,
		BookingID: 7,
		VendorID:  3,
		Status:    "confirmed",
	}

	require.NoError(t, publisher.PublishBookingEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "7", received.Message.Attributes["booking_id"])
	assert.Equal(t, service.BookingEventStatusChanged, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.BookingEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, uint(7), decoded.BookingID)
	assert.Equal(t, "confirmed", decoded.Status)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishBookingEvent(context.Background(), &service.BookingEvent{Type: service.BookingEventCreated})
	assert.Error(t, err)
}
