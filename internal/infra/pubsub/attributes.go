package pubsub

import (
	"strconv"

	"eventhub/internal/domain/service"
)

// messageAttributes are attached to every published booking message for
// subscription filtering and tracing.
func messageAttributes(event *service.BookingEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"booking_id": strconv.FormatUint(uint64(event.BookingID), 10),
		"vendor_id":  strconv.FormatUint(uint64(event.VendorID), 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
