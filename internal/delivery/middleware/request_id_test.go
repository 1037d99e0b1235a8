package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "eventhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "client id is kept", header: "req-1", expected: "req-1"},
		{name: "missing id is generated"},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var logger *slog.Logger
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				logger = deliverycontext.GetLogger(c.Request().Context())
				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, id)
			} else {
				assert.Len(t, id, 36)
			}
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.NotNil(t, logger)
		})
	}
}
