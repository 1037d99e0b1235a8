package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router"
	"eventhub/internal/delivery/api/router/handler"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	plannerToken = "planner-token"
	vendorToken  = "vendor-token"
	plainToken   = "plain-token"
)

var (
	testPlanner = &entity.Principal{UserID: 1, Username: "pat", Capabilities: entity.Capabilities{entity.CapabilityPlanner}}
	testVendor  = &entity.Principal{UserID: 50, Username: "val", Capabilities: entity.Capabilities{entity.CapabilityVendor}}
	testPlain   = &entity.Principal{UserID: 3, Username: "una"}
)

type testAPI struct {
	echo      *echo.Echo
	identity  *mockUsecase.MockIdentityUsecase
	events    *mockUsecase.MockEventUsecase
	bookings  *mockUsecase.MockBookingUsecase
	guests    *mockUsecase.MockGuestUsecase
	vendors   *mockUsecase.MockVendorUsecase
	services  *mockUsecase.MockServiceUsecase
	portfolio *mockUsecase.MockPortfolioUsecase
	reviews   *mockUsecase.MockReviewUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	api := &testAPI{
		echo:      NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))),
		identity:  mockUsecase.NewMockIdentityUsecase(t),
		events:    mockUsecase.NewMockEventUsecase(t),
		bookings:  mockUsecase.NewMockBookingUsecase(t),
		guests:    mockUsecase.NewMockGuestUsecase(t),
		vendors:   mockUsecase.NewMockVendorUsecase(t),
		services:  mockUsecase.NewMockServiceUsecase(t),
		portfolio: mockUsecase.NewMockPortfolioUsecase(t),
		reviews:   mockUsecase.NewMockReviewUsecase(t),
	}

	api.identity.EXPECT().ResolvePrincipal(mock.Anything, plannerToken).Return(testPlanner, nil).Maybe()
	api.identity.EXPECT().ResolvePrincipal(mock.Anything, vendorToken).Return(testVendor, nil).Maybe()
	api.identity.EXPECT().ResolvePrincipal(mock.Anything, plainToken).Return(testPlain, nil).Maybe()

	router.NewRouter(router.RouterParams{
		IdentityHandler:  handler.NewIdentityHandler(handler.IdentityHandlerParams{IdentityUC: api.identity}),
		EventHandler:     handler.NewEventHandler(handler.EventHandlerParams{EventUC: api.events}),
		BookingHandler:   handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: api.bookings}),
		GuestHandler:     handler.NewGuestHandler(handler.GuestHandlerParams{GuestUC: api.guests}),
		VendorHandler:    handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: api.vendors}),
		CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{ServiceUC: api.services}),
		PortfolioHandler: handler.NewPortfolioHandler(handler.PortfolioHandlerParams{PortfolioUC: api.portfolio, Logger: slog.Default()}),
		ReviewHandler:    handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: api.reviews}),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{IdentityUC: api.identity}),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestAuth_RequiresBearerToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/events/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is missing.", decode(t, rec)["error"])

	api.identity.EXPECT().ResolvePrincipal(mock.Anything, "expired").Return(nil, domainerrors.ErrTokenInvalid)

	rec = api.do(http.MethodGet, "/events/", "expired", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token.", decode(t, rec)["error"])
}

func TestEvents_Create(t *testing.T) {
	api := newTestAPI(t)
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	api.events.EXPECT().
		Create(mock.Anything, testPlanner, mock.MatchedBy(func(in *usecase.CreateEventInput) bool {
			return in.Title == "Wedding" && in.Location == "Garden Hall" && in.Date != nil && in.Date.Equal(date)
		})).
		Return(&entity.Event{ID: 7, PlannerID: 1, PlannerUsername: "pat", Title: "Wedding", Date: date, Location: "Garden Hall"}, nil)

	rec := api.do(http.MethodPost, "/events/create/", plannerToken, map[string]any{
		"title":    "Wedding",
		"date":     "2025-06-01T18:00:00Z",
		"location": "Garden Hall",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.EqualValues(t, 0, body["guest_count"])
	assert.EqualValues(t, 0, body["vendor_count"])
	assert.Equal(t, "pat", body["planner"])
	assert.Equal(t, "June 01, 2025", body["date_display"])
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestEvents_Create_NonPlanner(t *testing.T) {
	api := newTestAPI(t)

	api.events.EXPECT().Create(mock.Anything, testPlain, mock.Anything).Return(nil, domainerrors.Forbidden("Permission denied."))

	rec := api.do(http.MethodPost, "/events/create/", plainToken, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Permission denied.", decode(t, rec)["error"])
}

func TestEvents_Create_InvalidDate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/events/create/", plannerToken, map[string]any{"title": "x", "date": "soon", "location": "y"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid date format.", decode(t, rec)["error"])
}

func TestEvents_ListFilters(t *testing.T) {
	api := newTestAPI(t)

	api.events.EXPECT().
		List(mock.Anything, testPlanner, mock.MatchedBy(func(in *usecase.ListEventsInput) bool {
			return in.Mine && in.Location == "hall" && in.PlannerID != nil && *in.PlannerID == 4 &&
				in.Date != nil && in.Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return([]*entity.Event{{ID: 1, Title: "Wedding", GuestCount: 3}}, nil)

	rec := api.do(http.MethodGet, "/events?date=2025-06-01&location=hall&planner_id=4&mine=1", plannerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	events := decode(t, rec)["events"].([]any)
	require.Len(t, events, 1)
	summary := events[0].(map[string]any)
	assert.EqualValues(t, 3, summary["guest_count"])
	assert.NotContains(t, summary, "description")
}

func TestBookings_UpdateStatus(t *testing.T) {
	t.Run("owning vendor", func(t *testing.T) {
		api := newTestAPI(t)

		api.bookings.EXPECT().
			UpdateStatus(mock.Anything, testVendor, &usecase.UpdateBookingStatusInput{BookingID: 5, Status: "confirmed"}).
			Return(&entity.Booking{ID: 5, Status: entity.BookingConfirmed}, nil)

		rec := api.do(http.MethodPatch, "/events/bookings/5/", vendorToken, map[string]any{"status": "confirmed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decode(t, rec)
		assert.Equal(t, "confirmed", body["status"])
		assert.EqualValues(t, 5, body["booking"].(map[string]any)["id"])
	})

	t.Run("unrelated user", func(t *testing.T) {
		api := newTestAPI(t)

		api.bookings.EXPECT().UpdateStatus(mock.Anything, testPlain, mock.Anything).Return(nil, domainerrors.ErrPermissionDenied)

		rec := api.do(http.MethodPatch, "/events/bookings/5/", plainToken, map[string]any{"status": "confirmed"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("event scoped path carries the event", func(t *testing.T) {
		api := newTestAPI(t)
		eventID := uint(10)

		api.bookings.EXPECT().
			UpdateStatus(mock.Anything, testPlanner, &usecase.UpdateBookingStatusInput{EventID: &eventID, BookingID: 5, Status: "completed"}).
			Return(&entity.Booking{ID: 5, Status: entity.BookingCompleted}, nil)

		rec := api.do(http.MethodPatch, "/events/10/vendors/5/", plannerToken, map[string]any{"status": "completed"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBookings_CreateGeneral(t *testing.T) {
	api := newTestAPI(t)

	api.bookings.EXPECT().
		Create(mock.Anything, testPlanner, mock.MatchedBy(func(in *usecase.CreateBookingInput) bool {
			return in.EventID == nil && in.EventName == "Gala" && in.EventDate != nil && in.VendorID == 2 && in.ServiceID == 3
		})).
		Return(&entity.Booking{ID: 9, Status: entity.BookingPending}, nil)

	rec := api.do(http.MethodPost, "/events/bookings/", plannerToken, map[string]any{
		"event_name": "Gala",
		"event_date": "2025-07-01",
		"vendor_id":  2,
		"service_id": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "pending", decode(t, rec)["status"])
}

func TestBookings_DuplicateIsConflict(t *testing.T) {
	api := newTestAPI(t)

	api.bookings.EXPECT().CreateForEvent(mock.Anything, testPlanner, uint(10), mock.Anything).Return(nil, domainerrors.ErrDuplicateBooking)

	rec := api.do(http.MethodPost, "/events/10/vendors/", plannerToken, map[string]any{"vendor_id": 2, "service_id": 3})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Booking already exists for this vendor and service.", decode(t, rec)["error"])
}

func TestVendors_ListPriceRange(t *testing.T) {
	api := newTestAPI(t)

	api.vendors.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(in *usecase.ListVendorsInput) bool {
			return in.PriceMin != nil && in.PriceMax != nil &&
				in.PriceMin.Equal(decimal.NewFromInt(50)) && in.PriceMax.Equal(decimal.NewFromInt(200))
		})).
		Return([]*entity.VendorProfile{{ID: 1, BusinessName: "Cakes", Stats: entity.VendorStats{AverageRating: 4.5}}}, nil)

	rec := api.do(http.MethodGet, "/vendors/?price_min=50&price_max=200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	vendors := decode(t, rec)["vendors"].([]any)
	require.Len(t, vendors, 1)
	assert.InDelta(t, 4.5, vendors[0].(map[string]any)["average_rating"], 0.001)
}

func TestVendors_InvalidPrice(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/vendors/?price_min=cheap", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid price_min.", decode(t, rec)["error"])
}

func TestVendors_UpdateOwn_ExplicitPresence(t *testing.T) {
	api := newTestAPI(t)

	api.vendors.EXPECT().
		UpdateOwn(mock.Anything, testVendor, mock.MatchedBy(func(in *usecase.UpdateVendorProfileInput) bool {
			return in.BusinessName == nil && in.Location != nil && *in.Location == "" && in.Description == nil
		})).
		Return(&entity.VendorProfile{ID: 1, BusinessName: "Cakes"}, nil)

	rec := api.do(http.MethodPatch, "/vendors/me/", vendorToken, map[string]any{"location": ""})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Vendor profile updated successfully.", decode(t, rec)["message"])
}

func TestVendors_CategoriesWithoutTrailingSlash(t *testing.T) {
	api := newTestAPI(t)

	api.vendors.EXPECT().ListCategories(mock.Anything).Return([]*entity.ServiceCategory{{ID: 1, Name: "Catering"}}, nil)

	rec := api.do(http.MethodGet, "/vendors/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Catering","description":null}]`, rec.Body.String())
}

func TestServices_PriceRenderedWithTwoDecimals(t *testing.T) {
	api := newTestAPI(t)

	api.services.EXPECT().Get(mock.Anything, uint(1), uint(9)).Return(&entity.Service{
		ID: 9, VendorID: 1, VendorName: "Cakes", Title: "Buffet", Price: decimal.RequireFromString("150.5"),
		Category: &entity.ServiceCategory{ID: 4, Name: "Catering"},
	}, nil)

	rec := api.do(http.MethodGet, "/vendors/1/services/9/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	service := decode(t, rec)["service"].(map[string]any)
	assert.Equal(t, "150.50", service["price"])
	assert.Equal(t, "Catering", service["category"])
}

func TestServices_CreateRequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/vendors/1/services/", "", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReviews_RatingOutOfRange(t *testing.T) {
	api := newTestAPI(t)

	api.reviews.EXPECT().
		Create(mock.Anything, testPlain, uint(1), mock.MatchedBy(func(in *usecase.CreateReviewInput) bool { return in.Rating != nil && *in.Rating == 6 })).
		Return(nil, domainerrors.Validation("Rating must be between 1 and 5."))

	rec := api.do(http.MethodPost, "/vendors/1/reviews/", plainToken, map[string]any{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Rating must be between 1 and 5.", decode(t, rec)["error"])
}

func TestGuests_InvitationQR(t *testing.T) {
	api := newTestAPI(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	api.guests.EXPECT().InvitationQR(mock.Anything, testPlanner, uint(10), uint(7)).Return(png, nil)

	rec := api.do(http.MethodGet, "/events/10/guests/7/qrcode/", plannerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestGuests_LinkedGuestSerialization(t *testing.T) {
	api := newTestAPI(t)
	userID := uint(4)
	name := "Grace Hopper"

	api.guests.EXPECT().List(mock.Anything, uint(10)).Return([]*entity.Guest{{
		ID: 7, EventTitle: "Gala", UserID: &userID, Name: &name, Email: "grace@example.com", RSVPStatus: entity.RSVPInvited,
		User: &entity.User{ID: 4, Username: "grace", Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
	}}, nil)

	rec := api.do(http.MethodGet, "/events/10/guests/", plainToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var guests []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guests))
	require.Len(t, guests, 1)
	assert.Equal(t, "Gala", guests[0]["event"])
	assert.Equal(t, "Grace Hopper", guests[0]["user"].(map[string]any)["full_name"])
}

func TestPortfolio_MultipartUpload(t *testing.T) {
	api := newTestAPI(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("description", "Wedding cake"))
	part, err := form.CreateFormFile("image", "cake.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	api.portfolio.EXPECT().
		Create(mock.Anything, testVendor, uint(1), mock.MatchedBy(func(in *usecase.CreatePortfolioItemInput) bool {
			return in.Description == "Wedding cake" && in.Image != nil && in.Image.Filename == "cake.jpg" && in.Image.Size == 10
		})).
		Return(&entity.PortfolioItem{ID: 3, VendorName: "Cakes", ImageURL: "https://cdn.example.com/k.jpg"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/vendors/1/portfolio/", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+vendorToken)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decode(t, rec)["portfolio_item"].(map[string]any)
	assert.Equal(t, "https://cdn.example.com/k.jpg", item["image"])
}

func TestIdentity_Register(t *testing.T) {
	api := newTestAPI(t)

	api.identity.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool { return in.Username == "pat" && in.IsPlanner })).
		Return(&usecase.AuthOutput{AccessToken: "a", RefreshToken: "r", User: &entity.User{ID: 1, Username: "pat", IsPlanner: true}}, nil)

	rec := api.do(http.MethodPost, "/users/register/", "", map[string]any{
		"username": "pat", "password": "secret", "email": "pat@example.com", "is_planner": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "User registered successfully.", body["message"])
	assert.Equal(t, "a", body["access_token"])
	assert.Equal(t, true, body["user"].(map[string]any)["is_planner"])
}

func TestIdentity_Register_InvalidEmail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/users/register/", "", map[string]any{"username": "pat", "password": "x", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email address.", decode(t, rec)["error"])
}

func TestIdentity_UpdateProfile_EmailCannotBeCleared(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPatch, "/users/profile/", plainToken, map[string]any{"email": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email address.", decode(t, rec)["error"])
}

func TestGuests_Add_InvalidEmail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/events/5/guests/", plannerToken, map[string]any{"name": "Ann", "email": "ann@"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email address.", decode(t, rec)["error"])
}

func TestIdentity_RefreshRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/users/token/refresh/", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "refresh_token is required.", decode(t, rec)["error"])
}

func TestErrors_Envelope(t *testing.T) {
	t.Run("method not allowed", func(t *testing.T) {
		tests := []struct {
			method string
			path   string
		}{
			{http.MethodPost, "/vendors/1/"},
			{http.MethodGet, "/events/create/"},
			{http.MethodPost, "/events/5/"},
			{http.MethodPut, "/events/5/guests/"},
		}

		for _, tt := range tests {
			t.Run(tt.method+" "+tt.path, func(t *testing.T) {
				api := newTestAPI(t)

				rec := api.do(tt.method, tt.path, plannerToken, nil)
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.Equal(t, "Method not allowed.", decode(t, rec)["error"])
			})
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/nowhere/", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not found.", decode(t, rec)["error"])
	})

	t.Run("non numeric id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/vendors/abc/services/", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		api := newTestAPI(t)

		api.vendors.EXPECT().Get(mock.Anything, uint(1)).Return(nil, errors.New("pq: connection refused"))

		rec := api.do(http.MethodGet, "/vendors/1/", "", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, strings.Contains(rec.Body.String(), "connection refused"))
		assert.Equal(t, domainerrors.ErrInternalError.Message(), decode(t, rec)["error"])
	})

	t.Run("request id is echoed", func(t *testing.T) {
		api := newTestAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/health/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		api.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
