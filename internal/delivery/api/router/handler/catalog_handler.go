package handler

import (
	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
}

// CatalogHandler serves the services a vendor offers.
type CatalogHandler struct {
	serviceUC usecase.ServiceUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{serviceUC: params.ServiceUC}
}

// ServiceRequest is the body of service create and update. Price accepts a
// JSON number or a decimal string.
type ServiceRequest struct {
	Title             *string          `json:"title" validate:"omitnil,max=255"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	Category          *string          `json:"category" validate:"omitnil,max=100"`
	AvailabilityNotes *string          `json:"availability_notes"`
}

// ServiceListResponse wraps a vendor's services.
type ServiceListResponse struct {
	Services []*ServiceView `json:"services"`
}

// ServiceResponse wraps a single service.
type ServiceResponse struct {
	Service *ServiceView `json:"service"`
}

// List returns the services of a vendor.
func (h *CatalogHandler) List(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	services, err := h.serviceUC.List(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ServiceListResponse{Services: presentServices(services)})
}

// Create adds a service to the caller's vendor.
func (h *CatalogHandler) Create(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindServiceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	service, err := h.serviceUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, &usecase.CreateServiceInput{
		Title:             stringOrEmpty(req.Title),
		Description:       stringOrEmpty(req.Description),
		Price:             req.Price,
		Category:          req.Category,
		AvailabilityNotes: req.AvailabilityNotes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, ServiceResponse{Service: presentService(service)})
}

// Get returns one service.
func (h *CatalogHandler) Get(c echo.Context) error {
	vendorID, serviceID, err := vendorChildIDs(c, "service_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	service, err := h.serviceUC.Get(c.Request().Context(), vendorID, serviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ServiceResponse{Service: presentService(service)})
}

// Update applies a partial update to a service.
func (h *CatalogHandler) Update(c echo.Context) error {
	vendorID, serviceID, err := vendorChildIDs(c, "service_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindServiceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	service, err := h.serviceUC.Update(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, serviceID, &usecase.UpdateServiceInput{
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		Category:          req.Category,
		AvailabilityNotes: req.AvailabilityNotes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ServiceResponse{Service: presentService(service)})
}

// Delete removes a service.
func (h *CatalogHandler) Delete(c echo.Context) error {
	vendorID, serviceID, err := vendorChildIDs(c, "service_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.serviceUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, serviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Service deleted successfully.")
}

func bindServiceRequest(c echo.Context) (*ServiceRequest, error) {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.Validation(response.InvalidBodyMessage)
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func vendorChildIDs(c echo.Context, child string) (uint, uint, error) {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	childID, err := pathID(c, child)
	if err != nil {
		return 0, 0, err
	}

	return vendorID, childID, nil
}
