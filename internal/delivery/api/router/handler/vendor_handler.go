package handler

import (
	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
}

// VendorHandler serves the vendor directory and the caller's own vendor profile.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{vendorUC: params.VendorUC}
}

// UpdateVendorProfileRequest is the body of PATCH /vendors/me/. An absent
// field is unchanged; an empty string clears it.
type UpdateVendorProfileRequest struct {
	BusinessName *string `json:"business_name" validate:"omitnil,max=255"`
	Description  *string `json:"description"`
	Location     *string `json:"location" validate:"omitnil,max=255"`
	ContactInfo  *string `json:"contact_info" validate:"omitnil,max=255"`
	ProfilePic   *string `json:"profile_pic" validate:"omitnil,max=500"`
}

// VendorListResponse wraps the vendor directory.
type VendorListResponse struct {
	Vendors []*VendorView `json:"vendors"`
}

// VendorResponse wraps a single vendor.
type VendorResponse struct {
	Vendor any `json:"vendor"`
}

// VendorProfileUpdatedResponse is returned after a self-profile update.
type VendorProfileUpdatedResponse struct {
	Message string      `json:"message"`
	Vendor  *VendorView `json:"vendor"`
}

// List returns the vendor directory filtered by the query.
func (h *VendorHandler) List(c echo.Context) error {
	priceMin, err := queryDecimal(c, "price_min")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	priceMax, err := queryDecimal(c, "price_max")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	vendors, err := h.vendorUC.List(c.Request().Context(), &usecase.ListVendorsInput{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		PriceMin: priceMin,
		PriceMax: priceMax,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, VendorListResponse{Vendors: presentVendors(vendors)})
}

// Get returns a vendor with its services.
func (h *VendorHandler) Get(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.vendorUC.Get(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, VendorResponse{Vendor: &VendorDetailView{
		VendorView: presentVendor(detail.Vendor),
		Services:   presentServices(detail.Services),
	}})
}

// GetOwn returns the caller's vendor profile.
func (h *VendorHandler) GetOwn(c echo.Context) error {
	vendor, err := h.vendorUC.GetOwn(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, VendorResponse{Vendor: presentVendor(vendor)})
}

// UpdateOwn applies a partial update to the caller's vendor profile.
func (h *VendorHandler) UpdateOwn(c echo.Context) error {
	var req UpdateVendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	vendor, err := h.vendorUC.UpdateOwn(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.UpdateVendorProfileInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Location:     req.Location,
		ContactInfo:  req.ContactInfo,
		ProfilePic:   req.ProfilePic,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, VendorProfileUpdatedResponse{
		Message: "Vendor profile updated successfully.",
		Vendor:  presentVendor(vendor),
	})
}

// Categories lists the service categories.
func (h *VendorHandler) Categories(c echo.Context) error {
	categories, err := h.vendorUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, presentCategories(categories))
}
