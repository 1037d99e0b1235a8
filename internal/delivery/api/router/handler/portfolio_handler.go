package handler

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PortfolioHandlerParams holds dependencies for PortfolioHandler, injected by Fx.
type PortfolioHandlerParams struct {
	fx.In

	PortfolioUC usecase.PortfolioUsecase
	Logger      *slog.Logger
}

// PortfolioHandler serves vendor portfolio items.
type PortfolioHandler struct {
	portfolioUC usecase.PortfolioUsecase
	logger      *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler.
func NewPortfolioHandler(params PortfolioHandlerParams) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUC: params.PortfolioUC,
		logger:      params.Logger,
	}
}

// PortfolioListResponse wraps a vendor's portfolio.
type PortfolioListResponse struct {
	PortfolioItems []*PortfolioItemView `json:"portfolio_items"`
}

// PortfolioItemResponse wraps a single portfolio item.
type PortfolioItemResponse struct {
	PortfolioItem *PortfolioItemView `json:"portfolio_item"`
}

// List returns the portfolio of a vendor.
func (h *PortfolioHandler) List(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.portfolioUC.List(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, PortfolioListResponse{PortfolioItems: presentPortfolioItems(items)})
}

// Create uploads a portfolio item from a multipart form with the fields
// image and description.
func (h *PortfolioHandler) Create(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreatePortfolioItemInput{
		Description: c.FormValue("description"),
	}

	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
					Warn("Failed to close uploaded file", slog.Any("error", closeErr))
			}
		}()

		input.Image = &usecase.UploadedFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:        fileHeader.Size,
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// The use case reports the missing file together with the description.
	default:
		return response.BadRequest(c, "Invalid multipart form.")
	}

	item, err := h.portfolioUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, PortfolioItemResponse{PortfolioItem: presentPortfolioItem(item)})
}

// Get returns one portfolio item.
func (h *PortfolioHandler) Get(c echo.Context) error {
	vendorID, itemID, err := vendorChildIDs(c, "item_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.portfolioUC.Get(c.Request().Context(), vendorID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, PortfolioItemResponse{PortfolioItem: presentPortfolioItem(item)})
}

// Delete removes a portfolio item.
func (h *PortfolioHandler) Delete(c echo.Context) error {
	vendorID, itemID, err := vendorChildIDs(c, "item_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.portfolioUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Portfolio item deleted successfully.")
}
