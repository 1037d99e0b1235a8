package handler

import (
	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves vendor reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// CreateReviewRequest is the body of POST /vendors/{id}/reviews/.
type CreateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewListResponse wraps a vendor's reviews.
type ReviewListResponse struct {
	Reviews []*ReviewView `json:"reviews"`
}

// ReviewResponse wraps a single review.
type ReviewResponse struct {
	Review *ReviewView `json:"review"`
}

// List returns the reviews of a vendor.
func (h *ReviewHandler) List(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.List(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ReviewListResponse{Reviews: presentReviews(reviews)})
}

// Create reviews a vendor as the caller.
func (h *ReviewHandler) Create(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	review, err := h.reviewUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, &usecase.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, ReviewResponse{Review: presentReview(review)})
}

// Get returns one review.
func (h *ReviewHandler) Get(c echo.Context) error {
	vendorID, reviewID, err := vendorChildIDs(c, "review_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.Get(c.Request().Context(), vendorID, reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ReviewResponse{Review: presentReview(review)})
}

// Delete removes a review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	vendorID, reviewID, err := vendorChildIDs(c, "review_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), vendorID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Review deleted successfully.")
}
