package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves service reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for POST /api/services/:id/reviews
type CreateReviewRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// ListServiceReviews handles GET /api/services/:id/reviews
func (h *ReviewHandler) ListServiceReviews(c echo.Context) error {
	serviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListServiceReviews(c.Request().Context(), serviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews))
}

// CreateReview handles POST /api/services/:id/reviews
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	serviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	// Range checks live in the use case so every caller gets them.
	review, err := h.reviewUC.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		ServiceID: serviceID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(review))
}

// ListUserReviews handles GET /api/users/:userId/reviews
func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListUserReviews(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews))
}

// ListAllReviews handles GET /api/reviews/all (admin)
func (h *ReviewHandler) ListAllReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListAllReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews))
}

// DeleteReview handles DELETE /api/reviews/:id (admin)
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.DeleteReview(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review))
}
