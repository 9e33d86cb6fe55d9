package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportszone/internal/service"
)

// ReviewHandler serves testimonials.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} object
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewService.ListReviews(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, reviews)
}
