package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/middleware"
	ucReview "github.com/BruksfildServices01/barbermatch/internal/usecase/review"
)

type ReviewHandler struct {
	submit *ucReview.SubmitReview
}

func NewReviewHandler(submit *ucReview.SubmitReview) *ReviewHandler {
	return &ReviewHandler{submit: submit}
}

type SubmitReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	r, err := h.submit.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		Actor:     middleware.Actor(c),
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_submit_review")
		return
	}

	c.JSON(http.StatusCreated, r)
}
