package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barbermatch/internal/usecase/booking"
	ucProfile "github.com/BruksfildServices01/barbermatch/internal/usecase/profile"
	ucReview "github.com/BruksfildServices01/barbermatch/internal/usecase/review"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BarberHandler struct {
	directory *ucProfile.Directory
	reviews   *ucReview.ListBarberReviews
	slots     *ucBooking.ListFreeSlots
}

func NewBarberHandler(
	directory *ucProfile.Directory,
	reviews *ucReview.ListBarberReviews,
	slots *ucBooking.ListFreeSlots,
) *BarberHandler {
	return &BarberHandler{directory: directory, reviews: reviews, slots: slots}
}

////////////////////////////////////////////////////////
// DIRECTORY
////////////////////////////////////////////////////////

func (h *BarberHandler) List(c *gin.Context) {
	list, err := h.directory.List(c.Request.Context(), ucProfile.DirectoryQuery{
		Query:     c.Query("query"),
		Specialty: c.Query("specialty"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_barbers")
		return
	}

	httpresp.List(c, list)
}

func (h *BarberHandler) Get(c *gin.Context) {
	barber, err := h.directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_barber")
		return
	}

	httpresp.OK(c, barber)
}

////////////////////////////////////////////////////////
// REVIEWS
////////////////////////////////////////////////////////

func (h *BarberHandler) Reviews(c *gin.Context) {
	if _, err := h.directory.Get(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err, "failed_to_load_barber")
		return
	}

	out, err := h.reviews.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_reviews")
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *BarberHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date_or_time", "Query parameter date is required.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), ucBooking.FreeSlotsInput{
		BarberID:    c.Param("id"),
		Date:        date,
		ServiceName: c.Query("service"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_slots")
		return
	}

	httpresp.List(c, slots)
}
