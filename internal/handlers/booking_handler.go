package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/dto"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/httpresp"
	"github.com/BruksfildServices01/barbermatch/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbermatch/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create  *ucBooking.CreateBooking
	propose *ucBooking.ProposePrice
	respond *ucBooking.RespondToProposal
	status  *ucBooking.UpdateBookingStatus
	get     *ucBooking.GetBooking
	list    *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	propose *ucBooking.ProposePrice,
	respond *ucBooking.RespondToProposal,
	status *ucBooking.UpdateBookingStatus,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create:  create,
		propose: propose,
		respond: respond,
		status:  status,
		get:     get,
		list:    list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID    string `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceName string `json:"service_name"`
	Style       string `json:"style"`
	Notes       string `json:"notes"`
}

type ProposePriceRequest struct {
	Price float64 `json:"price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:       middleware.Actor(c),
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
		ServiceName: req.ServiceName,
		Style:       req.Style,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// READS
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	list, err := h.list.Execute(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_bookings")
		return
	}

	httpresp.List(c, dto.BookingList(actor, list))
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_booking")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// NEGOTIATION
// ======================================================

func (h *BookingHandler) ProposePrice(c *gin.Context) {
	var req ProposePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	b, err := h.propose.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Price)
	if err != nil {
		httperr.FromError(c, err, "failed_to_propose_price")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) AcceptProposal(c *gin.Context) {
	h.respondToProposal(c, true)
}

func (h *BookingHandler) RejectProposal(c *gin.Context) {
	h.respondToProposal(c, false)
}

func (h *BookingHandler) respondToProposal(c *gin.Context, accept bool) {
	b, err := h.respond.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), accept)
	if err != nil {
		httperr.FromError(c, err, "failed_to_respond_to_proposal")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	b, err := h.status.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Status)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_booking")
		return
	}

	httpresp.OK(c, b)
}
