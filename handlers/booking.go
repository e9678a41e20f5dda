package handlers

import (
	"net/http"

	"labtrack/middleware"
	booking "labtrack/services/booking"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input struct {
		TestIDs []string `json:"testIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please select at least 1 test.")
		return
	}

	created, err := h.Service.CreateBooking(caller, input.TestIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSONSuccess(c, "Booking created successfully", created)
}

// ListMine handles GET /bookings/mine.
func (h *BookingHandler) ListMine(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	bookings, err := h.Service.ListMine(caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSONSuccess(c, "", bookings)
}

// GetQueue handles GET /bookings/queue?includePublished=0|1.
func (h *BookingHandler) GetQueue(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	include := c.Query("includePublished")
	includePublished := include == "1" || include == "true"

	entries, err := h.Service.ListQueue(caller, includePublished)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSONSuccess(c, "", entries)
}

// UpdateTestStatus handles PATCH /bookings/:bookingId/tests/:itemId/status.
func (h *BookingHandler) UpdateTestStatus(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	updated, err := h.Service.AdvanceTestStatus(caller, c.Param("bookingId"), c.Param("itemId"), input.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSONSuccess(c, "Test status updated", updated)
}

// PublishTestResult handles PUT /bookings/:bookingId/tests/:itemId/result.
func (h *BookingHandler) PublishTestResult(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input struct {
		Result string `json:"result"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Result is required")
		return
	}

	updated, err := h.Service.PublishTestResult(caller, c.Param("bookingId"), c.Param("itemId"), input.Result, input.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSONSuccess(c, "Result published", updated)
}

// respondError maps workflow error codes onto HTTP statuses. Anything that is
// not a WorkflowError is an internal fault and surfaces as a generic message.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch booking.ErrorCode(err) {
	case booking.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, booking.UserMessage(err))
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, booking.UserMessage(err))
	case booking.CodeInvalidInput, booking.CodeInvalidTransition:
		utils.JSONError(c, http.StatusBadRequest, booking.UserMessage(err))
	default:
		utils.GetLogger().Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
