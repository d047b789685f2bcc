package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

func (b *BookingController) CreateBookingHandler(c *gin.Context) {
	var req request_models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking created successfully")
}

func (b *BookingController) ListMyBookingsHandler(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.GetBookingsByAccount(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// ListAllBookingsHandler is admin-only, enforced by the route group.
func (b *BookingController) ListAllBookingsHandler(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.GetAllBookings(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (b *BookingController) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	err := b.bookingService.CancelBooking(c.Request.Context(), id, c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled successfully")
}
