package handlers

import (
	"net/http"
	"time"

	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type bookingInput struct {
	RoomID   string `json:"roomId" binding:"required"`
	GuestID  string `json:"guestId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	BookedBy string `json:"bookedBy"`
}

func (in *bookingInput) toRequest() (booking.CreateBookingRequest, error) {
	checkIn, err := time.Parse("2006-01-02", in.CheckIn)
	if err != nil {
		return booking.CreateBookingRequest{}, utils.NewInvalidArgument("checkIn must be a YYYY-MM-DD date")
	}
	checkOut, err := time.Parse("2006-01-02", in.CheckOut)
	if err != nil {
		return booking.CreateBookingRequest{}, utils.NewInvalidArgument("checkOut must be a YYYY-MM-DD date")
	}
	return booking.CreateBookingRequest{
		RoomID:   in.RoomID,
		GuestID:  in.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   in.Adults,
		Children: in.Children,
		BookedBy: in.BookedBy,
	}, nil
}

// CreateBookingHandler reserves a room for a guest.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req, err := input.toRequest()
	if err != nil {
		respondError(c, err)
		return
	}
	bk, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// UpdateBookingHandler re-dates or re-rooms an existing booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req, err := input.toRequest()
	if err != nil {
		respondError(c, err)
		return
	}
	bk, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	bk, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bk, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CheckAvailabilityHandler reports whether a room is free for a stay.
// The answer is advisory; the booking write re-checks transactionally.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	roomID := c.Param("id")
	checkIn, err := time.Parse("2006-01-02", c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn must be a YYYY-MM-DD date"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be a YYYY-MM-DD date"})
		return
	}
	available, err := h.Service.ProbeAvailability(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "available": available})
}
