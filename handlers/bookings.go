package handlers

import (
	"net/http"

	"utsavia/models"

	"github.com/gin-gonic/gin"
)

// FetchBookingsHandler returns the vendor's bookings bucketed by status.
func (h *Handler) FetchBookingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.BookingsByVendor(vendorID(c)))
}

// FetchConfirmedBookingsHandler returns only the confirmed bookings.
func (h *Handler) FetchConfirmedBookingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ConfirmedByVendor(vendorID(c)))
}

// ConfirmBookingHandler transitions a pending booking to confirmed. Only the
// owning vendor may confirm.
func (h *Handler) ConfirmBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	owner, ok := h.Store.BookingVendor(bookingID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if owner != vendorID(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Booking does not belong to this vendor"})
		return
	}

	booking, err := h.Store.SetBookingStatus(bookingID, models.BookingConfirmed)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler transitions a booking to cancelled. Per the backend
// contract this endpoint takes no bearer token.
func (h *Handler) CancelBookingHandler(c *gin.Context) {
	booking, err := h.Store.SetBookingStatus(c.Param("id"), models.BookingCancelled)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}
