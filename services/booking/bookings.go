package booking

import (
	"context"
	"net/http"

	"utsavia/models"
	"utsavia/utils"

	"go.uber.org/zap"
)

// FetchBookings retrieves the vendor's bookings bucketed by status, plus the
// new-bookings flag.
func (s *DefaultBookingService) FetchBookings(ctx context.Context) (*models.BookingsEnvelope, error) {
	var envelope models.BookingsEnvelope
	if err := s.API.DoJSON(ctx, http.MethodGet, "/bookings", nil, true, &envelope); err != nil {
		utils.GetLogger().Warn("fetch bookings failed", zap.Error(err))
		return nil, err
	}
	return &envelope, nil
}

// FetchConfirmed retrieves only the confirmed bookings.
func (s *DefaultBookingService) FetchConfirmed(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.API.DoJSON(ctx, http.MethodGet, "/bookings/confirmed", nil, true, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ConfirmBooking marks a pending booking confirmed. The pending-to-confirmed
// move in an already-fetched envelope is the caller's concern
// (BookingsEnvelope.Confirm).
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, utils.ValidationError{Field: "id", Message: "booking id is required"}
	}
	var booking models.Booking
	if err := s.API.DoJSON(ctx, http.MethodPut, "/bookings/"+bookingID+"/confirm", nil, true, &booking); err != nil {
		utils.GetLogger().Warn("confirm booking failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// CancelBooking marks a booking cancelled. Per the backend contract this
// endpoint takes no bearer token.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, utils.ValidationError{Field: "id", Message: "booking id is required"}
	}
	var booking models.Booking
	if err := s.API.DoJSON(ctx, http.MethodPut, "/bookings/"+bookingID+"/cancel", nil, false, &booking); err != nil {
		utils.GetLogger().Warn("cancel booking failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, err
	}
	return &booking, nil
}
