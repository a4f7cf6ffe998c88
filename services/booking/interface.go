package booking

import (
	"context"

	"utsavia/client"
	"utsavia/models"
)

// BookingService manages the vendor's incoming bookings.
type BookingService interface {
	FetchBookings(ctx context.Context) (*models.BookingsEnvelope, error)
	FetchConfirmed(ctx context.Context) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the standard implementation backed by the API client.
type DefaultBookingService struct {
	API *client.Client
}
