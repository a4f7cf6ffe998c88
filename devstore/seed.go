package devstore

import (
	"time"

	"utsavia/models"
)

// SeedDemoBookings attaches a small spread of bookings to a vendor so the CLI
// booking views have something to show on a fresh dev server.
func (s *Store) SeedDemoBookings(vendorID string) {
	now := time.Now()
	demo := []models.Booking{
		{
			TotalAmount: 4500,
			CreatedAt:   now.Add(-2 * time.Hour),
			Items:       []models.BookingItem{{TimeSlot: "10:00-14:00", Quantity: 1}},
			Address:     models.Address{Street: "12 MG Road", City: "Delhi", State: "Delhi", ZipCode: "110001", Country: "India"},
			Status:      models.BookingPending,
		},
		{
			TotalAmount: 12000,
			CreatedAt:   now.Add(-26 * time.Hour),
			Items:       []models.BookingItem{{TimeSlot: "16:00-22:00", Quantity: 2}},
			Address:     models.Address{Street: "8 Residency Road", City: "Bangalore", State: "Karnataka", ZipCode: "560025", Country: "India"},
			Status:      models.BookingConfirmed,
		},
		{
			TotalAmount: 2800,
			CreatedAt:   now.Add(-72 * time.Hour),
			Items:       []models.BookingItem{{TimeSlot: "09:00-12:00", Quantity: 1}},
			Address:     models.Address{Street: "3 Park Street", City: "Kolkata", State: "West Bengal", ZipCode: "700016", Country: "India"},
			Status:      models.BookingCancelled,
		},
	}
	for _, b := range demo {
		s.AddBooking(vendorID, b)
	}
}
