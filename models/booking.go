package models

import "time"

// Booking status lifecycle values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Address is the structured delivery address on a booking.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// BookingItem is one line of a booking.
type BookingItem struct {
	Item     FlexID `json:"item,omitempty"`
	TimeSlot string `json:"timeSlot"`
	Quantity int    `json:"quantity,omitempty"`
}

// Booking is a customer order referencing one or more items.
type Booking struct {
	ID          FlexID        `json:"_id"`
	TotalAmount float64       `json:"totalAmount"`
	CreatedAt   time.Time     `json:"createdAt"`
	Items       []BookingItem `json:"items"`
	Address     Address       `json:"address"`
	Status      string        `json:"status"`
}

// BookingsEnvelope is the GET /bookings success shape: bookings bucketed by
// status plus a new-bookings flag.
type BookingsEnvelope struct {
	Pending        []Booking `json:"pending"`
	Confirmed      []Booking `json:"confirmed"`
	Cancelled      []Booking `json:"cancelled"`
	HasNewBookings bool      `json:"hasNewBookings"`
}

// Confirm moves the booking with the given id from the pending bucket to the
// confirmed bucket, overwriting its status. It reports whether a move happened.
func (e *BookingsEnvelope) Confirm(id string) bool {
	for i, b := range e.Pending {
		if b.ID.String() != id {
			continue
		}
		b.Status = BookingConfirmed
		e.Pending = append(e.Pending[:i], e.Pending[i+1:]...)
		e.Confirmed = append(e.Confirmed, b)
		return true
	}
	return false
}

// Cancel moves the booking with the given id from the pending bucket to the
// cancelled bucket, overwriting its status.
func (e *BookingsEnvelope) Cancel(id string) bool {
	for i, b := range e.Pending {
		if b.ID.String() != id {
			continue
		}
		b.Status = BookingCancelled
		e.Pending = append(e.Pending[:i], e.Pending[i+1:]...)
		e.Cancelled = append(e.Cancelled, b)
		return true
	}
	return false
}
