// Package devstore holds the development server's state: plain records in
// memory, guarded by one mutex. The real backend owns durable persistence;
// this store only needs to honor the API contract for local runs and tests.
package devstore

import (
	"fmt"
	"sync"
	"time"

	"utsavia/models"

	"github.com/google/uuid"
)

// Vendor is a registered vendor account.
type Vendor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	RefreshToken string
	Profile      *models.Profile

	// lastBookingsView drives the hasNewBookings flag.
	lastBookingsView time.Time
}

// Store is the in-memory data store backing the dev server.
type Store struct {
	mu            sync.Mutex
	vendors       map[string]*Vendor
	vendorByEmail map[string]string
	items         map[string]*models.Item
	bookings      map[string]*models.Booking
	bookingVendor map[string]string
}

func New() *Store {
	return &Store{
		vendors:       make(map[string]*Vendor),
		vendorByEmail: make(map[string]string),
		items:         make(map[string]*models.Item),
		bookings:      make(map[string]*models.Booking),
		bookingVendor: make(map[string]string),
	}
}

// CreateVendor registers a vendor, rejecting duplicate emails.
func (s *Store) CreateVendor(name, email string, passwordHash []byte) (*Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vendorByEmail[email]; exists {
		return nil, fmt.Errorf("an account with this email already exists")
	}
	v := &Vendor{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.vendors[v.ID] = v
	s.vendorByEmail[email] = v.ID
	return v, nil
}

// VendorByEmail looks a vendor up by email.
func (s *Store) VendorByEmail(email string) (*Vendor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.vendorByEmail[email]
	if !ok {
		return nil, false
	}
	return s.vendors[id], true
}

// VendorByID looks a vendor up by id.
func (s *Store) VendorByID(id string) (*Vendor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[id]
	return v, ok
}

// SetRefreshToken records the vendor's current refresh token.
func (s *Store) SetRefreshToken(vendorID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.vendors[vendorID]; ok {
		v.RefreshToken = token
	}
}

// SaveProfile stores the vendor's business profile.
func (s *Store) SaveProfile(vendorID string, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[vendorID]
	if !ok {
		return fmt.Errorf("vendor not found")
	}
	profile.Name = v.Name
	profile.Email = v.Email
	profile.VendorID = vendorID
	v.Profile = &profile
	return nil
}

// ProfileByVendor returns the stored profile, or a skeleton with just the
// account's name and email when the profile is not yet completed.
func (s *Store) ProfileByVendor(vendorID string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[vendorID]
	if !ok {
		return models.Profile{}, fmt.Errorf("vendor not found")
	}
	if v.Profile != nil {
		return *v.Profile, nil
	}
	return models.Profile{Name: v.Name, Email: v.Email, VendorID: vendorID}, nil
}

// AddItem stores a new listing and returns it with an assigned id.
func (s *Store) AddItem(req models.AddItemRequest) *models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &models.Item{
		ID:          models.FlexID(uuid.NewString()),
		Name:        req.Name,
		Description: req.Description,
		Prices:      req.Prices,
		Category:    models.CategoryRef{Name: req.Category},
		Image:       req.Image,
		Vendor:      models.FlexID(req.Vendor),
	}
	s.items[item.ID.String()] = item
	return item
}

// ItemsByVendor lists a vendor's items.
func (s *Store) ItemsByVendor(vendorID string) []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.Item{}
	for _, it := range s.items {
		if it.Vendor.String() == vendorID {
			items = append(items, *it)
		}
	}
	return items
}

// DeleteItem removes a listing, enforcing vendor ownership.
func (s *Store) DeleteItem(itemID, vendorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("item not found")
	}
	if it.Vendor.String() != vendorID {
		return fmt.Errorf("item does not belong to this vendor")
	}
	delete(s.items, itemID)
	return nil
}

// AddBooking attaches a booking to a vendor.
func (s *Store) AddBooking(vendorID string, booking models.Booking) *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.ID.String() == "" {
		booking.ID = models.FlexID(uuid.NewString())
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	b := booking
	s.bookings[b.ID.String()] = &b
	s.bookingVendor[b.ID.String()] = vendorID
	return &b
}

// BookingsByVendor buckets a vendor's bookings by status. hasNewBookings is
// true when any pending booking arrived since the vendor last fetched; the
// fetch itself advances that watermark.
func (s *Store) BookingsByVendor(vendorID string) models.BookingsEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	env := models.BookingsEnvelope{
		Pending:   []models.Booking{},
		Confirmed: []models.Booking{},
		Cancelled: []models.Booking{},
	}
	v := s.vendors[vendorID]
	for id, b := range s.bookings {
		if s.bookingVendor[id] != vendorID {
			continue
		}
		switch b.Status {
		case models.BookingPending:
			env.Pending = append(env.Pending, *b)
			if v != nil && b.CreatedAt.After(v.lastBookingsView) {
				env.HasNewBookings = true
			}
		case models.BookingConfirmed:
			env.Confirmed = append(env.Confirmed, *b)
		case models.BookingCancelled:
			env.Cancelled = append(env.Cancelled, *b)
		}
	}
	if v != nil {
		v.lastBookingsView = time.Now()
	}
	return env
}

// ConfirmedByVendor lists only the vendor's confirmed bookings.
func (s *Store) ConfirmedByVendor(vendorID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	confirmed := []models.Booking{}
	for id, b := range s.bookings {
		if s.bookingVendor[id] == vendorID && b.Status == models.BookingConfirmed {
			confirmed = append(confirmed, *b)
		}
	}
	return confirmed
}

// SetBookingStatus transitions a booking and returns the updated record.
func (s *Store) SetBookingStatus(bookingID, status string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking not found")
	}
	b.Status = status
	updated := *b
	return &updated, nil
}

// BookingVendor returns the vendor a booking belongs to.
func (s *Store) BookingVendor(bookingID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.bookingVendor[bookingID]
	return v, ok
}
