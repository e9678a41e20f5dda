package bookingRepo

import "labtrack/models"

// BookingRepository defines data access for booking aggregates. A booking is
// always read and written as one document; per-item mutations go through
// Update with the full aggregate.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Update replaces an existing booking document.
	Update(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// the booking does not exist.
	GetByID(id string) (*models.Booking, error)
	// GetByPatient retrieves a patient's bookings, newest first.
	GetByPatient(patientUserID string) ([]models.Booking, error)
	// GetQueue retrieves all bookings for the lab queue, newest first.
	// Unless includePublished is set, fully published bookings are excluded.
	GetQueue(includePublished bool) ([]models.Booking, error)
}
