package booking

import (
	bookingRepo "labtrack/database/repository/booking"
	catalogRepo "labtrack/database/repository/catalog"
	userRepo "labtrack/database/repository/user"
	"labtrack/models"
)

// BookingService defines the lab booking workflow.
type BookingService interface {
	// CreateBooking snapshots the selected active catalog tests into a new
	// booking owned by the calling patient.
	CreateBooking(caller models.AuthUser, testIDs []string) (*models.Booking, error)
	// ListMine returns the calling patient's bookings, newest first.
	ListMine(caller models.AuthUser) ([]models.Booking, error)
	// ListQueue returns the lab queue for technicians and admins, each entry
	// enriched with the patient's display identity.
	ListQueue(caller models.AuthUser, includePublished bool) ([]models.QueueEntry, error)
	// AdvanceTestStatus moves one test item forward through the pipeline.
	AdvanceTestStatus(caller models.AuthUser, bookingID, itemID, targetStatus string) (*models.Booking, error)
	// PublishTestResult records a result for one test item and marks it
	// Published.
	PublishTestResult(caller models.AuthUser, bookingID, itemID, result, notes string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalogRepo.CatalogRepository
	Users   userRepo.UserRepository
}

// staffOnly is the single capability check for workflow mutations and queue
// reads: technicians and admins share full access, everyone else is refused.
func staffOnly(caller models.AuthUser) error {
	if caller.Role == models.RoleTechnician || caller.Role == models.RoleAdmin {
		return nil
	}
	return NewForbiddenError("Forbidden")
}
