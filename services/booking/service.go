package booking

import (
	"fmt"

	"labtrack/models"

	"github.com/google/uuid"
)

// CreateBooking validates the selected test IDs, snapshots the matching
// active catalog entries, and persists a new booking. Name and price are
// copied so later catalog edits never touch existing bookings.
func (s *DefaultBookingService) CreateBooking(caller models.AuthUser, testIDs []string) (*models.Booking, error) {
	if caller.Role != models.RolePatient {
		return nil, NewForbiddenError("Only patients can create bookings")
	}
	if len(testIDs) == 0 {
		return nil, NewInvalidInputError("Please select at least 1 test.")
	}

	tests, err := s.Catalog.GetActiveByIDs(testIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selected tests: %w", err)
	}
	if len(tests) == 0 {
		return nil, NewInvalidInputError("Selected tests not found.")
	}

	items := make([]models.BookingTest, 0, len(tests))
	var total float64
	for _, t := range tests {
		items = append(items, models.BookingTest{
			ItemID: uuid.New().String(),
			TestID: t.ID,
			Name:   t.Name,
			Price:  t.Price,
			Status: models.TestStatusAwaitingCollection,
		})
		total += t.Price
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		PatientUserID: caller.ID,
		Tests:         items,
		TotalAmount:   total,
		BookingStatus: models.BookingStatusBooked,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// ListMine returns the calling patient's bookings, newest first.
func (s *DefaultBookingService) ListMine(caller models.AuthUser) ([]models.Booking, error) {
	if caller.Role != models.RolePatient {
		return nil, NewForbiddenError("Forbidden")
	}
	bookings, err := s.Repo.GetByPatient(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}

// ListQueue returns the lab queue, newest first. Fully published bookings
// are excluded unless includePublished is set. Each entry carries the
// patient's display identity resolved through the user repository.
func (s *DefaultBookingService) ListQueue(caller models.AuthUser, includePublished bool) ([]models.QueueEntry, error) {
	if err := staffOnly(caller); err != nil {
		return nil, err
	}

	bookings, err := s.Repo.GetQueue(includePublished)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	patients, err := s.patientSummaries(bookings)
	if err != nil {
		return nil, err
	}

	entries := make([]models.QueueEntry, 0, len(bookings))
	for _, b := range bookings {
		entry := models.QueueEntry{Booking: b}
		if p, ok := patients[b.PatientUserID]; ok {
			entry.Patient = p
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *DefaultBookingService) patientSummaries(bookings []models.Booking) (map[string]*models.PatientSummary, error) {
	idSet := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, seen := idSet[b.PatientUserID]; !seen {
			idSet[b.PatientUserID] = struct{}{}
			ids = append(ids, b.PatientUserID)
		}
	}
	if len(ids) == 0 {
		return map[string]*models.PatientSummary{}, nil
	}

	users, err := s.Users.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patients: %w", err)
	}

	summaries := make(map[string]*models.PatientSummary, len(users))
	for _, u := range users {
		summaries[u.ID] = &models.PatientSummary{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			CitizenshipID: u.CitizenshipID,
		}
	}
	return summaries, nil
}
