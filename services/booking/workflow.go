package booking

import (
	"fmt"
	"strings"
	"time"

	"labtrack/models"
)

// AdvanceTestStatus moves one test item to targetStatus. Transitions are
// forward-only: moving to an earlier pipeline position is rejected, moving to
// the current position is a no-op success. The booking-level status is
// re-derived and the whole aggregate persisted in one update.
func (s *DefaultBookingService) AdvanceTestStatus(caller models.AuthUser, bookingID, itemID, targetStatus string) (*models.Booking, error) {
	if err := staffOnly(caller); err != nil {
		return nil, err
	}

	b, item, err := s.lookupItem(bookingID, itemID)
	if err != nil {
		return nil, err
	}

	targetOrder, ok := models.TestStatusOrder(targetStatus)
	if !ok {
		return nil, NewInvalidInputError(fmt.Sprintf("Unknown status %q", targetStatus))
	}

	currentOrder, _ := models.TestStatusOrder(item.Status)
	if targetOrder < currentOrder {
		return nil, NewInvalidTransitionError(fmt.Sprintf(
			"Cannot move test back from %q to %q", item.Status, targetStatus))
	}

	item.Status = targetStatus
	b.BookingStatus = DeriveBookingStatus(b.Tests)
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

// PublishTestResult records a result for one test item and marks it
// Published. The item must already be at least Processing. Re-publishing an
// already-Published item overwrites result and notes but keeps the original
// publication timestamp.
func (s *DefaultBookingService) PublishTestResult(caller models.AuthUser, bookingID, itemID, result, notes string) (*models.Booking, error) {
	if err := staffOnly(caller); err != nil {
		return nil, err
	}

	b, item, err := s.lookupItem(bookingID, itemID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(result) == "" {
		return nil, NewInvalidInputError("Result is required")
	}

	currentOrder, _ := models.TestStatusOrder(item.Status)
	processingOrder, _ := models.TestStatusOrder(models.TestStatusProcessing)
	if currentOrder < processingOrder {
		return nil, NewInvalidTransitionError(fmt.Sprintf(
			"Test is %q; move it to %q before publishing a result",
			item.Status, models.TestStatusProcessing))
	}

	item.Result = result
	item.Notes = notes
	item.Status = models.TestStatusPublished
	if item.PublishedAt == nil {
		now := time.Now()
		item.PublishedAt = &now
	}

	b.BookingStatus = DeriveBookingStatus(b.Tests)
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

// lookupItem loads the booking and locates the target item inside it.
func (s *DefaultBookingService) lookupItem(bookingID, itemID string) (*models.Booking, *models.BookingTest, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, nil, NewNotFoundError("Booking not found")
	}
	item := b.FindTest(itemID)
	if item == nil {
		return nil, nil, NewNotFoundError("Test not found in booking")
	}
	return b, item, nil
}
