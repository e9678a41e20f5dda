package booking

import "labtrack/models"

// DeriveBookingStatus maps the per-item statuses onto the booking-level
// status. Rules are evaluated top-down, first match wins:
//
//	every item Published         -> Report Published
//	any item Processing          -> Processing
//	any item Sample Collected    -> Sample Collected
//	otherwise                    -> Booked
//
// Callers must re-derive after every item mutation; the booking-level status
// is never set directly.
func DeriveBookingStatus(tests []models.BookingTest) string {
	allPublished := len(tests) > 0
	anyProcessing := false
	anyCollected := false

	for _, t := range tests {
		switch t.Status {
		case models.TestStatusPublished:
		case models.TestStatusProcessing:
			allPublished = false
			anyProcessing = true
		case models.TestStatusSampleCollected:
			allPublished = false
			anyCollected = true
		default:
			allPublished = false
		}
	}

	switch {
	case allPublished:
		return models.BookingStatusPublished
	case anyProcessing:
		return models.BookingStatusProcessing
	case anyCollected:
		return models.BookingStatusSampleCollected
	default:
		return models.BookingStatusBooked
	}
}
