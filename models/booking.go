package models

import "time"

// Per-item workflow statuses, in pipeline order.
const (
	TestStatusAwaitingCollection = "Awaiting Collection"
	TestStatusSampleCollected    = "Sample Collected"
	TestStatusProcessing         = "Processing"
	TestStatusPublished          = "Published"
)

// Booking-level statuses derived from the item statuses.
const (
	BookingStatusBooked          = "Booked"
	BookingStatusSampleCollected = "Sample Collected"
	BookingStatusProcessing      = "Processing"
	BookingStatusPublished       = "Report Published"
)

// Payment statuses; payment itself is handled outside this service.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// testStatusOrder fixes the forward-only pipeline ordering.
var testStatusOrder = map[string]int{
	TestStatusAwaitingCollection: 0,
	TestStatusSampleCollected:    1,
	TestStatusProcessing:         2,
	TestStatusPublished:          3,
}

// TestStatusOrder returns the pipeline position of a status label and whether
// the label is recognized.
func TestStatusOrder(status string) (int, bool) {
	order, ok := testStatusOrder[status]
	return order, ok
}

// BookingTest is one lab test inside a booking. Name and price are
// snapshotted from the catalog at booking time and never change afterwards,
// even if the catalog entry is edited or deactivated.
type BookingTest struct {
	ItemID      string     `bson:"item_id" json:"itemId"`
	TestID      string     `bson:"test_id" json:"testId"`
	Name        string     `bson:"name" json:"name"`
	Price       float64    `bson:"price" json:"price"`
	Status      string     `bson:"status" json:"status"`
	Result      string     `bson:"result" json:"result"`
	Notes       string     `bson:"notes" json:"notes"`
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
}

// Booking is a patient's request for one or more lab tests. The tests slice
// is fixed at creation; only the per-item workflow fields mutate afterwards.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	PatientUserID string        `bson:"patient_user_id" json:"patientUserId"`
	Tests         []BookingTest `bson:"tests" json:"tests"`
	TotalAmount   float64       `bson:"total_amount" json:"totalAmount"`
	BookingStatus string        `bson:"booking_status" json:"bookingStatus"`
	PaymentStatus string        `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}

// FindTest returns a pointer into the Tests slice for the given item ID, or
// nil if the booking has no such item.
func (b *Booking) FindTest(itemID string) *BookingTest {
	for i := range b.Tests {
		if b.Tests[i].ItemID == itemID {
			return &b.Tests[i]
		}
	}
	return nil
}

// PatientSummary is the read-only identity joined onto queue listings.
type PatientSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CitizenshipID string `json:"citizenshipId"`
}

// QueueEntry is a booking enriched with its patient's display identity for
// the technician queue.
type QueueEntry struct {
	Booking
	Patient *PatientSummary `json:"patient,omitempty"`
}
