package models

import "time"

// LabTest is a catalog entry a patient can book. Bookings snapshot the name
// and price, so editing or deleting a catalog entry never rewrites history.
type LabTest struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Price          float64   `bson:"price" json:"price"`
	SampleType     string    `bson:"sample_type" json:"sampleType"`
	TurnaroundTime string    `bson:"turnaround_time" json:"turnaroundTime"`
	IsActive       bool      `bson:"is_active" json:"isActive"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
