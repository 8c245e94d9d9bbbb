package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a price observation for a used car submitted by a user.
// Only approved reports take part in estimates.
type Report struct {
	ID        uuid.UUID
	Price     int
	Make      string
	Model     string
	Year      int
	Lng       float64
	Lat       float64
	Mileage   int
	Approved  bool
	UserID    uuid.UUID // Submitting user.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EstimateQuery describes the car whose value is being estimated.
type EstimateQuery struct {
	Make    string
	Model   string
	Year    int
	Lng     float64
	Lat     float64
	Mileage int
}

// Estimate is the averaged price of the closest comparable approved reports.
// Price is nil when no comparable report exists.
type Estimate struct {
	Price      *float64
	SampleSize int
}
