package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location describes where a reading was collected, not where it was uploaded from.
type Location struct {
	ID        uuid.UUID
	Country   string
	State     string
	City      string
	Latitude  float64
	Longitude float64
}

// Reading is one UV frequency measurement collected by an assembly
// at a location. Append-only.
type Reading struct {
	ID           uuid.UUID
	AssemblyID   uuid.UUID
	LocationID   uuid.UUID
	RegisterDate time.Time
	Frequency    float64
}
