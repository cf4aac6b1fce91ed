package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups catalog components (e.g. Sensor, LED, Microcontroller).
// Immutable reference data, seeded offline.
type Category struct {
	ID   uuid.UUID
	Name string
}

// Component is a priced catalog part that can be built into an assembly.
// Immutable reference data within the scope of the assembly service.
type Component struct {
	ID            uuid.UUID
	Name          string
	CategoryID    uuid.UUID
	Price         decimal.Decimal
	Specification string
}
