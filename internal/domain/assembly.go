package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assembly is a hardware build owned by exactly one user.
type Assembly struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RegisterDay time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssemblyLine is one (component, quantity) entry of an assembly.
// Quantity is always > 0: a line that would drop to zero is deleted by
// the edit reconciliation instead of being stored.
type AssemblyLine struct {
	AssemblyID  uuid.UUID
	ComponentID uuid.UUID
	Quantity    int
}

// AssemblyLineDetail joins a line with its catalog component and category
// for detail views. It is a detached value, never lazily loaded.
type AssemblyLineDetail struct {
	Line      AssemblyLine
	Component Component
	Category  Category
}

// Cost returns quantity × component price for this line.
func (d AssemblyLineDetail) Cost() decimal.Decimal {
	return d.Component.Price.Mul(decimal.NewFromInt(int64(d.Line.Quantity)))
}

// TotalCost sums the line costs of a detail list without intermediate rounding.
func TotalCost(lines []AssemblyLineDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range lines {
		total = total.Add(d.Cost())
	}
	return total
}
