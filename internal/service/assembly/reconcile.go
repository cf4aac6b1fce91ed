package assembly

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// lineChange is one write the reconciliation decided on: set the line to
// Quantity, or remove it when Delete is true.
type lineChange struct {
	ComponentID uuid.UUID
	Quantity    int
	Delete      bool
}

// reconcileLines compares the existing line set against the requested
// quantities and returns the writes that turn one into the other.
//
// Every id in catalogIDs is considered; a component absent from requested
// counts as quantity 0. An existing line with a positive requested quantity
// is always rewritten, even when the quantity is unchanged, so applying the
// same request twice produces the same state. A pure function: no I/O, and
// the output order is fixed (by component id) regardless of map iteration.
func reconcileLines(catalogIDs []uuid.UUID, existing, requested map[uuid.UUID]int) []lineChange {
	changes := []lineChange{}

	for _, id := range catalogIDs {
		qty := requested[id]
		_, has := existing[id]

		switch {
		case qty > 0:
			changes = append(changes, lineChange{ComponentID: id, Quantity: qty})
		case has:
			changes = append(changes, lineChange{ComponentID: id, Delete: true})
		}
	}

	slices.SortFunc(changes, func(a, b lineChange) int {
		return strings.Compare(a.ComponentID.String(), b.ComponentID.String())
	})

	return changes
}
