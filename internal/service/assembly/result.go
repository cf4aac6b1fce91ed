package assembly

import (
	"github.com/shopspring/decimal"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Detail is the full view of one assembly: its lines joined with catalog
// data, ordered by category then component name, plus the total cost.
type Detail struct {
	Assembly  domain.Assembly
	Lines     []domain.AssemblyLineDetail
	TotalCost decimal.Decimal
}
