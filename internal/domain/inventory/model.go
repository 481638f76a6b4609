// Package inventory manages stock items. Item status is never accepted from
// the wire: it is recomputed from quantities and expiry on every write.
package inventory

import (
	"time"

	"github.com/hms/hms/pkg/dates"
)

// Status classifies a stock item.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
	StatusExpired    Status = "Expired"
	StatusUnknown    Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusInStock):
		return StatusInStock
	case string(StatusLowStock):
		return StatusLowStock
	case string(StatusOutOfStock):
		return StatusOutOfStock
	case string(StatusExpired):
		return StatusExpired
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusInStock:
		return "badge-success"
	case StatusLowStock:
		return "badge-warning"
	case StatusOutOfStock, StatusExpired:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Item mirrors the Gateway's inventory_items record.
type Item struct {
	ID                string  `json:"id,omitempty"`
	ItemName          string  `json:"item_name"`
	Category          string  `json:"category,omitempty"`
	QuantityOnHand    int     `json:"quantity_on_hand"`
	MinimumStockLevel int     `json:"minimum_stock_level"`
	UnitCost          float64 `json:"unit_cost"`
	ExpiryDate        string  `json:"expiry_date,omitempty"`
	Supplier          string  `json:"supplier,omitempty"`
	Status            string  `json:"status"`
}

// DeriveStatus computes the item's status from its quantities and expiry.
// Expiry dominates, then emptiness, then the low-stock threshold.
func (i *Item) DeriveStatus(now time.Time) Status {
	if t := dates.ParseDateOrNone(i.ExpiryDate); t != nil && t.Before(now) {
		return StatusExpired
	}
	if i.QuantityOnHand <= 0 {
		return StatusOutOfStock
	}
	if i.QuantityOnHand <= i.MinimumStockLevel {
		return StatusLowStock
	}
	return StatusInStock
}

// Value is the item's stock valuation.
func (i *Item) Value() float64 {
	if i.QuantityOnHand <= 0 {
		return 0
	}
	return i.UnitCost * float64(i.QuantityOnHand)
}

// View is the display shape of an item.
type View struct {
	*Item
	StatusBadge string `json:"status_badge"`
}

func NewView(i *Item) View {
	return View{
		Item:        i,
		StatusBadge: ParseStatus(i.Status).BadgeClass(),
	}
}
