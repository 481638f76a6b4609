package inventory

import "github.com/hms/hms/pkg/money"

// Stats is the inventory block on the dashboard. Valuations are shown in
// dollars, unlike the rest of the product's rupee amounts.
type Stats struct {
	TotalItems      int    `json:"totalItems"`
	TotalValue      string `json:"totalValue"`
	LowStockItems   int    `json:"lowStockItems"`
	OutOfStockItems int    `json:"outOfStockItems"`
	ExpiredItems    int    `json:"expiredItems"`
}

func ComputeStats(items []*Item) Stats {
	var st Stats
	st.TotalItems = len(items)
	var value float64
	for _, i := range items {
		value += i.Value()
		switch ParseStatus(i.Status) {
		case StatusLowStock:
			st.LowStockItems++
		case StatusOutOfStock:
			st.OutOfStockItems++
		case StatusExpired:
			st.ExpiredItems++
		}
	}
	st.TotalValue = money.Dollars(value)
	return st
}
