package inventory

import "testing"

// Three items, one in each of the interesting states; the valuation is the
// plain arithmetic sum of unit_cost times quantity_on_hand.
func TestComputeStats(t *testing.T) {
	items := []*Item{
		{ItemName: "Syringes", Status: "Out of Stock", QuantityOnHand: 0, UnitCost: 0.5},
		{ItemName: "Gauze", Status: "Low Stock", QuantityOnHand: 10, UnitCost: 2},
		{ItemName: "Gloves", Status: "In Stock", QuantityOnHand: 500, UnitCost: 0.25},
	}

	st := ComputeStats(items)

	if st.TotalItems != 3 {
		t.Errorf("total = %d, want 3", st.TotalItems)
	}
	if st.LowStockItems != 1 {
		t.Errorf("lowStock = %d, want 1", st.LowStockItems)
	}
	if st.OutOfStockItems != 1 {
		t.Errorf("outOfStock = %d, want 1", st.OutOfStockItems)
	}
	if st.ExpiredItems != 0 {
		t.Errorf("expired = %d, want 0", st.ExpiredItems)
	}
	// 0 + 20 + 125, en-US grouping with cents.
	if st.TotalValue != "$145.00" {
		t.Errorf("totalValue = %q, want $145.00", st.TotalValue)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	if st.TotalItems != 0 {
		t.Errorf("total = %d, want 0", st.TotalItems)
	}
	if st.TotalValue != "$0.00" {
		t.Errorf("totalValue = %q, want $0.00", st.TotalValue)
	}
}

func TestComputeStatsCountsExpired(t *testing.T) {
	items := []*Item{
		{ItemName: "Saline", Status: "Expired", QuantityOnHand: 10, UnitCost: 1},
		{ItemName: "Mystery", Status: "Backordered", QuantityOnHand: 1, UnitCost: 1},
	}
	st := ComputeStats(items)
	if st.ExpiredItems != 1 {
		t.Errorf("expired = %d, want 1", st.ExpiredItems)
	}
	// Unknown status still contributes to total and valuation.
	if st.TotalItems != 2 || st.TotalValue != "$11.00" {
		t.Errorf("unexpected stats: %+v", st)
	}
}
