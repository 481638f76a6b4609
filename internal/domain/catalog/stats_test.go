package catalog

import "testing"

func TestComputeStats(t *testing.T) {
	services := []*Service{
		{Name: "MRI Scan", Category: "Imaging", Status: "Active", Charge: 5000},
		{Name: "X-Ray", Category: "Imaging", Status: "Active", Charge: 1000},
		{Name: "CBC Panel", Category: "Pathology", Status: "Inactive", Charge: 600},
	}

	st := ComputeStats(services)

	if st.TotalServices != 3 {
		t.Errorf("total = %d, want 3", st.TotalServices)
	}
	if st.ActiveServices != 2 {
		t.Errorf("active = %d, want 2", st.ActiveServices)
	}
	if st.CategoryCount != 2 {
		t.Errorf("categories = %d, want 2", st.CategoryCount)
	}
	// (5000 + 1000 + 600) / 3 = 2200.
	if st.AverageCharge != "₹2,200" {
		t.Errorf("averageCharge = %q, want ₹2,200", st.AverageCharge)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	if st.AverageCharge != "₹0" {
		t.Errorf("averageCharge = %q, want ₹0", st.AverageCharge)
	}
	if st.CategoryCount != 0 {
		t.Errorf("categories = %d, want 0", st.CategoryCount)
	}
}

func TestComputeStatsBlankCategoryIgnored(t *testing.T) {
	st := ComputeStats([]*Service{{Name: "Consult", Charge: 500}})
	if st.CategoryCount != 0 {
		t.Errorf("categories = %d, want 0", st.CategoryCount)
	}
}
