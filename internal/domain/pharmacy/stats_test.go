package pharmacy

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	prescriptions := []*Prescription{
		{Status: "Pending"},
		{Status: "Partially Dispensed"},
		{Status: "Dispensed", DispensedDate: "2025-06-15"},
		{Status: "Dispensed", DispensedDate: "2025-06-14"},
		{Status: "Cancelled"},
	}

	st := ComputeStats(prescriptions, now)

	if st.TotalPrescriptions != 5 {
		t.Errorf("total = %d, want 5", st.TotalPrescriptions)
	}
	if st.PendingCount != 2 {
		t.Errorf("pending = %d, want 2 (partially dispensed is still open)", st.PendingCount)
	}
	if st.DispensedToday != 1 {
		t.Errorf("dispensedToday = %d, want 1", st.DispensedToday)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", st)
	}
}

func TestComputeStatsMissingDispensedDate(t *testing.T) {
	st := ComputeStats([]*Prescription{{Status: "Dispensed"}}, time.Now())
	if st.DispensedToday != 0 {
		t.Errorf("dispensedToday = %d, want 0 when date absent", st.DispensedToday)
	}
}
