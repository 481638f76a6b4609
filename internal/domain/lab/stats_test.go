package lab

import (
	"testing"
	"time"
)

func orderWith(status, priority, date string) *LabOrder {
	return &LabOrder{
		PatientID: "p",
		TestName:  "CBC",
		Status:    status,
		Priority:  priority,
		OrderDate: date,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	orders := []*LabOrder{
		orderWith("Ordered", "Routine", "2025-06-15"),
		orderWith("Sample Collected", "STAT", "2025-06-15"),
		orderWith("Completed", "Urgent", "2025-06-15"),
		orderWith("Completed", "STAT", "2025-06-14"),
		orderWith("Cancelled", "Routine", "2025-06-15"),
	}

	st := ComputeStats(orders, now)

	if st.TotalOrders != 5 {
		t.Errorf("total = %d, want 5", st.TotalOrders)
	}
	if st.PendingOrders != 2 {
		t.Errorf("pending = %d, want 2", st.PendingOrders)
	}
	if st.CompletedToday != 1 {
		t.Errorf("completedToday = %d, want 1", st.CompletedToday)
	}
	if st.StatCount != 2 {
		t.Errorf("statCount = %d, want 2", st.StatCount)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", st)
	}
}

func TestComputeStatsUnknownStatusNotPending(t *testing.T) {
	st := ComputeStats([]*LabOrder{orderWith("Misfiled", "Routine", "2025-06-15")}, time.Now())
	if st.PendingOrders != 0 {
		t.Errorf("pending = %d, want 0", st.PendingOrders)
	}
	if st.TotalOrders != 1 {
		t.Errorf("total = %d, want 1", st.TotalOrders)
	}
}
