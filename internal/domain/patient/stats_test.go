package patient

import (
	"reflect"
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	patients := []*Patient{
		{Status: "active", CreatedDate: "2025-06-02"},
		{Status: "active", CreatedDate: "2025-05-20"},
		{Status: "inactive"},
		{Status: "deceased"},
		{Status: "bogus", CreatedDate: "2025-06-10"},
	}

	st := ComputeStats(patients, now)
	if st.TotalPatients != 5 {
		t.Errorf("totalPatients = %d, want 5", st.TotalPatients)
	}
	if st.ActivePatients != 2 || st.InactivePatients != 1 || st.DeceasedPatients != 1 {
		t.Errorf("status partition wrong: %+v", st)
	}
	if st.NewThisMonth != 2 {
		t.Errorf("newThisMonth = %d, want 2", st.NewThisMonth)
	}
	if st.ActiveRate != 40 {
		t.Errorf("activeRate = %d, want 40", st.ActiveRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st.ActiveRate != 0 || st.TotalPatients != 0 {
		t.Errorf("empty snapshot should produce zero stats: %+v", st)
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	now := time.Now()
	patients := []*Patient{{Status: "active"}, {Status: "inactive"}}
	if !reflect.DeepEqual(ComputeStats(patients, now), ComputeStats(patients, now)) {
		t.Error("aggregator not idempotent")
	}
}
