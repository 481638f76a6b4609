package ward

import (
	"reflect"
	"testing"
	"time"
)

func TestComputeStatsOccupancy(t *testing.T) {
	beds := []*Bed{
		{Status: "Occupied"},
		{Status: "Available"},
		{Status: "Available"},
		{Status: "Cleaning"},
	}
	st := ComputeStats(beds)

	if st.TotalBeds != 4 {
		t.Errorf("totalBeds = %d, want 4", st.TotalBeds)
	}
	if st.OccupancyRate != 25 {
		t.Errorf("occupancyRate = %d, want 25", st.OccupancyRate)
	}
	if st.AvailableBeds != 2 {
		t.Errorf("availableBeds = %d, want 2", st.AvailableBeds)
	}
	if st.CleaningBeds != 1 {
		t.Errorf("cleaningBeds = %d, want 1", st.CleaningBeds)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	if st.OccupancyRate != 0 || st.TotalBeds != 0 {
		t.Errorf("empty snapshot should produce zero stats: %+v", st)
	}
}

func TestComputeStatsIgnoresUnknownStatuses(t *testing.T) {
	beds := []*Bed{{Status: "weird"}, {Status: "Occupied"}}
	st := ComputeStats(beds)
	if st.TotalBeds != 2 {
		t.Errorf("totalBeds = %d, want 2", st.TotalBeds)
	}
	if st.OccupancyRate != 50 {
		t.Errorf("occupancyRate = %d, want 50", st.OccupancyRate)
	}
	partitioned := st.AvailableBeds + st.OccupiedBeds + st.CleaningBeds + st.MaintenanceBeds + st.ReservedBeds
	if partitioned != 1 {
		t.Errorf("unknown status must not be counted in any partition, got %d", partitioned)
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	beds := []*Bed{{Status: "Occupied"}, {Status: "Available"}}
	first := ComputeStats(beds)
	second := ComputeStats(beds)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregator not idempotent: %+v vs %+v", first, second)
	}
}

func TestNewViewDerivesDuration(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	v := NewView(&Bed{Status: "Occupied", AdmissionDate: "2025-06-13T12:00:00Z"}, now)
	if v.AdmissionDuration != "2 days ago" {
		t.Errorf("AdmissionDuration = %q, want %q", v.AdmissionDuration, "2 days ago")
	}

	v = NewView(&Bed{Status: "Available"}, now)
	if v.AdmissionDuration != "N/A" {
		t.Errorf("missing admission date should be N/A, got %q", v.AdmissionDuration)
	}

	v = NewView(&Bed{Status: "Occupied", AdmissionDate: "garbage"}, now)
	if v.AdmissionDuration != "Invalid Date" {
		t.Errorf("unparsable admission date should be Invalid Date, got %q", v.AdmissionDuration)
	}
}
