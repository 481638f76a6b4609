package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func apptAt(dept, status, when string) *Appointment {
	return &Appointment{
		PatientID:       "p",
		Department:      dept,
		Status:          status,
		AppointmentTime: when,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	appts := []*Appointment{
		apptAt("Cardiology", "Scheduled", "2025-06-15T09:00:00Z"),
		apptAt("Cardiology", "Completed", "2025-06-14T09:00:00Z"),
		apptAt("Orthopedics", "Cancelled", "2025-06-15T10:00:00Z"),
		apptAt("Orthopedics", "No Show", "2025-06-13T10:00:00Z"),
	}

	st := ComputeStats(appts, now)

	if st.TotalAppointments != 4 {
		t.Errorf("total = %d, want 4", st.TotalAppointments)
	}
	if st.TodayCount != 2 {
		t.Errorf("today = %d, want 2", st.TodayCount)
	}
	if st.Scheduled != 1 || st.Completed != 1 || st.Cancelled != 1 {
		t.Errorf("partition wrong: %+v", st)
	}
	if st.NoShowRate != 25 {
		t.Errorf("noShowRate = %d, want 25", st.NoShowRate)
	}
}

func TestComputeStatsBusiestDepartmentFirstEncounteredWins(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	// Cardiology and Orthopedics both have two appointments; Cardiology
	// reaches the count first in slice order.
	appts := []*Appointment{
		apptAt("Cardiology", "Scheduled", "2025-06-15T09:00:00Z"),
		apptAt("Cardiology", "Scheduled", "2025-06-15T09:30:00Z"),
		apptAt("Orthopedics", "Scheduled", "2025-06-15T10:00:00Z"),
		apptAt("Orthopedics", "Scheduled", "2025-06-15T10:30:00Z"),
	}

	st := ComputeStats(appts, now)
	if st.BusiestDepartment.Name != "Cardiology" || st.BusiestDepartment.Count != 2 {
		t.Errorf("busiest = %+v, want Cardiology/2", st.BusiestDepartment)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st.BusiestDepartment.Name != "N/A" || st.BusiestDepartment.Count != 0 {
		t.Errorf("busiest = %+v, want N/A/0", st.BusiestDepartment)
	}
	if st.NoShowRate != 0 {
		t.Errorf("noShowRate = %d, want 0", st.NoShowRate)
	}
}

func TestComputeStatsIgnoresBlankDepartments(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	appts := []*Appointment{
		apptAt("", "Scheduled", "2025-06-15T09:00:00Z"),
		apptAt("", "Scheduled", "2025-06-15T09:30:00Z"),
		apptAt("ER", "Scheduled", "2025-06-15T10:00:00Z"),
	}

	st := ComputeStats(appts, now)
	if st.BusiestDepartment.Name != "ER" || st.BusiestDepartment.Count != 1 {
		t.Errorf("busiest = %+v, want ER/1", st.BusiestDepartment)
	}
}

func TestComputeStatsIsPure(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	appts := []*Appointment{
		apptAt("Cardiology", "Scheduled", "2025-06-15T09:00:00Z"),
		apptAt("Cardiology", "No Show", "2025-06-14T09:00:00Z"),
	}

	first := ComputeStats(appts, now)
	second := ComputeStats(appts, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("stats not idempotent: %+v vs %+v", first, second)
	}
}
