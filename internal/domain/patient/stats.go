package patient

import (
	"time"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/stats"
)

// Stats is the patient block on the dashboard.
type Stats struct {
	TotalPatients    int `json:"totalPatients"`
	ActivePatients   int `json:"activePatients"`
	InactivePatients int `json:"inactivePatients"`
	DeceasedPatients int `json:"deceasedPatients"`
	NewThisMonth     int `json:"newThisMonth"`
	ActiveRate       int `json:"activeRate"`
}

// ComputeStats derives patient metrics from a snapshot at the given
// reference time.
func ComputeStats(patients []*Patient, now time.Time) Stats {
	var st Stats
	st.TotalPatients = len(patients)

	for _, p := range patients {
		switch ParseStatus(p.Status) {
		case StatusActive:
			st.ActivePatients++
		case StatusInactive:
			st.InactivePatients++
		case StatusDeceased:
			st.DeceasedPatients++
		}
		if created := dates.ParseDateOrNone(p.CreatedDate); created != nil {
			if created.Year() == now.Year() && created.Month() == now.Month() {
				st.NewThisMonth++
			}
		}
	}

	st.ActiveRate = stats.Rate(st.ActivePatients, st.TotalPatients)
	return st
}
