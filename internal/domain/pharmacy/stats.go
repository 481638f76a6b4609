package pharmacy

import (
	"time"

	"github.com/hms/hms/pkg/dates"
)

// Stats is the pharmacy block on the dashboard.
type Stats struct {
	TotalPrescriptions int `json:"totalPrescriptions"`
	PendingCount       int `json:"pendingCount"`
	DispensedToday     int `json:"dispensedToday"`
}

func ComputeStats(prescriptions []*Prescription, now time.Time) Stats {
	var st Stats
	st.TotalPrescriptions = len(prescriptions)
	for _, p := range prescriptions {
		switch ParseStatus(p.Status) {
		case StatusPending, StatusPartiallyDispensed:
			st.PendingCount++
		case StatusDispensed:
			if t := dates.ParseDateOrNone(p.DispensedDate); t != nil && dates.SameDay(*t, now) {
				st.DispensedToday++
			}
		}
	}
	return st
}
