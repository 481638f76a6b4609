package scheduling

import (
	"time"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/stats"
)

// DepartmentLoad names the busiest department and its appointment count.
type DepartmentLoad struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the appointment block on the dashboard.
type Stats struct {
	TotalAppointments int            `json:"totalAppointments"`
	TodayCount        int            `json:"todayCount"`
	Scheduled         int            `json:"scheduled"`
	Completed         int            `json:"completed"`
	Cancelled         int            `json:"cancelled"`
	NoShowRate        int            `json:"noShowRate"`
	BusiestDepartment DepartmentLoad `json:"busiestDepartment"`
}

// ComputeStats derives appointment metrics from a snapshot. The busiest
// department is the arg-max of per-department counts with first-encountered
// tie-break; an empty snapshot yields {name:"N/A", count:0}.
func ComputeStats(appointments []*Appointment, now time.Time) Stats {
	var st Stats
	st.TotalAppointments = len(appointments)
	st.BusiestDepartment = DepartmentLoad{Name: dates.NotAvailable}

	counts := make(map[string]int)
	var noShows int
	for _, a := range appointments {
		switch ParseStatus(a.Status) {
		case StatusScheduled:
			st.Scheduled++
		case StatusCompleted:
			st.Completed++
		case StatusCancelled:
			st.Cancelled++
		case StatusNoShow:
			noShows++
		}
		if t := dates.ParseDateOrNone(a.AppointmentTime); t != nil && dates.SameDay(*t, now) {
			st.TodayCount++
		}
		if a.Department != "" {
			counts[a.Department]++
			if counts[a.Department] > st.BusiestDepartment.Count {
				st.BusiestDepartment = DepartmentLoad{Name: a.Department, Count: counts[a.Department]}
			}
		}
	}

	st.NoShowRate = stats.Rate(noShows, st.TotalAppointments)
	return st
}
