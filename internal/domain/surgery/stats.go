package surgery

import (
	"time"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/stats"
)

// Stats is the OT block on the dashboard.
type Stats struct {
	TotalSurgeries int `json:"totalSurgeries"`
	ScheduledToday int `json:"scheduledToday"`
	InProgress     int `json:"inProgress"`
	CompletedCount int `json:"completedCount"`
	EmergencyCount int `json:"emergencyCount"`
	CompletionRate int `json:"completionRate"`
}

func ComputeStats(schedules []*OTSchedule, now time.Time) Stats {
	var st Stats
	st.TotalSurgeries = len(schedules)
	for _, s := range schedules {
		switch ParseStatus(s.Status) {
		case StatusInProgress:
			st.InProgress++
		case StatusCompleted:
			st.CompletedCount++
		}
		if ParsePriority(s.Priority) == PriorityEmergency {
			st.EmergencyCount++
		}
		if ParseStatus(s.Status) == StatusScheduled {
			if t := dates.ParseDateOrNone(s.ScheduledDate); t != nil && dates.SameDay(*t, now) {
				st.ScheduledToday++
			}
		}
	}
	st.CompletionRate = stats.Rate(st.CompletedCount, st.TotalSurgeries)
	return st
}
