package lab

import (
	"time"

	"github.com/hms/hms/pkg/dates"
)

// Stats is the lab block on the dashboard.
type Stats struct {
	TotalOrders    int `json:"totalOrders"`
	PendingOrders  int `json:"pendingOrders"`
	CompletedToday int `json:"completedToday"`
	StatCount      int `json:"statCount"`
}

// ComputeStats derives lab metrics from a snapshot. Pending means any order
// that has not reached a terminal status.
func ComputeStats(orders []*LabOrder, now time.Time) Stats {
	var st Stats
	st.TotalOrders = len(orders)
	for _, o := range orders {
		status := ParseStatus(o.Status)
		if !status.Terminal() && status != StatusUnknown {
			st.PendingOrders++
		}
		if status == StatusCompleted {
			if t := dates.ParseDateOrNone(o.OrderDate); t != nil && dates.SameDay(*t, now) {
				st.CompletedToday++
			}
		}
		if ParsePriority(o.Priority) == PrioritySTAT {
			st.StatCount++
		}
	}
	return st
}
