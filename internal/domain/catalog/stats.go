package catalog

import "github.com/hms/hms/pkg/money"

// Stats is the service-catalog block on the dashboard.
type Stats struct {
	TotalServices  int    `json:"totalServices"`
	ActiveServices int    `json:"activeServices"`
	CategoryCount  int    `json:"categoryCount"`
	AverageCharge  string `json:"averageCharge"`
}

func ComputeStats(services []*Service) Stats {
	var st Stats
	st.TotalServices = len(services)
	categories := make(map[string]struct{})
	var total float64
	for _, s := range services {
		if ParseStatus(s.Status) == StatusActive {
			st.ActiveServices++
		}
		if s.Category != "" {
			categories[s.Category] = struct{}{}
		}
		total += s.Charge
	}
	st.CategoryCount = len(categories)
	var avg float64
	if len(services) > 0 {
		avg = total / float64(len(services))
	}
	st.AverageCharge = money.Rupees(avg)
	return st
}
