package ward

import "github.com/hms/hms/pkg/stats"

// Stats is the bed block on the dashboard.
type Stats struct {
	TotalBeds       int `json:"totalBeds"`
	AvailableBeds   int `json:"availableBeds"`
	OccupiedBeds    int `json:"occupiedBeds"`
	CleaningBeds    int `json:"cleaningBeds"`
	MaintenanceBeds int `json:"maintenanceBeds"`
	ReservedBeds    int `json:"reservedBeds"`
	OccupancyRate   int `json:"occupancyRate"`
}

// ComputeStats derives bed occupancy metrics from a snapshot.
func ComputeStats(beds []*Bed) Stats {
	var st Stats
	st.TotalBeds = len(beds)

	for _, b := range beds {
		switch ParseStatus(b.Status) {
		case StatusAvailable:
			st.AvailableBeds++
		case StatusOccupied:
			st.OccupiedBeds++
		case StatusCleaning:
			st.CleaningBeds++
		case StatusMaintenance:
			st.MaintenanceBeds++
		case StatusReserved:
			st.ReservedBeds++
		}
	}

	st.OccupancyRate = stats.Rate(st.OccupiedBeds, st.TotalBeds)
	return st
}
