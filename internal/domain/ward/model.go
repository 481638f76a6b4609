// Package ward manages hospital beds: occupancy tracking, patient assignment
// and the discharge flow that turns a stay into a room-charge bill.
package ward

import (
	"time"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/money"
)

// Status classifies a bed's occupancy state.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOccupied    Status = "Occupied"
	StatusCleaning    Status = "Cleaning"
	StatusMaintenance Status = "Under Maintenance"
	StatusReserved    Status = "Reserved"
	StatusUnknown     Status = "Unknown"
)

// ParseStatus maps a raw status string to the closed enumeration.
func ParseStatus(s string) Status {
	switch s {
	case string(StatusAvailable):
		return StatusAvailable
	case string(StatusOccupied):
		return StatusOccupied
	case string(StatusCleaning):
		return StatusCleaning
	case string(StatusMaintenance):
		return StatusMaintenance
	case string(StatusReserved):
		return StatusReserved
	default:
		return StatusUnknown
	}
}

// BadgeClass returns the display treatment for the status.
func (s Status) BadgeClass() string {
	switch s {
	case StatusAvailable:
		return "badge-success"
	case StatusOccupied:
		return "badge-danger"
	case StatusCleaning:
		return "badge-info"
	case StatusMaintenance:
		return "badge-warning"
	case StatusReserved:
		return "badge-info"
	default:
		return "badge-neutral"
	}
}

// Bed mirrors the Gateway's bed record.
type Bed struct {
	ID                 string  `json:"id,omitempty"`
	BedNumber          string  `json:"bed_number"`
	WardName           string  `json:"ward_name"`
	BedType            string  `json:"bed_type"`
	Status             string  `json:"status"`
	CurrentPatientID   string  `json:"current_patient_id,omitempty"`
	CurrentPatientName string  `json:"current_patient_name,omitempty"`
	AdmissionDate      string  `json:"admission_date,omitempty"`
	DailyRate          float64 `json:"daily_rate"`
}

// View is the display shape of a bed.
type View struct {
	*Bed
	StatusEnum        Status `json:"status_enum"`
	StatusBadge       string `json:"status_badge"`
	AdmissionDuration string `json:"admission_duration"`
	DailyRateDisplay  string `json:"daily_rate_display"`
}

// NewView derives display fields for a bed at the given reference time.
func NewView(b *Bed, now time.Time) View {
	status := ParseStatus(b.Status)
	return View{
		Bed:               b,
		StatusEnum:        status,
		StatusBadge:       status.BadgeClass(),
		AdmissionDuration: dates.HumanizeSince(b.AdmissionDate, now),
		DailyRateDisplay:  money.Rupees(b.DailyRate),
	}
}

// DischargeSummary is the room-charge preview shown before confirming a
// discharge.
type DischargeSummary struct {
	BedID              string  `json:"bed_id"`
	BedNumber          string  `json:"bed_number"`
	PatientID          string  `json:"patient_id"`
	PatientName        string  `json:"patient_name"`
	AdmissionDate      string  `json:"admission_date"`
	StayDays           int     `json:"stay_days"`
	DailyRate          float64 `json:"daily_rate"`
	RoomCharges        float64 `json:"room_charges"`
	RoomChargesDisplay string  `json:"room_charges_display"`
}
