// Package pharmacy manages prescriptions and dispensing.
package pharmacy

// Status classifies a prescription.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusPartiallyDispensed Status = "Partially Dispensed"
	StatusDispensed          Status = "Dispensed"
	StatusCancelled          Status = "Cancelled"
	StatusUnknown            Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusPending):
		return StatusPending
	case string(StatusPartiallyDispensed):
		return StatusPartiallyDispensed
	case string(StatusDispensed):
		return StatusDispensed
	case string(StatusCancelled):
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusPending:
		return "badge-info"
	case StatusPartiallyDispensed:
		return "badge-warning"
	case StatusDispensed:
		return "badge-success"
	case StatusCancelled:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Terminal reports whether the prescription can no longer change.
func (s Status) Terminal() bool {
	return s == StatusDispensed || s == StatusCancelled
}

// Medication is one line of a prescription.
type Medication struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Quantity     int    `json:"quantity"`
}

// Prescription mirrors the Gateway's prescriptions record.
type Prescription struct {
	ID               string       `json:"id,omitempty"`
	PatientID        string       `json:"patient_id"`
	PatientName      string       `json:"patient_name"`
	DoctorName       string       `json:"doctor_name"`
	PrescriptionDate string       `json:"prescription_date"`
	Medications      []Medication `json:"medications"`
	Status           string       `json:"status"`
	DispensedDate    string       `json:"dispensed_date,omitempty"`
	DispensedBy      string       `json:"dispensed_by,omitempty"`
	Notes            string       `json:"notes,omitempty"`
}

// View is the display shape of a prescription.
type View struct {
	*Prescription
	StatusBadge     string `json:"status_badge"`
	MedicationCount int    `json:"medication_count"`
}

func NewView(p *Prescription) View {
	return View{
		Prescription:    p,
		StatusBadge:     ParseStatus(p.Status).BadgeClass(),
		MedicationCount: len(p.Medications),
	}
}
