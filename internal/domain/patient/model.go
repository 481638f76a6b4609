// Package patient manages patient demographics and their medical records.
package patient

import (
	"strings"
	"time"

	"github.com/hms/hms/pkg/dates"
)

// Status classifies a patient record.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeceased Status = "deceased"
	StatusUnknown  Status = "unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusActive):
		return StatusActive
	case string(StatusInactive):
		return StatusInactive
	case string(StatusDeceased):
		return StatusDeceased
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusActive:
		return "badge-success"
	case StatusInactive:
		return "badge-warning"
	case StatusDeceased:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Patient mirrors the Gateway's patient record. MRN is the stable
// human-facing identifier, distinct from the Gateway id.
type Patient struct {
	ID          string `json:"id,omitempty"`
	MRN         string `json:"mrn"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Status      string `json:"status"`
	Allergies   string `json:"allergies,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Address     string `json:"address,omitempty"`
	CreatedDate string `json:"created_date,omitempty"`
}

// FullName joins the name parts, tolerating either being empty.
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// MedicalRecord is one entry in a patient's history.
type MedicalRecord struct {
	ID          string `json:"id,omitempty"`
	PatientID   string `json:"patient_id"`
	RecordType  string `json:"record_type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
	RecordDate  string `json:"record_date"`
}

// View is the display shape of a patient.
type View struct {
	*Patient
	FullName    string `json:"full_name"`
	Age         string `json:"age"`
	StatusEnum  Status `json:"status_enum"`
	StatusBadge string `json:"status_badge"`
}

// NewView derives display fields for a patient. Age degrades to "N/A" when
// the date of birth is missing or unparsable.
func NewView(p *Patient, now time.Time) View {
	status := ParseStatus(p.Status)
	return View{
		Patient:     p,
		FullName:    p.FullName(),
		Age:         dates.SafeAge(p.DateOfBirth, now),
		StatusEnum:  status,
		StatusBadge: status.BadgeClass(),
	}
}
