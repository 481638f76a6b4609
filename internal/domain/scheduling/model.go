// Package scheduling manages out-patient appointments: booking, check-in,
// status transitions and the appointment dashboard stats.
package scheduling

// Status classifies an appointment.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusCheckedIn  Status = "Checked-in"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "No Show"
	StatusUnknown    Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusScheduled):
		return StatusScheduled
	case string(StatusCheckedIn):
		return StatusCheckedIn
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusCompleted):
		return StatusCompleted
	case string(StatusCancelled):
		return StatusCancelled
	case string(StatusNoShow):
		return StatusNoShow
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusScheduled:
		return "badge-info"
	case StatusCheckedIn, StatusInProgress:
		return "badge-warning"
	case StatusCompleted:
		return "badge-success"
	case StatusCancelled, StatusNoShow:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Priority classifies an appointment's urgency.
type Priority string

const (
	PriorityNormal   Priority = "Normal"
	PriorityUrgent   Priority = "Urgent"
	PriorityCritical Priority = "Critical"
	PriorityUnknown  Priority = "Unknown"
)

func ParsePriority(s string) Priority {
	switch s {
	case string(PriorityNormal):
		return PriorityNormal
	case string(PriorityUrgent):
		return PriorityUrgent
	case string(PriorityCritical):
		return PriorityCritical
	default:
		return PriorityUnknown
	}
}

// Appointment mirrors the Gateway's appointment record.
type Appointment struct {
	ID              string `json:"id,omitempty"`
	PatientID       string `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	Department      string `json:"department"`
	AppointmentTime string `json:"appointment_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Reason          string `json:"reason,omitempty"`
}

// View is the display shape of an appointment.
type View struct {
	*Appointment
	StatusEnum  Status `json:"status_enum"`
	StatusBadge string `json:"status_badge"`
}

func NewView(a *Appointment) View {
	status := ParseStatus(a.Status)
	return View{
		Appointment: a,
		StatusEnum:  status,
		StatusBadge: status.BadgeClass(),
	}
}
