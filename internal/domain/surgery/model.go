// Package surgery manages operating-theatre schedules.
package surgery

// Status classifies an OT schedule entry.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusPostponed  Status = "Postponed"
	StatusUnknown    Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusScheduled):
		return StatusScheduled
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusCompleted):
		return StatusCompleted
	case string(StatusCancelled):
		return StatusCancelled
	case string(StatusPostponed):
		return StatusPostponed
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusScheduled:
		return "badge-info"
	case StatusInProgress:
		return "badge-warning"
	case StatusCompleted:
		return "badge-success"
	case StatusCancelled:
		return "badge-danger"
	case StatusPostponed:
		return "badge-warning"
	default:
		return "badge-neutral"
	}
}

// Priority classifies how urgent a procedure is.
type Priority string

const (
	PriorityElective  Priority = "Elective"
	PriorityUrgent    Priority = "Urgent"
	PriorityEmergency Priority = "Emergency"
	PriorityUnknown   Priority = "Unknown"
)

func ParsePriority(s string) Priority {
	switch s {
	case string(PriorityElective):
		return PriorityElective
	case string(PriorityUrgent):
		return PriorityUrgent
	case string(PriorityEmergency):
		return PriorityEmergency
	default:
		return PriorityUnknown
	}
}

// OTSchedule mirrors the Gateway's ot_schedules record.
type OTSchedule struct {
	ID              string `json:"id,omitempty"`
	PatientID       string `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	SurgeonName     string `json:"surgeon_name"`
	TheatreNumber   string `json:"theatre_number"`
	ProcedureName   string `json:"procedure_name"`
	ScheduledDate   string `json:"scheduled_date"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Notes           string `json:"notes,omitempty"`
}

// View is the display shape of an OT schedule entry.
type View struct {
	*OTSchedule
	StatusEnum  Status `json:"status_enum"`
	StatusBadge string `json:"status_badge"`
}

func NewView(s *OTSchedule) View {
	status := ParseStatus(s.Status)
	return View{
		OTSchedule:  s,
		StatusEnum:  status,
		StatusBadge: status.BadgeClass(),
	}
}
