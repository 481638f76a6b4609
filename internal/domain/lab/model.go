// Package lab manages laboratory test orders and report attachments.
package lab

// Status classifies a lab order.
type Status string

const (
	StatusOrdered         Status = "Ordered"
	StatusSampleCollected Status = "Sample Collected"
	StatusInProgress      Status = "In Progress"
	StatusCompleted       Status = "Completed"
	StatusCancelled       Status = "Cancelled"
	StatusUnknown         Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusOrdered):
		return StatusOrdered
	case string(StatusSampleCollected):
		return StatusSampleCollected
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusCompleted):
		return StatusCompleted
	case string(StatusCancelled):
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusOrdered:
		return "badge-info"
	case StatusSampleCollected, StatusInProgress:
		return "badge-warning"
	case StatusCompleted:
		return "badge-success"
	case StatusCancelled:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Terminal reports whether the order can no longer change.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Priority classifies how fast the lab must turn the order around.
type Priority string

const (
	PriorityRoutine Priority = "Routine"
	PriorityUrgent  Priority = "Urgent"
	PrioritySTAT    Priority = "STAT"
	PriorityUnknown Priority = "Unknown"
)

func ParsePriority(s string) Priority {
	switch s {
	case string(PriorityRoutine):
		return PriorityRoutine
	case string(PriorityUrgent):
		return PriorityUrgent
	case string(PrioritySTAT):
		return PrioritySTAT
	default:
		return PriorityUnknown
	}
}

// LabOrder mirrors the Gateway's lab_orders record.
type LabOrder struct {
	ID             string `json:"id,omitempty"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	TestName       string `json:"test_name"`
	OrderedBy      string `json:"ordered_by"`
	OrderDate      string `json:"order_date"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	ResultSummary  string `json:"result_summary,omitempty"`
	ReportFileURL  string `json:"report_file_url,omitempty"`
	ReportFileName string `json:"report_file_name,omitempty"`
}

// View is the display shape of a lab order.
type View struct {
	*LabOrder
	StatusBadge string `json:"status_badge"`
}

func NewView(o *LabOrder) View {
	return View{
		LabOrder:    o,
		StatusBadge: ParseStatus(o.Status).BadgeClass(),
	}
}
