// Package catalog manages the hospital's chargeable service directory.
package catalog

// Status classifies a catalog service.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusUnknown  Status = "Unknown"
)

func ParseStatus(s string) Status {
	switch s {
	case string(StatusActive):
		return StatusActive
	case string(StatusInactive):
		return StatusInactive
	default:
		return StatusUnknown
	}
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusActive:
		return "badge-success"
	case StatusInactive:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Service mirrors the Gateway's services record.
type Service struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Department      string  `json:"department,omitempty"`
	Charge          float64 `json:"charge"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
}

// View is the display shape of a catalog service.
type View struct {
	*Service
	StatusBadge string `json:"status_badge"`
}

func NewView(s *Service) View {
	return View{
		Service:     s,
		StatusBadge: ParseStatus(s.Status).BadgeClass(),
	}
}
