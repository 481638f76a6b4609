package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
)

// allowedNext is the appointment status transition table.
var allowedNext = map[Status][]Status{
	StatusScheduled:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func canTransition(from, to Status) bool {
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Service struct {
	repo   Repository
	events websocket.Publisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// SetPublisher attaches the live-update publisher.
func (s *Service) SetPublisher(p websocket.Publisher) { s.events = p }

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) (*Appointment, error) {
	if a.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if a.DoctorName == "" {
		return nil, apierr.Invalid("doctor_name is required")
	}
	if a.AppointmentTime == "" {
		return nil, apierr.Invalid("appointment_time is required")
	}
	if dates.ParseDateOrNone(a.AppointmentTime) == nil {
		return nil, apierr.Invalid("appointment_time is not a valid timestamp")
	}
	if a.DurationMinutes <= 0 {
		a.DurationMinutes = 30
	}
	if a.Status == "" {
		a.Status = string(StatusScheduled)
	} else if ParseStatus(a.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown appointment status %q", a.Status)
	}
	if a.Priority == "" {
		a.Priority = string(PriorityNormal)
	} else if ParsePriority(a.Priority) == PriorityUnknown {
		return nil, apierr.Invalid("unknown appointment priority %q", a.Priority)
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) (*Appointment, error) {
	if a.ID == "" {
		return nil, apierr.Invalid("appointment id is required")
	}
	if a.Status != "" && ParseStatus(a.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown appointment status %q", a.Status)
	}
	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// CheckIn marks a scheduled appointment as Checked-in.
func (s *Service) CheckIn(ctx context.Context, id string) (*Appointment, error) {
	return s.Transition(ctx, id, StatusCheckedIn)
}

// Transition moves an appointment to a new status, enforcing the transition
// table.
func (s *Service) Transition(ctx context.Context, id string, to Status) (*Appointment, error) {
	if ParseStatus(string(to)) == StatusUnknown {
		return nil, apierr.Invalid("unknown appointment status %q", to)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	from := ParseStatus(appt.Status)
	if !canTransition(from, to) {
		return nil, apierr.Precondition("cannot move appointment from %s to %s", from, to)
	}

	appt.Status = string(to)
	updated, err := s.repo.Update(ctx, appt)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	appts, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(appts, s.now()), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleAppointments, id))
}
