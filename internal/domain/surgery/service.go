package surgery

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

// allowedNext is the OT status transition table. Postponed entries return to
// Scheduled when rebooked.
var allowedNext = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCancelled, StatusPostponed},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusPostponed:  {StatusScheduled, StatusCancelled},
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

func (s *Service) CreateSchedule(ctx context.Context, sc *OTSchedule) (*OTSchedule, error) {
	if sc.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if sc.SurgeonName == "" {
		return nil, apierr.Invalid("surgeon_name is required")
	}
	if sc.ProcedureName == "" {
		return nil, apierr.Invalid("procedure_name is required")
	}
	if sc.ScheduledDate == "" {
		return nil, apierr.Invalid("scheduled_date is required")
	}
	if dates.ParseDateOrNone(sc.ScheduledDate) == nil {
		return nil, apierr.Invalid("scheduled_date is not a valid timestamp")
	}
	if sc.DurationMinutes <= 0 {
		sc.DurationMinutes = 60
	}
	if sc.Status == "" {
		sc.Status = string(StatusScheduled)
	} else if ParseStatus(sc.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown surgery status %q", sc.Status)
	}
	if sc.Priority == "" {
		sc.Priority = string(PriorityElective)
	} else if ParsePriority(sc.Priority) == PriorityUnknown {
		return nil, apierr.Invalid("unknown surgery priority %q", sc.Priority)
	}

	created, err := s.repo.Create(ctx, sc)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetSchedule(ctx context.Context, id string) (*OTSchedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListSchedules(ctx context.Context, limit, offset int) ([]*OTSchedule, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateSchedule(ctx context.Context, sc *OTSchedule) (*OTSchedule, error) {
	if sc.ID == "" {
		return nil, apierr.Invalid("schedule id is required")
	}
	if sc.Status != "" && ParseStatus(sc.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown surgery status %q", sc.Status)
	}
	updated, err := s.repo.Update(ctx, sc)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// Start moves a scheduled procedure into the theatre.
func (s *Service) Start(ctx context.Context, id string) (*OTSchedule, error) {
	return s.transition(ctx, id, StatusInProgress)
}

// Complete marks an in-progress procedure finished, recording optional notes.
func (s *Service) Complete(ctx context.Context, id, notes string) (*OTSchedule, error) {
	sc, err := s.transitionLoad(ctx, id, StatusCompleted)
	if err != nil {
		return nil, err
	}
	if notes != "" {
		sc.Notes = notes
	}
	return s.save(ctx, sc)
}

// Postpone pushes a scheduled procedure to a later date.
func (s *Service) Postpone(ctx context.Context, id, newDate string) (*OTSchedule, error) {
	sc, err := s.transitionLoad(ctx, id, StatusPostponed)
	if err != nil {
		return nil, err
	}
	if newDate != "" {
		if dates.ParseDateOrNone(newDate) == nil {
			return nil, apierr.Invalid("new scheduled_date is not a valid timestamp")
		}
		sc.ScheduledDate = newDate
	}
	return s.save(ctx, sc)
}

func (s *Service) transition(ctx context.Context, id string, to Status) (*OTSchedule, error) {
	sc, err := s.transitionLoad(ctx, id, to)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, sc)
}

// transitionLoad fetches the schedule, checks the transition and applies the
// new status in memory without persisting.
func (s *Service) transitionLoad(ctx context.Context, id string, to Status) (*OTSchedule, error) {
	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load ot schedule: %w", err)
	}
	from := ParseStatus(sc.Status)
	if !canTransition(from, to) {
		return nil, apierr.Precondition("cannot move surgery from %s to %s", from, to)
	}
	sc.Status = string(to)
	return sc, nil
}

func (s *Service) save(ctx context.Context, sc *OTSchedule) (*OTSchedule, error) {
	updated, err := s.repo.Update(ctx, sc)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	schedules, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(schedules, s.now()), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleSurgery, id))
}
