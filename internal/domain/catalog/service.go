package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
)

type Svc struct {
	repo   Repository
	events websocket.Publisher
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Svc {
	return &Svc{repo: repo, logger: logger}
}

// SetPublisher attaches the live-update publisher.
func (s *Svc) SetPublisher(p websocket.Publisher) { s.events = p }

func (s *Svc) CreateService(ctx context.Context, svc *Service) (*Service, error) {
	if svc.Name == "" {
		return nil, apierr.Invalid("name is required")
	}
	if svc.Charge < 0 {
		return nil, apierr.Invalid("charge cannot be negative")
	}
	if svc.DurationMinutes < 0 {
		return nil, apierr.Invalid("duration_minutes cannot be negative")
	}
	if svc.Status == "" {
		svc.Status = string(StatusActive)
	} else if ParseStatus(svc.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown service status %q", svc.Status)
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Svc) GetService(ctx context.Context, id string) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Svc) ListServices(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Svc) UpdateService(ctx context.Context, svc *Service) (*Service, error) {
	if svc.ID == "" {
		return nil, apierr.Invalid("service id is required")
	}
	if svc.Status != "" && ParseStatus(svc.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown service status %q", svc.Status)
	}
	if svc.Charge < 0 {
		return nil, apierr.Invalid("charge cannot be negative")
	}
	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Svc) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

func (s *Svc) Stats(ctx context.Context) (Stats, error) {
	services, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(services), nil
}

func (s *Svc) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleServices, id))
}
