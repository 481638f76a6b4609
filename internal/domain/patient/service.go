package patient

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
)

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

func (s *Service) CreatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	if p.FirstName == "" {
		return nil, apierr.Invalid("first_name is required")
	}
	if p.MRN == "" {
		return nil, apierr.Invalid("mrn is required")
	}
	if p.DateOfBirth != "" {
		normalized, ok := dates.Normalize(p.DateOfBirth)
		if !ok {
			return nil, apierr.Invalid("date_of_birth is not a valid date")
		}
		p.DateOfBirth = normalized
	}
	if p.Status == "" {
		p.Status = string(StatusActive)
	} else if ParseStatus(p.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown patient status %q", p.Status)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	if p.ID == "" {
		return nil, apierr.Invalid("patient id is required")
	}
	if p.Status != "" && ParseStatus(p.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown patient status %q", p.Status)
	}
	if p.DateOfBirth != "" {
		normalized, ok := dates.Normalize(p.DateOfBirth)
		if !ok {
			return nil, apierr.Invalid("date_of_birth is not a valid date")
		}
		p.DateOfBirth = normalized
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

func (s *Service) ListRecords(ctx context.Context, patientID string, limit, offset int) ([]*MedicalRecord, int, error) {
	return s.repo.ListRecords(ctx, patientID, limit, offset)
}

func (s *Service) AddRecord(ctx context.Context, rec *MedicalRecord) (*MedicalRecord, error) {
	if rec.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if rec.Title == "" {
		return nil, apierr.Invalid("title is required")
	}
	if rec.RecordDate == "" {
		rec.RecordDate = s.now().Format(dates.ISODate)
	} else if normalized, ok := dates.Normalize(rec.RecordDate); ok {
		rec.RecordDate = normalized
	} else {
		return nil, apierr.Invalid("record_date is not a valid date")
	}
	return s.repo.CreateRecord(ctx, rec)
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.repo.DeleteRecord(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	patients, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(patients, s.now()), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModulePatients, id))
}
