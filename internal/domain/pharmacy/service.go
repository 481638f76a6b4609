package pharmacy

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

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	if p.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if p.DoctorName == "" {
		return nil, apierr.Invalid("doctor_name is required")
	}
	if len(p.Medications) == 0 {
		return nil, apierr.Invalid("at least one medication is required")
	}
	for i, m := range p.Medications {
		if m.MedicineName == "" {
			return nil, apierr.Invalid("medication %d needs a medicine_name", i+1)
		}
		if m.Quantity <= 0 {
			return nil, apierr.Invalid("medication %q needs a positive quantity", m.MedicineName)
		}
	}
	if p.PrescriptionDate == "" {
		p.PrescriptionDate = s.now().Format(dates.ISODate)
	} else if dates.ParseDateOrNone(p.PrescriptionDate) == nil {
		return nil, apierr.Invalid("prescription_date is not a valid date")
	}
	if p.Status == "" {
		p.Status = string(StatusPending)
	} else if ParseStatus(p.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown prescription status %q", p.Status)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetPrescription(ctx context.Context, id string) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPrescriptions(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	if p.ID == "" {
		return nil, apierr.Invalid("prescription id is required")
	}
	if p.Status != "" && ParseStatus(p.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown prescription status %q", p.Status)
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeletePrescription(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// DispenseRequest marks a prescription handed out. Partial leaves the
// prescription open for the remainder.
type DispenseRequest struct {
	Partial     bool   `json:"partial"`
	DispensedBy string `json:"dispensed_by"`
}

// Dispense marks the prescription Dispensed, or Partially Dispensed when the
// pharmacist could only fill part of it.
func (s *Service) Dispense(ctx context.Context, id string, req DispenseRequest) (*Prescription, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load prescription: %w", err)
	}
	if ParseStatus(p.Status).Terminal() {
		return nil, apierr.Precondition("prescription %s is already %s", id, p.Status)
	}

	if req.Partial {
		p.Status = string(StatusPartiallyDispensed)
	} else {
		p.Status = string(StatusDispensed)
		p.DispensedDate = s.now().Format(dates.ISODate)
	}
	if req.DispensedBy != "" {
		p.DispensedBy = req.DispensedBy
	} else if user := auth.UserFromContext(ctx); user != nil {
		p.DispensedBy = user.Name
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

// Cancel voids an open prescription.
func (s *Service) Cancel(ctx context.Context, id string) (*Prescription, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load prescription: %w", err)
	}
	if ParseStatus(p.Status).Terminal() {
		return nil, apierr.Precondition("prescription %s is already %s", id, p.Status)
	}

	p.Status = string(StatusCancelled)
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	prescriptions, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(prescriptions, s.now()), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModulePharmacy, id))
}
