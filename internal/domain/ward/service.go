package ward

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/money"
)

// BillCreator creates the room-charge bill during discharge. Satisfied by
// billing.Service.
type BillCreator interface {
	CreateDischargeBill(ctx context.Context, patientID, patientName string, stayDays int, dailyRate float64) (string, error)
}

type Service struct {
	repo    Repository
	billing BillCreator
	events  websocket.Publisher
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(repo Repository, billing BillCreator, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		billing: billing,
		logger:  logger,
		now:     time.Now,
	}
}

// SetPublisher attaches the live-update publisher.
func (s *Service) SetPublisher(p websocket.Publisher) { s.events = p }

func (s *Service) CreateBed(ctx context.Context, b *Bed) (*Bed, error) {
	if b.BedNumber == "" {
		return nil, apierr.Invalid("bed_number is required")
	}
	if b.WardName == "" {
		return nil, apierr.Invalid("ward_name is required")
	}
	if b.DailyRate < 0 {
		return nil, apierr.Invalid("daily_rate must be non-negative")
	}
	if b.Status == "" {
		b.Status = string(StatusAvailable)
	} else if ParseStatus(b.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown bed status %q", b.Status)
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetBed(ctx context.Context, id string) (*Bed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBeds(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateBed(ctx context.Context, b *Bed) (*Bed, error) {
	if b.ID == "" {
		return nil, apierr.Invalid("bed id is required")
	}
	if b.Status != "" && ParseStatus(b.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown bed status %q", b.Status)
	}
	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteBed(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// AssignRequest admits a patient to a bed.
type AssignRequest struct {
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	AdmissionDate string `json:"admission_date"`
}

// AssignPatient marks a bed Occupied. An occupied bed always carries a
// patient and an admission date.
func (s *Service) AssignPatient(ctx context.Context, bedID string, req AssignRequest) (*Bed, error) {
	if req.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if req.AdmissionDate == "" {
		req.AdmissionDate = s.now().Format(dates.ISODate)
	} else if normalized, ok := dates.Normalize(req.AdmissionDate); ok {
		req.AdmissionDate = normalized
	} else {
		return nil, apierr.Invalid("admission_date is not a valid date")
	}

	bed, err := s.repo.GetByID(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("load bed: %w", err)
	}
	if ParseStatus(bed.Status) == StatusOccupied {
		return nil, apierr.Precondition("bed %s is already occupied", bed.BedNumber)
	}

	bed.Status = string(StatusOccupied)
	bed.CurrentPatientID = req.PatientID
	bed.CurrentPatientName = req.PatientName
	bed.AdmissionDate = req.AdmissionDate

	updated, err := s.repo.Update(ctx, bed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

// PrepareDischarge computes the room-charge summary for an occupied bed.
// A missing admission date is terminal for the discharge flow.
func (s *Service) PrepareDischarge(ctx context.Context, bedID string) (*DischargeSummary, error) {
	bed, err := s.repo.GetByID(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("load bed: %w", err)
	}
	return s.summarize(bed)
}

func (s *Service) summarize(bed *Bed) (*DischargeSummary, error) {
	if ParseStatus(bed.Status) != StatusOccupied {
		return nil, apierr.Precondition("bed %s is not occupied", bed.BedNumber)
	}
	admission := dates.ParseDateOrNone(bed.AdmissionDate)
	if admission == nil {
		return nil, apierr.Precondition("bed %s has no admission date; discharge cannot be computed", bed.BedNumber)
	}

	stayDays := dates.StayDays(*admission, s.now())
	charges := float64(stayDays) * bed.DailyRate
	return &DischargeSummary{
		BedID:              bed.ID,
		BedNumber:          bed.BedNumber,
		PatientID:          bed.CurrentPatientID,
		PatientName:        bed.CurrentPatientName,
		AdmissionDate:      bed.AdmissionDate,
		StayDays:           stayDays,
		DailyRate:          bed.DailyRate,
		RoomCharges:        charges,
		RoomChargesDisplay: money.RupeesExact(charges),
	}, nil
}

// DischargeRequest carries the discharging-doctor metadata.
type DischargeRequest struct {
	DischargingDoctor string `json:"discharging_doctor"`
}

// DischargeResult is returned after a confirmed discharge.
type DischargeResult struct {
	Summary *DischargeSummary `json:"summary"`
	BillID  string            `json:"bill_id"`
}

// ConfirmDischarge creates the pending room-charge bill, clears the bed's
// patient fields and moves it to Cleaning.
func (s *Service) ConfirmDischarge(ctx context.Context, bedID string, req DischargeRequest) (*DischargeResult, error) {
	if req.DischargingDoctor == "" {
		return nil, apierr.Invalid("discharging_doctor is required")
	}

	bed, err := s.repo.GetByID(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("load bed: %w", err)
	}
	summary, err := s.summarize(bed)
	if err != nil {
		return nil, err
	}

	billID, err := s.billing.CreateDischargeBill(ctx, summary.PatientID, summary.PatientName, summary.StayDays, summary.DailyRate)
	if err != nil {
		return nil, fmt.Errorf("create discharge bill: %w", err)
	}

	bed.Status = string(StatusCleaning)
	bed.CurrentPatientID = ""
	bed.CurrentPatientName = ""
	bed.AdmissionDate = ""
	if _, err := s.repo.Update(ctx, bed); err != nil {
		return nil, fmt.Errorf("release bed: %w", err)
	}

	s.logger.Info().
		Str("bed_id", bedID).
		Str("patient_id", summary.PatientID).
		Str("bill_id", billID).
		Str("doctor", req.DischargingDoctor).
		Int("stay_days", summary.StayDays).
		Msg("patient discharged")

	s.publish(ctx, websocket.EventUpdated, bedID)
	return &DischargeResult{Summary: summary, BillID: billID}, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	beds, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(beds), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleBeds, id))
}
