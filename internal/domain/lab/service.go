package lab

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/gateway"
	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
)

// Uploader forwards report files to the hosted blob service.
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, r io.Reader) (*gateway.UploadResult, error)
}

type Service struct {
	repo     Repository
	uploader Uploader
	events   websocket.Publisher
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(repo Repository, uploader Uploader, logger zerolog.Logger) *Service {
	return &Service{repo: repo, uploader: uploader, logger: logger, now: time.Now}
}

// SetPublisher attaches the live-update publisher.
func (s *Service) SetPublisher(p websocket.Publisher) { s.events = p }

func (s *Service) CreateOrder(ctx context.Context, o *LabOrder) (*LabOrder, error) {
	if o.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if o.TestName == "" {
		return nil, apierr.Invalid("test_name is required")
	}
	if o.OrderDate == "" {
		o.OrderDate = s.now().Format(dates.ISODate)
	} else if dates.ParseDateOrNone(o.OrderDate) == nil {
		return nil, apierr.Invalid("order_date is not a valid date")
	}
	if o.Priority == "" {
		o.Priority = string(PriorityRoutine)
	} else if ParsePriority(o.Priority) == PriorityUnknown {
		return nil, apierr.Invalid("unknown lab priority %q", o.Priority)
	}
	if o.Status == "" {
		o.Status = string(StatusOrdered)
	} else if ParseStatus(o.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown lab status %q", o.Status)
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*LabOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, limit, offset int) ([]*LabOrder, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateOrder(ctx context.Context, o *LabOrder) (*LabOrder, error) {
	if o.ID == "" {
		return nil, apierr.Invalid("order id is required")
	}
	if o.Status != "" && ParseStatus(o.Status) == StatusUnknown {
		return nil, apierr.Invalid("unknown lab status %q", o.Status)
	}
	updated, err := s.repo.Update(ctx, o)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// AttachReport uploads a report file and links it to the order. Orders that
// have reached a terminal status no longer accept reports. The upload is not
// retried on failure; the order is untouched when it fails.
func (s *Service) AttachReport(ctx context.Context, id, fileName, contentType string, file io.Reader) (*LabOrder, error) {
	if fileName == "" {
		return nil, apierr.Invalid("report file name is required")
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load lab order: %w", err)
	}
	if ParseStatus(order.Status).Terminal() {
		return nil, apierr.Precondition("order %s is %s and no longer accepts reports", id, order.Status)
	}

	result, err := s.uploader.Upload(ctx, fileName, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	order.ReportFileURL = result.FileURL
	order.ReportFileName = result.FileName
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("order_id", id).
		Str("file_name", result.FileName).
		Msg("lab report attached")
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

// Complete records the result summary and closes the order.
func (s *Service) Complete(ctx context.Context, id, resultSummary string) (*LabOrder, error) {
	if resultSummary == "" {
		return nil, apierr.Invalid("result_summary is required")
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load lab order: %w", err)
	}
	if ParseStatus(order.Status).Terminal() {
		return nil, apierr.Precondition("order %s is already %s", id, order.Status)
	}

	order.ResultSummary = resultSummary
	order.Status = string(StatusCompleted)
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(orders, s.now()), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleLab, id))
}
