package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/outbox"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
)

// NoteQueue enqueues durable side effects. Satisfied by outbox.Repository.
type NoteQueue interface {
	Enqueue(ctx context.Context, topic string, payload any) (*outbox.Entry, error)
}

type Service struct {
	repo   Repository
	notes  NoteQueue
	events websocket.Publisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SetNoteQueue attaches the outbox used for medical-record payment notes.
func (s *Service) SetNoteQueue(q NoteQueue) { s.notes = q }

// SetPublisher attaches the live-update publisher.
func (s *Service) SetPublisher(p websocket.Publisher) { s.events = p }

func (s *Service) CreateBill(ctx context.Context, b *Bill) (*Bill, error) {
	if b.PatientID == "" {
		return nil, apierr.Invalid("patient_id is required")
	}
	if b.BillNumber == "" {
		b.BillNumber = newBillNumber(s.now())
	}
	if b.BillDate == "" {
		b.BillDate = s.now().Format(dates.ISODate)
	} else if normalized, ok := dates.Normalize(b.BillDate); ok {
		b.BillDate = normalized
	} else {
		return nil, apierr.Invalid("bill_date is not a valid date")
	}

	var total float64
	for i := range b.LineItems {
		li := &b.LineItems[i]
		if li.Description == "" {
			return nil, apierr.Invalid("line item description is required")
		}
		if li.Quantity <= 0 || li.UnitPrice < 0 {
			return nil, apierr.Invalid("line item quantity must be positive and unit price non-negative")
		}
		li.Amount = li.Quantity * li.UnitPrice
		total += li.Amount
	}
	b.TotalAmount = total
	if b.DiscountAmount < 0 || b.DiscountAmount > b.TotalAmount {
		return nil, apierr.Invalid("discount must be between 0 and the bill total")
	}
	b.Reconcile()

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetBill(ctx context.Context, id string) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateBill(ctx context.Context, b *Bill) (*Bill, error) {
	if b.ID == "" {
		return nil, apierr.Invalid("bill id is required")
	}
	b.Reconcile()
	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteBill(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// PaymentRequest is the form payload for recording a payment.
type PaymentRequest struct {
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	ReceivedBy    string  `json:"received_by"`
}

// RecordPayment applies a payment to a bill. The amount must be positive and
// no more than the outstanding amount; a rejected payment changes nothing.
// On success a medical-record note is enqueued best-effort.
func (s *Service) RecordPayment(ctx context.Context, billID string, req PaymentRequest) (*Bill, error) {
	if req.AmountPaid <= 0 {
		return nil, apierr.Invalid("payment amount must be greater than zero")
	}
	if req.PaymentMethod == "" {
		return nil, apierr.Invalid("payment_method is required")
	}

	bill, err := s.repo.GetByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("load bill: %w", err)
	}

	due := bill.DueAmount()
	if req.AmountPaid > due {
		return nil, apierr.Invalid("payment amount %.2f exceeds amount due %.2f", req.AmountPaid, due)
	}

	date := req.PaymentDate
	if date == "" {
		date = s.now().Format(dates.ISODate)
	} else if normalized, ok := dates.Normalize(date); ok {
		date = normalized
	} else {
		return nil, apierr.Invalid("payment_date is not a valid date")
	}
	if req.ReceivedBy == "" {
		if user := auth.UserFromContext(ctx); user != nil {
			req.ReceivedBy = user.Name
		}
	}

	bill.Payments = append(bill.Payments, Payment{
		AmountPaid:    req.AmountPaid,
		PaymentDate:   date,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		ReceivedBy:    req.ReceivedBy,
	})
	bill.Reconcile()

	updated, err := s.repo.Update(ctx, bill)
	if err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	s.enqueuePaymentNote(ctx, updated, req.AmountPaid, date, req.PaymentMethod)
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

// CreateDischargeBill creates a pending bill holding the room charges for a
// discharged stay and returns its id. Called by the ward discharge flow.
func (s *Service) CreateDischargeBill(ctx context.Context, patientID, patientName string, stayDays int, dailyRate float64) (string, error) {
	bill := &Bill{
		PatientID:   patientID,
		PatientName: patientName,
		LineItems: []LineItem{{
			Description: fmt.Sprintf("Room charges (%d days)", stayDays),
			Quantity:    float64(stayDays),
			UnitPrice:   dailyRate,
		}},
	}
	created, err := s.CreateBill(ctx, bill)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	bills, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(bills), nil
}

func (s *Service) enqueuePaymentNote(ctx context.Context, bill *Bill, amount float64, date, method string) {
	if s.notes == nil {
		return
	}
	note := PaymentNote{
		PatientID:     bill.PatientID,
		BillID:        bill.ID,
		BillNumber:    bill.BillNumber,
		AmountPaid:    amount,
		PaymentDate:   date,
		PaymentMethod: method,
	}
	if _, err := s.notes.Enqueue(ctx, TopicPaymentNote, note); err != nil {
		// Best-effort side effect: the payment itself already succeeded.
		s.logger.Error().Err(err).Str("bill_id", bill.ID).Msg("enqueue payment note")
	}
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleBilling, id))
}

func newBillNumber(now time.Time) string {
	return fmt.Sprintf("BILL-%s-%s", now.Format("20060102"), uuid.NewString()[:8])
}
