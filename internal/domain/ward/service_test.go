package ward

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
)

// -- Mock Repository --

type mockRepo struct {
	beds map[string]*Bed
}

func newMockRepo() *mockRepo {
	return &mockRepo{beds: make(map[string]*Bed)}
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Bed, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockRepo) All(_ context.Context) ([]*Bed, error) {
	var result []*Bed
	for _, b := range m.beds {
		result = append(result, b)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Bed, error) {
	b, ok := m.beds[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *b
	return &copied, nil
}

func (m *mockRepo) Create(_ context.Context, b *Bed) (*Bed, error) {
	b.ID = uuid.NewString()
	m.beds[b.ID] = b
	return b, nil
}

func (m *mockRepo) Update(_ context.Context, b *Bed) (*Bed, error) {
	if _, ok := m.beds[b.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.beds[b.ID] = b
	return b, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	delete(m.beds, id)
	return nil
}

type mockBilling struct {
	calls  int
	lastID string
	fail   bool
}

func (m *mockBilling) CreateDischargeBill(_ context.Context, patientID, patientName string, stayDays int, dailyRate float64) (string, error) {
	if m.fail {
		return "", errors.New("billing unavailable")
	}
	m.calls++
	m.lastID = uuid.NewString()
	return m.lastID, nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository, billing BillCreator) *Service {
	svc := NewService(repo, billing, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func seedOccupiedBed(repo *mockRepo, admission string, rate float64) *Bed {
	bed := &Bed{
		ID:                 uuid.NewString(),
		BedNumber:          "B-101",
		WardName:           "General",
		Status:             string(StatusOccupied),
		CurrentPatientID:   "p1",
		CurrentPatientName: "Asha Rao",
		AdmissionDate:      admission,
		DailyRate:          rate,
	}
	repo.beds[bed.ID] = bed
	return bed
}

// -- AssignPatient --

func TestAssignPatient(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})

	bed, _ := svc.CreateBed(context.Background(), &Bed{BedNumber: "B-1", WardName: "ICU"})

	updated, err := svc.AssignPatient(context.Background(), bed.ID, AssignRequest{
		PatientID:   "p1",
		PatientName: "Asha Rao",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != string(StatusOccupied) {
		t.Errorf("expected Occupied, got %s", updated.Status)
	}
	if updated.AdmissionDate != "2025-06-15" {
		t.Errorf("admission date not defaulted: %q", updated.AdmissionDate)
	}
}

func TestAssignPatientRejectsOccupiedBed(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})
	bed := seedOccupiedBed(repo, "2025-06-10", 1000)

	_, err := svc.AssignPatient(context.Background(), bed.ID, AssignRequest{PatientID: "p2"})
	if err == nil || apierr.IsValidation(err) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestAssignPatientRequiresPatient(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockBilling{})
	if _, err := svc.AssignPatient(context.Background(), "x", AssignRequest{}); !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// -- Discharge flow --

func TestPrepareDischargePartialDayChargesOneDay(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})
	// Admitted 2 hours before the reference time.
	bed := seedOccupiedBed(repo, "2025-06-15T10:00:00Z", 1500)

	summary, err := svc.PrepareDischarge(context.Background(), bed.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.StayDays != 1 {
		t.Errorf("stay_days = %d, want 1", summary.StayDays)
	}
	if summary.RoomCharges != 1500 {
		t.Errorf("room_charges = %v, want 1500", summary.RoomCharges)
	}
}

func TestPrepareDischargeMultiDay(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})
	// Admitted 3 days 4 hours before the reference time.
	bed := seedOccupiedBed(repo, "2025-06-12T08:00:00Z", 1000)

	summary, err := svc.PrepareDischarge(context.Background(), bed.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.StayDays != 3 {
		t.Errorf("stay_days = %d, want 3", summary.StayDays)
	}
	if summary.RoomCharges != 3000 {
		t.Errorf("room_charges = %v, want 3000", summary.RoomCharges)
	}
}

func TestPrepareDischargeMissingAdmissionDateIsTerminal(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})
	bed := seedOccupiedBed(repo, "", 1000)

	_, err := svc.PrepareDischarge(context.Background(), bed.ID)
	if err == nil {
		t.Fatal("expected precondition error")
	}
	if apierr.IsValidation(err) {
		t.Fatal("missing admission date is a precondition failure, not validation")
	}
}

func TestConfirmDischarge(t *testing.T) {
	repo := newMockRepo()
	billing := &mockBilling{}
	svc := newTestService(repo, billing)
	bed := seedOccupiedBed(repo, "2025-06-12T08:00:00Z", 1000)

	result, err := svc.ConfirmDischarge(context.Background(), bed.ID, DischargeRequest{DischargingDoctor: "Dr. Mehta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BillID != billing.lastID {
		t.Errorf("bill id mismatch: %s vs %s", result.BillID, billing.lastID)
	}
	if billing.calls != 1 {
		t.Errorf("expected one bill, got %d", billing.calls)
	}

	released := repo.beds[bed.ID]
	if released.Status != string(StatusCleaning) {
		t.Errorf("expected Cleaning, got %s", released.Status)
	}
	if released.CurrentPatientID != "" || released.CurrentPatientName != "" || released.AdmissionDate != "" {
		t.Errorf("patient fields not cleared: %+v", released)
	}
}

func TestConfirmDischargeBillingFailureKeepsBedOccupied(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{fail: true})
	bed := seedOccupiedBed(repo, "2025-06-12T08:00:00Z", 1000)

	_, err := svc.ConfirmDischarge(context.Background(), bed.ID, DischargeRequest{DischargingDoctor: "Dr. Mehta"})
	if err == nil {
		t.Fatal("expected error from billing failure")
	}
	if repo.beds[bed.ID].Status != string(StatusOccupied) {
		t.Error("bed must stay occupied when the bill could not be created")
	}
}

func TestConfirmDischargeRequiresDoctor(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockBilling{})
	bed := seedOccupiedBed(repo, "2025-06-12T08:00:00Z", 1000)

	if _, err := svc.ConfirmDischarge(context.Background(), bed.ID, DischargeRequest{}); !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
