package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[string]*Patient
	records  map[string]*MedicalRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients: make(map[string]*Patient),
		records:  make(map[string]*MedicalRecord),
	}
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockRepo) All(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) Create(_ context.Context, p *Patient) (*Patient, error) {
	p.ID = uuid.NewString()
	m.patients[p.ID] = p
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) (*Patient, error) {
	if _, ok := m.patients[p.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.patients[p.ID] = p
	return p, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) ListRecords(_ context.Context, patientID string, limit, offset int) ([]*MedicalRecord, int, error) {
	var result []*MedicalRecord
	for _, r := range m.records {
		if r.PatientID == patientID {
			result = append(result, r)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) CreateRecord(_ context.Context, r *MedicalRecord) (*MedicalRecord, error) {
	r.ID = uuid.NewString()
	m.records[r.ID] = r
	return r, nil
}

func (m *mockRepo) DeleteRecord(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	svc := NewService(repo, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreatePatientDefaultsAndNormalizes(t *testing.T) {
	svc := newTestService(newMockRepo())

	created, err := svc.CreatePatient(context.Background(), &Patient{
		MRN:         "MRN-001",
		FirstName:   "Asha",
		LastName:    "Rao",
		DateOfBirth: "1990-03-20T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != string(StatusActive) {
		t.Errorf("status not defaulted to active: %s", created.Status)
	}
	if created.DateOfBirth != "1990-03-20" {
		t.Errorf("date_of_birth not normalized: %s", created.DateOfBirth)
	}
}

func TestCreatePatientValidation(t *testing.T) {
	svc := newTestService(newMockRepo())

	tests := []struct {
		name    string
		patient Patient
	}{
		{"missing first name", Patient{MRN: "M1"}},
		{"missing mrn", Patient{FirstName: "Asha"}},
		{"bad dob", Patient{MRN: "M1", FirstName: "Asha", DateOfBirth: "soon"}},
		{"unknown status", Patient{MRN: "M1", FirstName: "Asha", Status: "frozen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreatePatient(context.Background(), &tt.patient); !apierr.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAddRecordDefaultsDate(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	rec, err := svc.AddRecord(context.Background(), &MedicalRecord{
		PatientID: "p1",
		Title:     "Follow-up",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RecordDate != "2025-06-15" {
		t.Errorf("record_date not defaulted: %s", rec.RecordDate)
	}
}

func TestAddRecordValidation(t *testing.T) {
	svc := newTestService(newMockRepo())
	if _, err := svc.AddRecord(context.Background(), &MedicalRecord{Title: "x"}); !apierr.IsValidation(err) {
		t.Errorf("expected validation error for missing patient, got %v", err)
	}
	if _, err := svc.AddRecord(context.Background(), &MedicalRecord{PatientID: "p1"}); !apierr.IsValidation(err) {
		t.Errorf("expected validation error for missing title, got %v", err)
	}
}

func TestNewViewAge(t *testing.T) {
	v := NewView(&Patient{FirstName: "Asha", LastName: "Rao", DateOfBirth: "1990-06-16"}, testNow)
	if v.Age != "34" {
		t.Errorf("age = %s, want 34 (birthday not yet reached)", v.Age)
	}
	if v.FullName != "Asha Rao" {
		t.Errorf("full name = %q", v.FullName)
	}

	v = NewView(&Patient{FirstName: "Ravi"}, testNow)
	if v.Age != "N/A" {
		t.Errorf("missing dob should yield N/A, got %s", v.Age)
	}

	v = NewView(&Patient{FirstName: "Ravi", DateOfBirth: "not-a-date"}, testNow)
	if v.Age != "N/A" {
		t.Errorf("unparsable dob should yield N/A, got %s", v.Age)
	}
}
