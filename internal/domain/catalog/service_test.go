package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
)

type mockRepo struct {
	services map[string]*Service
}

func newMockRepo() *mockRepo {
	return &mockRepo{services: make(map[string]*Service)}
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Service, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockRepo) All(_ context.Context) ([]*Service, error) {
	var result []*Service
	for _, s := range m.services {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *s
	return &copied, nil
}

func (m *mockRepo) Create(_ context.Context, s *Service) (*Service, error) {
	s.ID = uuid.NewString()
	m.services[s.ID] = s
	return s, nil
}

func (m *mockRepo) Update(_ context.Context, s *Service) (*Service, error) {
	if _, ok := m.services[s.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.services[s.ID] = s
	return s, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	delete(m.services, id)
	return nil
}

func TestCreateServiceDefaultsActive(t *testing.T) {
	svc := NewService(newMockRepo(), zerolog.Nop())

	created, err := svc.CreateService(context.Background(), &Service{Name: "MRI Scan", Charge: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != string(StatusActive) {
		t.Errorf("status = %q, want Active", created.Status)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	cases := []struct {
		name    string
		service Service
	}{
		{"missing name", Service{Charge: 100}},
		{"negative charge", Service{Name: "X-Ray", Charge: -1}},
		{"negative duration", Service{Name: "X-Ray", DurationMinutes: -5}},
		{"unknown status", Service{Name: "X-Ray", Status: "Suspended"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newMockRepo(), zerolog.Nop())
			s := tc.service
			if _, err := svc.CreateService(context.Background(), &s); !apierr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
