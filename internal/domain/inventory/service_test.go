package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
)

type mockRepo struct {
	items map[string]*Item
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]*Item)}
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Item, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockRepo) All(_ context.Context) ([]*Item, error) {
	var result []*Item
	for _, i := range m.items {
		result = append(result, i)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *i
	return &copied, nil
}

func (m *mockRepo) Create(_ context.Context, i *Item) (*Item, error) {
	i.ID = uuid.NewString()
	m.items[i.ID] = i
	return i, nil
}

func (m *mockRepo) Update(_ context.Context, i *Item) (*Item, error) {
	if _, ok := m.items[i.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.items[i.ID] = i
	return i, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	svc := NewService(repo, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreateItemDerivesStatus(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want Status
	}{
		{"plenty on hand", Item{ItemName: "Gauze", QuantityOnHand: 100, MinimumStockLevel: 20}, StatusInStock},
		{"at threshold", Item{ItemName: "Gauze", QuantityOnHand: 20, MinimumStockLevel: 20}, StatusLowStock},
		{"none on hand", Item{ItemName: "Gauze", QuantityOnHand: 0, MinimumStockLevel: 20}, StatusOutOfStock},
		{"expired dominates quantity", Item{ItemName: "Saline", QuantityOnHand: 100, MinimumStockLevel: 5, ExpiryDate: "2025-01-01"}, StatusExpired},
		{"future expiry ignored", Item{ItemName: "Saline", QuantityOnHand: 100, MinimumStockLevel: 5, ExpiryDate: "2026-01-01"}, StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newMockRepo())
			item := tc.item
			// Client-supplied status is ignored.
			item.Status = "In Stock"
			created, err := svc.CreateItem(context.Background(), &item)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Status != string(tc.want) {
				t.Errorf("status = %q, want %q", created.Status, tc.want)
			}
		})
	}
}

func TestCreateItemValidation(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"missing name", Item{QuantityOnHand: 1}},
		{"negative quantity", Item{ItemName: "Gauze", QuantityOnHand: -1}},
		{"negative minimum", Item{ItemName: "Gauze", MinimumStockLevel: -1}},
		{"negative cost", Item{ItemName: "Gauze", UnitCost: -1}},
		{"bad expiry", Item{ItemName: "Gauze", ExpiryDate: "soon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newMockRepo())
			item := tc.item
			if _, err := svc.CreateItem(context.Background(), &item); !apierr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAdjustStock(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	created, _ := svc.CreateItem(context.Background(), &Item{
		ItemName: "Gloves", QuantityOnHand: 25, MinimumStockLevel: 20,
	})

	// Draw down into low-stock territory.
	adjusted, err := svc.AdjustStock(context.Background(), created.ID, -10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adjusted.QuantityOnHand != 15 {
		t.Errorf("quantity = %d, want 15", adjusted.QuantityOnHand)
	}
	if adjusted.Status != string(StatusLowStock) {
		t.Errorf("status = %q, want Low Stock", adjusted.Status)
	}

	// Restock back above the threshold.
	adjusted, err = svc.AdjustStock(context.Background(), created.ID, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adjusted.Status != string(StatusInStock) {
		t.Errorf("status = %q, want In Stock", adjusted.Status)
	}
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	created, _ := svc.CreateItem(context.Background(), &Item{ItemName: "Gloves", QuantityOnHand: 5})

	_, err := svc.AdjustStock(context.Background(), created.ID, -6)
	if err == nil || apierr.IsValidation(err) {
		t.Fatalf("expected precondition error, got %v", err)
	}
	if repo.items[created.ID].QuantityOnHand != 5 {
		t.Error("quantity must be unchanged after rejected adjustment")
	}
}

func TestAdjustStockRejectsZeroDelta(t *testing.T) {
	svc := newTestService(newMockRepo())
	if _, err := svc.AdjustStock(context.Background(), "x", 0); !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
