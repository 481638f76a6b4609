package inventory

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

func (s *Service) CreateItem(ctx context.Context, i *Item) (*Item, error) {
	if err := s.validate(i); err != nil {
		return nil, err
	}
	i.Status = string(i.DeriveStatus(s.now()))

	created, err := s.repo.Create(ctx, i)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateItem(ctx context.Context, i *Item) (*Item, error) {
	if i.ID == "" {
		return nil, apierr.Invalid("item id is required")
	}
	if err := s.validate(i); err != nil {
		return nil, err
	}
	i.Status = string(i.DeriveStatus(s.now()))

	updated, err := s.repo.Update(ctx, i)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

// AdjustStock applies a signed quantity delta and rederives the status.
// Adjustments that would take the quantity negative are rejected.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (*Item, error) {
	if delta == 0 {
		return nil, apierr.Invalid("adjustment delta cannot be zero")
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load inventory item: %w", err)
	}
	next := item.QuantityOnHand + delta
	if next < 0 {
		return nil, apierr.Precondition("adjustment would take %s below zero (%d on hand, delta %d)",
			item.ItemName, item.QuantityOnHand, delta)
	}
	item.QuantityOnHand = next
	item.Status = string(item.DeriveStatus(s.now()))

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("item_id", id).
		Int("delta", delta).
		Int("quantity_on_hand", updated.QuantityOnHand).
		Str("status", updated.Status).
		Msg("stock adjusted")
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(items), nil
}

func (s *Service) validate(i *Item) error {
	if i.ItemName == "" {
		return apierr.Invalid("item_name is required")
	}
	if i.QuantityOnHand < 0 {
		return apierr.Invalid("quantity_on_hand cannot be negative")
	}
	if i.MinimumStockLevel < 0 {
		return apierr.Invalid("minimum_stock_level cannot be negative")
	}
	if i.UnitCost < 0 {
		return apierr.Invalid("unit_cost cannot be negative")
	}
	if i.ExpiryDate != "" && dates.ParseDateOrNone(i.ExpiryDate) == nil {
		return apierr.Invalid("expiry_date is not a valid date")
	}
	return nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleInventory, id))
}
