package inventory

import "context"

// Repository reads and writes inventory records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Item, int, error)
	All(ctx context.Context) ([]*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, i *Item) (*Item, error)
	Update(ctx context.Context, i *Item) (*Item, error)
	Delete(ctx context.Context, id string) error
}
