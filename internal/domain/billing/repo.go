package billing

import "context"

// Repository reads and writes bill records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Bill, int, error)
	All(ctx context.Context) ([]*Bill, error)
	GetByID(ctx context.Context, id string) (*Bill, error)
	Create(ctx context.Context, b *Bill) (*Bill, error)
	Update(ctx context.Context, b *Bill) (*Bill, error)
	Delete(ctx context.Context, id string) error
}
