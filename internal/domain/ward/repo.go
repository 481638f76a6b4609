package ward

import "context"

// Repository reads and writes bed records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Bed, int, error)
	All(ctx context.Context) ([]*Bed, error)
	GetByID(ctx context.Context, id string) (*Bed, error)
	Create(ctx context.Context, b *Bed) (*Bed, error)
	Update(ctx context.Context, b *Bed) (*Bed, error)
	Delete(ctx context.Context, id string) error
}
