package pharmacy

import "context"

// Repository reads and writes prescription records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Prescription, int, error)
	All(ctx context.Context) ([]*Prescription, error)
	GetByID(ctx context.Context, id string) (*Prescription, error)
	Create(ctx context.Context, p *Prescription) (*Prescription, error)
	Update(ctx context.Context, p *Prescription) (*Prescription, error)
	Delete(ctx context.Context, id string) error
}
