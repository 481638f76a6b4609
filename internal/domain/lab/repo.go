package lab

import "context"

// Repository reads and writes lab order records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*LabOrder, int, error)
	All(ctx context.Context) ([]*LabOrder, error)
	GetByID(ctx context.Context, id string) (*LabOrder, error)
	Create(ctx context.Context, o *LabOrder) (*LabOrder, error)
	Update(ctx context.Context, o *LabOrder) (*LabOrder, error)
	Delete(ctx context.Context, id string) error
}
