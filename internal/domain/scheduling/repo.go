package scheduling

import "context"

// Repository reads and writes appointment records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
	All(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}
