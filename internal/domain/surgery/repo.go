package surgery

import "context"

// Repository reads and writes OT schedule records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*OTSchedule, int, error)
	All(ctx context.Context) ([]*OTSchedule, error)
	GetByID(ctx context.Context, id string) (*OTSchedule, error)
	Create(ctx context.Context, s *OTSchedule) (*OTSchedule, error)
	Update(ctx context.Context, s *OTSchedule) (*OTSchedule, error)
	Delete(ctx context.Context, id string) error
}
