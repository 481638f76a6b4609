package catalog

import "context"

// Repository reads and writes catalog service records.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Service, int, error)
	All(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	Create(ctx context.Context, s *Service) (*Service, error)
	Update(ctx context.Context, s *Service) (*Service, error)
	Delete(ctx context.Context, id string) error
}
