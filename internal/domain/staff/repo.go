package staff

import "context"

// EmployeeRepository reads and writes employee records.
type EmployeeRepository interface {
	List(ctx context.Context, limit, offset int) ([]*Employee, int, error)
	All(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, e *Employee) (*Employee, error)
	Update(ctx context.Context, e *Employee) (*Employee, error)
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository reads and writes department records.
type DepartmentRepository interface {
	List(ctx context.Context, limit, offset int) ([]*Department, int, error)
	All(ctx context.Context) ([]*Department, error)
	GetByID(ctx context.Context, id string) (*Department, error)
	Create(ctx context.Context, d *Department) (*Department, error)
	Update(ctx context.Context, d *Department) (*Department, error)
	Delete(ctx context.Context, id string) error
}
