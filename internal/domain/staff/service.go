package staff

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/websocket"
	"github.com/hms/hms/pkg/dates"
)

type Service struct {
	employees   EmployeeRepository
	departments DepartmentRepository
	events      websocket.Publisher
	logger      zerolog.Logger
}

func NewService(employees EmployeeRepository, departments DepartmentRepository, logger zerolog.Logger) *Service {
	return &Service{
		employees:   employees,
		departments: departments,
		logger:      logger,
	}
}

// SetPublisher attaches the live-update publisher.
func (s *Service) SetPublisher(p websocket.Publisher) { s.events = p }

// -- Employees --

func (s *Service) CreateEmployee(ctx context.Context, e *Employee) (*Employee, error) {
	if e.FirstName == "" {
		return nil, apierr.Invalid("first_name is required")
	}
	if e.EmployeeID == "" {
		return nil, apierr.Invalid("employee_id is required")
	}
	if e.Role == "" {
		return nil, apierr.Invalid("role is required")
	}
	if e.Salary < 0 {
		return nil, apierr.Invalid("salary cannot be negative")
	}
	if e.DateOfJoining != "" {
		normalized, ok := dates.Normalize(e.DateOfJoining)
		if !ok {
			return nil, apierr.Invalid("date_of_joining is not a valid date")
		}
		e.DateOfJoining = normalized
	}
	if e.Status == "" {
		e.Status = string(EmployeeActive)
	} else if ParseEmployeeStatus(e.Status) == EmployeeUnknown {
		return nil, apierr.Invalid("unknown employee status %q", e.Status)
	}

	created, err := s.employees.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context, limit, offset int) ([]*Employee, int, error) {
	return s.employees.List(ctx, limit, offset)
}

func (s *Service) UpdateEmployee(ctx context.Context, e *Employee) (*Employee, error) {
	if e.ID == "" {
		return nil, apierr.Invalid("employee id is required")
	}
	if e.Status != "" && ParseEmployeeStatus(e.Status) == EmployeeUnknown {
		return nil, apierr.Invalid("unknown employee status %q", e.Status)
	}
	if e.Salary < 0 {
		return nil, apierr.Invalid("salary cannot be negative")
	}
	updated, err := s.employees.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

func (s *Service) EmployeeStats(ctx context.Context) (EmployeeStats, error) {
	employees, err := s.employees.All(ctx)
	if err != nil {
		return EmployeeStats{}, err
	}
	return ComputeEmployeeStats(employees), nil
}

// -- Departments --

func (s *Service) CreateDepartment(ctx context.Context, d *Department) (*Department, error) {
	if d.Name == "" {
		return nil, apierr.Invalid("name is required")
	}
	if d.Status == "" {
		d.Status = string(DepartmentActive)
	} else if ParseDepartmentStatus(d.Status) == DepartmentUnknown {
		return nil, apierr.Invalid("unknown department status %q", d.Status)
	}

	created, err := s.departments.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventCreated, created.ID)
	return created, nil
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	return s.departments.List(ctx, limit, offset)
}

func (s *Service) UpdateDepartment(ctx context.Context, d *Department) (*Department, error) {
	if d.ID == "" {
		return nil, apierr.Invalid("department id is required")
	}
	if d.Status != "" && ParseDepartmentStatus(d.Status) == DepartmentUnknown {
		return nil, apierr.Invalid("unknown department status %q", d.Status)
	}
	updated, err := s.departments.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, websocket.EventUpdated, updated.ID)
	return updated, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, websocket.EventDeleted, id)
	return nil
}

func (s *Service) DepartmentStats(ctx context.Context) (DepartmentStats, error) {
	departments, err := s.departments.All(ctx)
	if err != nil {
		return DepartmentStats{}, err
	}
	employees, err := s.employees.All(ctx)
	if err != nil {
		return DepartmentStats{}, err
	}
	return ComputeDepartmentStats(departments, employees), nil
}

func (s *Service) publish(ctx context.Context, eventType, id string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, websocket.NewEvent(eventType, auth.ModuleStaff, id))
}
