package staff

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const (
	employeesEntity   = "employees"
	departmentsEntity = "departments"
)

const snapshotPage = 200

type employeeRepoGW struct {
	gw *gateway.Client
}

func NewEmployeeRepo(gw *gateway.Client) EmployeeRepository {
	return &employeeRepoGW{gw: gw}
}

func (r *employeeRepoGW) List(ctx context.Context, limit, offset int) ([]*Employee, int, error) {
	res, err := r.gw.List(ctx, employeesEntity, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	employees, err := decodeEmployees(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return employees, res.Total, nil
}

func (r *employeeRepoGW) All(ctx context.Context) ([]*Employee, error) {
	var all []*Employee
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, employeesEntity, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		employees, err := decodeEmployees(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, employees...)
		if len(employees) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *employeeRepoGW) GetByID(ctx context.Context, id string) (*Employee, error) {
	raw, err := r.gw.Get(ctx, employeesEntity, id)
	if err != nil {
		return nil, err
	}
	return decodeEmployee(raw)
}

func (r *employeeRepoGW) Create(ctx context.Context, e *Employee) (*Employee, error) {
	raw, err := r.gw.Create(ctx, employeesEntity, e)
	if err != nil {
		return nil, err
	}
	return decodeEmployee(raw)
}

func (r *employeeRepoGW) Update(ctx context.Context, e *Employee) (*Employee, error) {
	raw, err := r.gw.Update(ctx, employeesEntity, e.ID, e)
	if err != nil {
		return nil, err
	}
	return decodeEmployee(raw)
}

func (r *employeeRepoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, employeesEntity, id)
}

type departmentRepoGW struct {
	gw *gateway.Client
}

func NewDepartmentRepo(gw *gateway.Client) DepartmentRepository {
	return &departmentRepoGW{gw: gw}
}

func (r *departmentRepoGW) List(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	res, err := r.gw.List(ctx, departmentsEntity, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	departments, err := decodeDepartments(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return departments, res.Total, nil
}

func (r *departmentRepoGW) All(ctx context.Context) ([]*Department, error) {
	var all []*Department
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, departmentsEntity, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		departments, err := decodeDepartments(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, departments...)
		if len(departments) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *departmentRepoGW) GetByID(ctx context.Context, id string) (*Department, error) {
	raw, err := r.gw.Get(ctx, departmentsEntity, id)
	if err != nil {
		return nil, err
	}
	return decodeDepartment(raw)
}

func (r *departmentRepoGW) Create(ctx context.Context, d *Department) (*Department, error) {
	raw, err := r.gw.Create(ctx, departmentsEntity, d)
	if err != nil {
		return nil, err
	}
	return decodeDepartment(raw)
}

func (r *departmentRepoGW) Update(ctx context.Context, d *Department) (*Department, error) {
	raw, err := r.gw.Update(ctx, departmentsEntity, d.ID, d)
	if err != nil {
		return nil, err
	}
	return decodeDepartment(raw)
}

func (r *departmentRepoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, departmentsEntity, id)
}

func decodeEmployee(raw json.RawMessage) (*Employee, error) {
	var e Employee
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}
	return &e, nil
}

func decodeEmployees(items []json.RawMessage) ([]*Employee, error) {
	employees := make([]*Employee, 0, len(items))
	for _, raw := range items {
		e, err := decodeEmployee(raw)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func decodeDepartment(raw json.RawMessage) (*Department, error) {
	var d Department
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode department: %w", err)
	}
	return &d, nil
}

func decodeDepartments(items []json.RawMessage) ([]*Department, error) {
	departments := make([]*Department, 0, len(items))
	for _, raw := range items {
		d, err := decodeDepartment(raw)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, nil
}
