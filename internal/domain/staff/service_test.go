package staff

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/apierr"
)

type mockEmployeeRepo struct {
	employees map[string]*Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*Employee)}
}

func (m *mockEmployeeRepo) List(_ context.Context, limit, offset int) ([]*Employee, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockEmployeeRepo) All(_ context.Context) ([]*Employee, error) {
	var result []*Employee
	for _, e := range m.employees {
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *e
	return &copied, nil
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	e.ID = uuid.NewString()
	m.employees[e.ID] = e
	return e, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	if _, ok := m.employees[e.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.employees[e.ID] = e
	return e, nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(m.employees, id)
	return nil
}

type mockDepartmentRepo struct {
	departments map[string]*Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*Department)}
}

func (m *mockDepartmentRepo) List(_ context.Context, limit, offset int) ([]*Department, int, error) {
	all, _ := m.All(context.Background())
	return all, len(all), nil
}

func (m *mockDepartmentRepo) All(_ context.Context) ([]*Department, error) {
	var result []*Department
	for _, d := range m.departments {
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *d
	return &copied, nil
}

func (m *mockDepartmentRepo) Create(_ context.Context, d *Department) (*Department, error) {
	d.ID = uuid.NewString()
	m.departments[d.ID] = d
	return d, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, d *Department) (*Department, error) {
	if _, ok := m.departments[d.ID]; !ok {
		return nil, fmt.Errorf("not found")
	}
	m.departments[d.ID] = d
	return d, nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(m.departments, id)
	return nil
}

func newTestService() (*Service, *mockEmployeeRepo, *mockDepartmentRepo) {
	employees := newMockEmployeeRepo()
	departments := newMockDepartmentRepo()
	return NewService(employees, departments, zerolog.Nop()), employees, departments
}

func TestCreateEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateEmployee(context.Background(), &Employee{
		EmployeeID:    "EMP-001",
		FirstName:     "Asha",
		LastName:      "Rao",
		Role:          "Doctor",
		Salary:        120000,
		DateOfJoining: "2024-01-15T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != string(EmployeeActive) {
		t.Errorf("status = %q, want Active", created.Status)
	}
	if created.DateOfJoining != "2024-01-15" {
		t.Errorf("date_of_joining not normalized: %q", created.DateOfJoining)
	}
	if got := created.FullName(); got != "Asha Rao" {
		t.Errorf("full name = %q", got)
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	cases := []struct {
		name     string
		employee Employee
	}{
		{"missing first name", Employee{EmployeeID: "E1", Role: "Nurse"}},
		{"missing employee id", Employee{FirstName: "Asha", Role: "Nurse"}},
		{"missing role", Employee{FirstName: "Asha", EmployeeID: "E1"}},
		{"negative salary", Employee{FirstName: "Asha", EmployeeID: "E1", Role: "Nurse", Salary: -1}},
		{"bad joining date", Employee{FirstName: "Asha", EmployeeID: "E1", Role: "Nurse", DateOfJoining: "last year"}},
		{"unknown status", Employee{FirstName: "Asha", EmployeeID: "E1", Role: "Nurse", Status: "Retired"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			e := tc.employee
			if _, err := svc.CreateEmployee(context.Background(), &e); !apierr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDepartmentDefaultsActive(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateDepartment(context.Background(), &Department{Name: "Cardiology", Code: "CARD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != string(DepartmentActive) {
		t.Errorf("status = %q, want Active", created.Status)
	}
}

func TestCreateDepartmentRequiresName(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.CreateDepartment(context.Background(), &Department{Code: "X"}); !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDepartmentStatsSizesByEmployees(t *testing.T) {
	svc, employees, departments := newTestService()

	departments.departments["d1"] = &Department{ID: "d1", Name: "Cardiology", Status: "Active"}
	departments.departments["d2"] = &Department{ID: "d2", Name: "Radiology", Status: "Inactive"}
	employees.employees["e1"] = &Employee{ID: "e1", DepartmentName: "Cardiology", Status: "Active"}
	employees.employees["e2"] = &Employee{ID: "e2", DepartmentName: "Cardiology", Status: "Active"}
	employees.employees["e3"] = &Employee{ID: "e3", DepartmentName: "Radiology", Status: "Active"}

	st, err := svc.DepartmentStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalDepartments != 2 || st.ActiveDepartments != 1 {
		t.Errorf("department counts wrong: %+v", st)
	}
	if st.LargestDepartment.Name != "Cardiology" || st.LargestDepartment.Count != 2 {
		t.Errorf("largest = %+v, want Cardiology/2", st.LargestDepartment)
	}
}
