// Package staff manages hospital employees and the department directory.
package staff

import "strings"

// EmployeeStatus classifies an employee record.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "Active"
	EmployeeInactive   EmployeeStatus = "Inactive"
	EmployeeOnLeave    EmployeeStatus = "On Leave"
	EmployeeTerminated EmployeeStatus = "Terminated"
	EmployeeUnknown    EmployeeStatus = "Unknown"
)

func ParseEmployeeStatus(s string) EmployeeStatus {
	switch s {
	case string(EmployeeActive):
		return EmployeeActive
	case string(EmployeeInactive):
		return EmployeeInactive
	case string(EmployeeOnLeave):
		return EmployeeOnLeave
	case string(EmployeeTerminated):
		return EmployeeTerminated
	default:
		return EmployeeUnknown
	}
}

func (s EmployeeStatus) BadgeClass() string {
	switch s {
	case EmployeeActive:
		return "badge-success"
	case EmployeeOnLeave:
		return "badge-warning"
	case EmployeeInactive, EmployeeTerminated:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Employee mirrors the Gateway's employee record.
type Employee struct {
	ID             string  `json:"id,omitempty"`
	EmployeeID     string  `json:"employee_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Role           string  `json:"role"`
	DepartmentID   string  `json:"department_id,omitempty"`
	DepartmentName string  `json:"department_name,omitempty"`
	Status         string  `json:"status"`
	Salary         float64 `json:"salary"`
	DateOfJoining  string  `json:"date_of_joining,omitempty"`
	ShiftSchedule  string  `json:"shift_schedule,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeView is the display shape of an employee.
type EmployeeView struct {
	*Employee
	FullName    string `json:"full_name"`
	StatusBadge string `json:"status_badge"`
}

func NewEmployeeView(e *Employee) EmployeeView {
	return EmployeeView{
		Employee:    e,
		FullName:    e.FullName(),
		StatusBadge: ParseEmployeeStatus(e.Status).BadgeClass(),
	}
}

// DepartmentStatus classifies a department.
type DepartmentStatus string

const (
	DepartmentActive   DepartmentStatus = "Active"
	DepartmentInactive DepartmentStatus = "Inactive"
	DepartmentUnknown  DepartmentStatus = "Unknown"
)

func ParseDepartmentStatus(s string) DepartmentStatus {
	switch s {
	case string(DepartmentActive):
		return DepartmentActive
	case string(DepartmentInactive):
		return DepartmentInactive
	default:
		return DepartmentUnknown
	}
}

func (s DepartmentStatus) BadgeClass() string {
	switch s {
	case DepartmentActive:
		return "badge-success"
	case DepartmentInactive:
		return "badge-danger"
	default:
		return "badge-neutral"
	}
}

// Department mirrors the Gateway's department record.
type Department struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Code             string `json:"code,omitempty"`
	HeadOfDepartment string `json:"head_of_department,omitempty"`
	Status           string `json:"status"`
}

// DepartmentView is the display shape of a department.
type DepartmentView struct {
	*Department
	StatusBadge string `json:"status_badge"`
}

func NewDepartmentView(d *Department) DepartmentView {
	return DepartmentView{
		Department:  d,
		StatusBadge: ParseDepartmentStatus(d.Status).BadgeClass(),
	}
}
