package staff

import (
	"strings"

	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/money"
)

// EmployeeStats is the staff block on the dashboard.
type EmployeeStats struct {
	TotalEmployees       int    `json:"totalEmployees"`
	ActiveEmployees      int    `json:"activeEmployees"`
	OnLeave              int    `json:"onLeave"`
	DoctorCount          int    `json:"doctorCount"`
	NurseCount           int    `json:"nurseCount"`
	MonthlySalaryExpense string `json:"monthlySalaryExpense"`
}

// ComputeEmployeeStats derives staff metrics from a snapshot. The salary
// expense sums every active employee's monthly salary.
func ComputeEmployeeStats(employees []*Employee) EmployeeStats {
	var st EmployeeStats
	st.TotalEmployees = len(employees)
	var expense float64
	for _, e := range employees {
		switch ParseEmployeeStatus(e.Status) {
		case EmployeeActive:
			st.ActiveEmployees++
			expense += e.Salary
		case EmployeeOnLeave:
			st.OnLeave++
		}
		switch strings.ToLower(e.Role) {
		case "doctor":
			st.DoctorCount++
		case "nurse":
			st.NurseCount++
		}
	}
	st.MonthlySalaryExpense = money.Rupees(expense)
	return st
}

// DepartmentSize names the largest department and its headcount.
type DepartmentSize struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DepartmentStats is the department block on the dashboard.
type DepartmentStats struct {
	TotalDepartments  int            `json:"totalDepartments"`
	ActiveDepartments int            `json:"activeDepartments"`
	LargestDepartment DepartmentSize `json:"largestDepartment"`
}

// ComputeDepartmentStats sizes departments by the employees assigned to them.
// Arg-max with first-encountered tie-break; {name:"N/A", count:0} when no
// employee names a department.
func ComputeDepartmentStats(departments []*Department, employees []*Employee) DepartmentStats {
	var st DepartmentStats
	st.TotalDepartments = len(departments)
	st.LargestDepartment = DepartmentSize{Name: dates.NotAvailable}

	for _, d := range departments {
		if ParseDepartmentStatus(d.Status) == DepartmentActive {
			st.ActiveDepartments++
		}
	}

	counts := make(map[string]int)
	for _, e := range employees {
		if e.DepartmentName == "" {
			continue
		}
		counts[e.DepartmentName]++
		if counts[e.DepartmentName] > st.LargestDepartment.Count {
			st.LargestDepartment = DepartmentSize{Name: e.DepartmentName, Count: counts[e.DepartmentName]}
		}
	}
	return st
}
