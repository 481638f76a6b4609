package staff

import "testing"

func TestComputeEmployeeStats(t *testing.T) {
	employees := []*Employee{
		{Role: "Doctor", Status: "Active", Salary: 150000},
		{Role: "doctor", Status: "On Leave", Salary: 140000},
		{Role: "Nurse", Status: "Active", Salary: 60000},
		{Role: "Technician", Status: "Terminated", Salary: 45000},
	}

	st := ComputeEmployeeStats(employees)

	if st.TotalEmployees != 4 {
		t.Errorf("total = %d, want 4", st.TotalEmployees)
	}
	if st.ActiveEmployees != 2 {
		t.Errorf("active = %d, want 2", st.ActiveEmployees)
	}
	if st.OnLeave != 1 {
		t.Errorf("onLeave = %d, want 1", st.OnLeave)
	}
	if st.DoctorCount != 2 {
		t.Errorf("doctors = %d, want 2 (role match is case-insensitive)", st.DoctorCount)
	}
	if st.NurseCount != 1 {
		t.Errorf("nurses = %d, want 1", st.NurseCount)
	}
	// Only active salaries count: 150000 + 60000, en-IN grouping.
	if st.MonthlySalaryExpense != "₹2,10,000" {
		t.Errorf("expense = %q, want ₹2,10,000", st.MonthlySalaryExpense)
	}
}

func TestComputeEmployeeStatsEmpty(t *testing.T) {
	st := ComputeEmployeeStats(nil)
	if st.TotalEmployees != 0 {
		t.Errorf("total = %d, want 0", st.TotalEmployees)
	}
	if st.MonthlySalaryExpense != "₹0" {
		t.Errorf("expense = %q, want ₹0", st.MonthlySalaryExpense)
	}
}

func TestComputeDepartmentStatsTieBreak(t *testing.T) {
	departments := []*Department{
		{Name: "Cardiology", Status: "Active"},
		{Name: "Radiology", Status: "Active"},
	}
	// Both departments reach two employees; Cardiology gets there first.
	employees := []*Employee{
		{DepartmentName: "Cardiology"},
		{DepartmentName: "Cardiology"},
		{DepartmentName: "Radiology"},
		{DepartmentName: "Radiology"},
	}

	st := ComputeDepartmentStats(departments, employees)
	if st.LargestDepartment.Name != "Cardiology" || st.LargestDepartment.Count != 2 {
		t.Errorf("largest = %+v, want Cardiology/2", st.LargestDepartment)
	}
}

func TestComputeDepartmentStatsEmpty(t *testing.T) {
	st := ComputeDepartmentStats(nil, nil)
	if st.LargestDepartment.Name != "N/A" || st.LargestDepartment.Count != 0 {
		t.Errorf("largest = %+v, want N/A/0", st.LargestDepartment)
	}
}
