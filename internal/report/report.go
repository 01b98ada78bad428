package report

import (
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
)

// DepartmentSalaryStats is the head count and mean salary of one department.
type DepartmentSalaryStats struct {
	DepartmentName string  `json:"department_name"`
	EmployeeCount  int64   `json:"employee_count"`
	AverageSalary  float64 `json:"average_salary"`
}

type DepartmentCount struct {
	DepartmentName string `json:"department_name"`
	EmployeeCount  int64  `json:"employee_count"`
}

func SalaryStatsFromDataModel(rows []*employeeDatamodel.DepartmentSalaryStats) []*DepartmentSalaryStats {
	result := make([]*DepartmentSalaryStats, len(rows))
	for i, r := range rows {
		result[i] = &DepartmentSalaryStats{
			DepartmentName: r.DepartmentName,
			EmployeeCount:  r.EmployeeCount,
			AverageSalary:  r.AverageSalary,
		}
	}
	return result
}

func CountsFromDataModel(rows []*employeeDatamodel.DepartmentCount) []*DepartmentCount {
	result := make([]*DepartmentCount, len(rows))
	for i, r := range rows {
		result[i] = &DepartmentCount{
			DepartmentName: r.DepartmentName,
			EmployeeCount:  r.EmployeeCount,
		}
	}
	return result
}
