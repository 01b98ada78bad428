package employee

import (
	"time"

	"github.com/frahmantamala/company-directory/internal/core/datamodel/department"
)

type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;index"`
	Salary       float64   `gorm:"column:salary;not null"`
	DepartmentID *int64    `gorm:"column:department_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Department is only populated by reads that join it in.
	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

func (Employee) TableName() string {
	return "employees"
}

// Summary is the {id, name, email} projection of an employee row.
type Summary struct {
	ID    int64  `gorm:"column:id"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
}

// Details is the flat employee/department/company projection.
type Details struct {
	EmployeeID     int64  `gorm:"column:employee_id"`
	EmployeeName   string `gorm:"column:employee_name"`
	EmployeeEmail  string `gorm:"column:employee_email"`
	DepartmentName string `gorm:"column:department_name"`
	CompanyName    string `gorm:"column:company_name"`
}

// DepartmentSalaryStats is one row of the salary-by-department report.
type DepartmentSalaryStats struct {
	DepartmentName string  `gorm:"column:department_name"`
	EmployeeCount  int64   `gorm:"column:employee_count"`
	AverageSalary  float64 `gorm:"column:average_salary"`
}

// DepartmentCount is one row of the employee-count-by-department report.
type DepartmentCount struct {
	DepartmentName string `db:"department_name"`
	EmployeeCount  int64  `db:"employee_count"`
}
