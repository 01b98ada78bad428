package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee references its department by id only. Reads that need the
// department name return EmployeeWithDepartment instead.
type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Salary       float64   `json:"salary"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EmployeeWithDepartment struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	DepartmentName *string `json:"department_name"`
}

type Summary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmployeeDetails is one flattened employee/department/company row.
type EmployeeDetails struct {
	EmployeeID     int64  `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeEmail  string `json:"employee_email"`
	DepartmentName string `json:"department_name"`
	CompanyName    string `json:"company_name"`
}

func NewEmployee(dto CreateEmployeeDTO) *Employee {
	now := time.Now()
	e := &Employee{
		Name:         dto.Name,
		Email:        dto.Email,
		DepartmentID: dto.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if dto.Salary != nil {
		e.Salary = *dto.Salary
	}
	return e
}

// Apply copies the non-nil fields of dto onto e.
func (e *Employee) Apply(dto UpdateEmployeeDTO) {
	if dto.Name != nil {
		e.Name = *dto.Name
	}
	if dto.Email != nil {
		e.Email = *dto.Email
	}
	if dto.Salary != nil {
		e.Salary = *dto.Salary
	}
	if dto.DepartmentID != nil {
		id := *dto.DepartmentID
		e.DepartmentID = &id
	}
	e.UpdatedAt = time.Now()
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}

// WithDepartmentFromDataModel expects e.Department to be loaded when the
// employee has one.
func WithDepartmentFromDataModel(e *employeeDatamodel.Employee) *EmployeeWithDepartment {
	out := &EmployeeWithDepartment{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
	}
	if e.Department != nil && e.Department.ID != 0 {
		name := e.Department.Name
		out.DepartmentName = &name
	}
	return out
}

func SummaryFromDataModel(s *employeeDatamodel.Summary) *Summary {
	return &Summary{ID: s.ID, Name: s.Name, Email: s.Email}
}

func DetailsFromDataModel(d *employeeDatamodel.Details) *EmployeeDetails {
	return &EmployeeDetails{
		EmployeeID:     d.EmployeeID,
		EmployeeName:   d.EmployeeName,
		EmployeeEmail:  d.EmployeeEmail,
		DepartmentName: d.DepartmentName,
		CompanyName:    d.CompanyName,
	}
}
