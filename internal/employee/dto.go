package employee

import (
	"github.com/frahmantamala/company-directory/internal"
	"github.com/frahmantamala/company-directory/internal/core/common/validation"
)

// CreateEmployeeDTO represents the request payload for creating an employee
type CreateEmployeeDTO struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Salary       *float64 `json:"salary"`
	DepartmentID *int64   `json:"department_id,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(255)
	v.Field("email", dto.Email).Required().MaxLength(255).Email()
	v.Field("salary", dto.Salary).Required().MinFloat(0, internal.ErrCodeInvalidSalary)
	v.Field("department_id", dto.DepartmentID).MinInt(1, internal.ErrCodeValidationFailed)
	return v.Validate()
}

// UpdateEmployeeDTO is a partial update: nil fields are left unchanged.
type UpdateEmployeeDTO struct {
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Salary       *float64 `json:"salary,omitempty"`
	DepartmentID *int64   `json:"department_id,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).NotBlank().MaxLength(255)
	v.Field("email", dto.Email).NotBlank().MaxLength(255).Email()
	v.Field("salary", dto.Salary).MinFloat(0, internal.ErrCodeInvalidSalary)
	v.Field("department_id", dto.DepartmentID).MinInt(1, internal.ErrCodeValidationFailed)
	return v.Validate()
}

// SearchFilter holds the optional employee search inputs. A nil or empty
// field adds no condition.
type SearchFilter struct {
	Name       *string  `json:"name,omitempty"`
	Department *string  `json:"department,omitempty"`
	MinSalary  *float64 `json:"min_salary,omitempty"`
	Location   *string  `json:"location,omitempty"`
}

// DetailsFilter holds the optional substring filters of the details report.
type DetailsFilter struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
}
