package department

import (
	"github.com/frahmantamala/company-directory/internal"
	"github.com/frahmantamala/company-directory/internal/core/common/validation"
)

// CreateDepartmentDTO represents the request payload for creating a department
type CreateDepartmentDTO struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	CompanyID *int64 `json:"company_id,omitempty"`
}

func (dto CreateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(255)
	v.Field("location", dto.Location).Required().MaxLength(255)
	v.Field("company_id", dto.CompanyID).MinInt(1, internal.ErrCodeValidationFailed)
	return v.Validate()
}
