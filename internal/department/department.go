package department

import (
	"errors"
	"time"

	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
)

var ErrDepartmentNotFound = errors.New("department not found")

type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CompanyID *int64    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDepartment(dto CreateDepartmentDTO) *Department {
	now := time.Now()
	return &Department{
		Name:      dto.Name,
		Location:  dto.Location,
		CompanyID: dto.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:        d.ID,
		Name:      d.Name,
		Location:  d.Location,
		CompanyID: d.CompanyID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:        d.ID,
		Name:      d.Name,
		Location:  d.Location,
		CompanyID: d.CompanyID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDataModelSlice(departments []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(departments))
	for i, d := range departments {
		result[i] = FromDataModel(d)
	}
	return result
}
