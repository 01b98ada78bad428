package company

import (
	"errors"
	"time"

	companyDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/company"
)

// IndustryKey is the attribute bag key holding a company's industry.
const IndustryKey = "industry"

var ErrCompanyNotFound = errors.New("company not found")

type Company struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Attribute returns the bag value stored under key.
func (c *Company) Attribute(key string) (interface{}, bool) {
	v, ok := c.Properties[key]
	return v, ok
}

// Industry returns the "industry" attribute when it is a string.
func (c *Company) Industry() string {
	v, _ := c.Attribute(IndustryKey)
	s, _ := v.(string)
	return s
}

func NewCompany(dto CreateCompanyDTO) *Company {
	now := time.Now()
	props := dto.Properties
	if props == nil {
		props = map[string]interface{}{}
	}
	return &Company{
		Name:       dto.Name,
		Properties: props,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func ToDataModel(c *Company) *companyDatamodel.Company {
	return &companyDatamodel.Company{
		ID:         c.ID,
		Name:       c.Name,
		Properties: c.Properties,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromDataModel(c *companyDatamodel.Company) *Company {
	return &Company{
		ID:         c.ID,
		Name:       c.Name,
		Properties: c.Properties,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromDataModelSlice(companies []*companyDatamodel.Company) []*Company {
	result := make([]*Company, len(companies))
	for i, c := range companies {
		result[i] = FromDataModel(c)
	}
	return result
}
