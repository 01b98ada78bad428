package company

import (
	"github.com/frahmantamala/company-directory/internal"
	"github.com/frahmantamala/company-directory/internal/core/common/validation"
	"github.com/frahmantamala/company-directory/internal/core/query"
)

// CreateCompanyDTO represents the request payload for creating a company
type CreateCompanyDTO struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Validate validates the CreateCompanyDTO
func (dto CreateCompanyDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(255)
	v.Field("properties", dto.Properties).Custom(func(value interface{}) *internal.AppError {
		props, _ := value.(map[string]interface{})
		for key := range props {
			if err := query.ValidateAttributeKey(key); err != nil {
				return internal.NewValidationFieldError("properties", err.Error(), internal.ErrCodeInvalidAttributeKey)
			}
		}
		return nil
	})
	return v.Validate()
}
