package internal

import (
	"errors"

	"github.com/frahmantamala/company-directory/internal/core/query"
)

// TranslateQueryError turns query-building errors into request errors and
// anything else into an opaque retrieval failure carrying the cause.
func TranslateQueryError(message string, err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, query.ErrInvalidSortField):
		return NewValidationError(err.Error(), ErrCodeInvalidSortField).
			WithDetails(ValidationErrors{Errors: []ValidationError{
				{Field: "sort", Message: err.Error(), Code: string(ErrCodeInvalidSortField)},
			}})
	case errors.Is(err, query.ErrInvalidSortDirection):
		return NewValidationError(err.Error(), ErrCodeInvalidPagination).
			WithDetails(ValidationErrors{Errors: []ValidationError{
				{Field: "sort", Message: err.Error(), Code: string(ErrCodeInvalidPagination)},
			}})
	case errors.Is(err, query.ErrInvalidAttributeKey):
		return NewValidationError(err.Error(), ErrCodeInvalidAttributeKey).
			WithDetails(ValidationErrors{Errors: []ValidationError{
				{Field: "key", Message: err.Error(), Code: string(ErrCodeInvalidAttributeKey)},
			}})
	}

	return NewRetrievalError(message, err)
}
