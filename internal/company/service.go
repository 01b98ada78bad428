package company

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/company-directory/internal"
	companyDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/company"
	"github.com/frahmantamala/company-directory/internal/core/query"
)

type RepositoryAPI interface {
	Create(ctx context.Context, company *companyDatamodel.Company) error
	GetByID(ctx context.Context, id int64) (*companyDatamodel.Company, error)
	FindByAttribute(ctx context.Context, key, value string, p query.Pageable) ([]*companyDatamodel.Company, int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateCompany(ctx context.Context, dto CreateCompanyDTO) (*Company, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("company validation failed", "error", err)
		return nil, err
	}

	row := ToDataModel(NewCompany(dto))
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create company", "error", err, "name", dto.Name)
		return nil, internal.NewRetrievalError("failed to create company", err)
	}

	s.logger.Info("company created", "company_id", row.ID, "name", row.Name)
	return FromDataModel(row), nil
}

func (s *Service) GetCompany(ctx context.Context, id int64) (*Company, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return nil, internal.ErrCompanyNotFound
		}
		s.logger.Error("failed to get company", "error", err, "company_id", id)
		return nil, internal.NewRetrievalError("failed to get company", err)
	}
	return FromDataModel(row), nil
}

// FindByIndustry pages through companies whose "industry" attribute equals
// industry.
func (s *Service) FindByIndustry(ctx context.Context, industry string, p query.Pageable) (query.Page[*Company], error) {
	return s.FindByAttribute(ctx, IndustryKey, industry, p)
}

func (s *Service) FindByAttribute(ctx context.Context, key, value string, p query.Pageable) (query.Page[*Company], error) {
	if err := query.ValidateAttributeKey(key); err != nil {
		return query.Page[*Company]{}, internal.TranslateQueryError("", err)
	}

	rows, total, err := s.repo.FindByAttribute(ctx, key, value, p)
	if err != nil {
		appErr := internal.TranslateQueryError("failed to search companies", err)
		if appErr.Code == internal.ErrCodeRetrievalFailed {
			s.logger.Error("failed to search companies by attribute", "error", err, "key", key, "value", value)
		}
		return query.Page[*Company]{}, appErr
	}

	s.logger.Debug("companies found by attribute", "key", key, "value", value, "total", total)
	return query.NewPage(FromDataModelSlice(rows), p, total), nil
}
