package department

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/company-directory/internal"
	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/company-directory/internal/core/query"
)

type RepositoryAPI interface {
	Create(ctx context.Context, department *departmentDatamodel.Department) error
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
	List(ctx context.Context, p query.Pageable) ([]*departmentDatamodel.Department, int64, error)
	CompanyExists(ctx context.Context, companyID int64) (bool, error)
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

func (s *Service) CreateDepartment(ctx context.Context, dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("department validation failed", "error", err)
		return nil, err
	}

	if dto.CompanyID != nil {
		exists, err := s.repo.CompanyExists(ctx, *dto.CompanyID)
		if err != nil {
			s.logger.Error("failed to check company", "error", err, "company_id", *dto.CompanyID)
			return nil, internal.NewRetrievalError("failed to check company", err)
		}
		if !exists {
			return nil, internal.ErrCompanyNotFound
		}
	}

	row := ToDataModel(NewDepartment(dto))
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, internal.NewRetrievalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", row.ID, "name", row.Name)
	return FromDataModel(row), nil
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return nil, internal.ErrDepartmentNotFound
		}
		s.logger.Error("failed to get department", "error", err, "department_id", id)
		return nil, internal.NewRetrievalError("failed to get department", err)
	}
	return FromDataModel(row), nil
}

func (s *Service) ListDepartments(ctx context.Context, p query.Pageable) (query.Page[*Department], error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		appErr := internal.TranslateQueryError("failed to list departments", err)
		if appErr.Code == internal.ErrCodeRetrievalFailed {
			s.logger.Error("failed to list departments", "error", err)
		}
		return query.Page[*Department]{}, appErr
	}
	return query.NewPage(FromDataModelSlice(rows), p, total), nil
}
