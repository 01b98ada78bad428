package report

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/company-directory/internal"
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	SalaryStatsByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentSalaryStats, error)
	EmployeeCountByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentCount, error)
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

// GetDepartmentSalaryStats groups employees by department name. Employees
// without a department are not counted.
func (s *Service) GetDepartmentSalaryStats(ctx context.Context) ([]*DepartmentSalaryStats, error) {
	rows, err := s.repo.SalaryStatsByDepartment(ctx)
	if err != nil {
		s.logger.Error("failed to compute salary stats", "error", err)
		return nil, internal.NewRetrievalError("failed to compute salary stats", err)
	}
	return SalaryStatsFromDataModel(rows), nil
}

func (s *Service) GetEmployeeCountByDepartment(ctx context.Context) ([]*DepartmentCount, error) {
	rows, err := s.repo.EmployeeCountByDepartment(ctx)
	if err != nil {
		s.logger.Error("failed to count employees by department", "error", err)
		return nil, internal.NewRetrievalError("failed to count employees by department", err)
	}
	return CountsFromDataModel(rows), nil
}
