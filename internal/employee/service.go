package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/company-directory/internal"
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/company-directory/internal/core/events"
	"github.com/frahmantamala/company-directory/internal/core/query"
)

type RepositoryAPI interface {
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	GetWithDepartment(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	GetSummary(ctx context.Context, id int64) (*employeeDatamodel.Summary, error)
	List(ctx context.Context, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error)
	ListWithDepartment(ctx context.Context, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error)
	Update(ctx context.Context, employee *employeeDatamodel.Employee) error
	Delete(ctx context.Context, id int64) error
	DepartmentExists(ctx context.Context, departmentID int64) (bool, error)
	FindByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error)
	FindByDepartmentName(ctx context.Context, name string, ignoreCase bool) ([]*employeeDatamodel.Employee, error)
	Search(ctx context.Context, filter SearchFilter, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error)
	FindSummaries(ctx context.Context, departmentName *string, p query.Pageable) ([]*employeeDatamodel.Summary, int64, error)
	FindDetails(ctx context.Context, filter DetailsFilter, p query.Pageable) ([]*employeeDatamodel.Details, int64, error)
}

type Service struct {
	repo      RepositoryAPI
	logger    *slog.Logger
	publisher events.Publisher
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// WithPublisher makes the service announce creates, updates and deletes.
func (s *Service) WithPublisher(p events.Publisher) *Service {
	s.publisher = p
	return s
}

func (s *Service) publish(ctx context.Context, eventType string, id int64, email string, departmentID *int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewEmployeeChangedEvent(eventType, id, email, departmentID)); err != nil {
		s.logger.Warn("failed to publish employee event", "error", err, "event_type", eventType, "employee_id", id)
	}
}

func (s *Service) CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err)
		return nil, err
	}

	if err := s.ensureDepartment(ctx, dto.DepartmentID); err != nil {
		return nil, err
	}

	row := ToDataModel(NewEmployee(dto))
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, internal.NewRetrievalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", row.ID, "email", row.Email)
	s.publish(ctx, events.EventTypeEmployeeCreated, row.ID, row.Email, row.DepartmentID)
	return FromDataModel(row), nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(err, "failed to get employee", "employee_id", id)
	}
	return FromDataModel(row), nil
}

func (s *Service) GetEmployeeWithDepartment(ctx context.Context, id int64) (*EmployeeWithDepartment, error) {
	row, err := s.repo.GetWithDepartment(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(err, "failed to get employee with department", "employee_id", id)
	}
	return WithDepartmentFromDataModel(row), nil
}

func (s *Service) GetEmployeeSummary(ctx context.Context, id int64) (*Summary, error) {
	row, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(err, "failed to get employee summary", "employee_id", id)
	}
	return SummaryFromDataModel(row), nil
}

func (s *Service) ListEmployees(ctx context.Context, p query.Pageable) (query.Page[*Employee], error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Page[*Employee]{}, s.queryError(err, "failed to list employees")
	}
	return query.NewPage(FromDataModelSlice(rows), p, total), nil
}

func (s *Service) ListEmployeesWithDepartment(ctx context.Context, p query.Pageable) (query.Page[*EmployeeWithDepartment], error) {
	rows, total, err := s.repo.ListWithDepartment(ctx, p)
	if err != nil {
		return query.Page[*EmployeeWithDepartment]{}, s.queryError(err, "failed to list employees with department")
	}
	page := query.NewPage(rows, p, total)
	return query.MapPage(page, WithDepartmentFromDataModel), nil
}

// UpdateEmployee applies the non-nil fields of dto. A department id that
// does not exist is rejected rather than cleared.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee update validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(err, "failed to get employee", "employee_id", id)
	}

	if err := s.ensureDepartment(ctx, dto.DepartmentID); err != nil {
		return nil, err
	}

	e := FromDataModel(row)
	e.Apply(dto)

	updated := ToDataModel(e)
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, s.notFoundOr(err, "failed to update employee", "employee_id", id)
	}

	s.logger.Info("employee updated", "employee_id", id)
	s.publish(ctx, events.EventTypeEmployeeUpdated, id, updated.Email, updated.DepartmentID)
	return FromDataModel(updated), nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.notFoundOr(err, "failed to delete employee", "employee_id", id)
	}
	s.logger.Info("employee deleted", "employee_id", id)
	s.publish(ctx, events.EventTypeEmployeeDeleted, id, "", nil)
	return nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	if email == "" {
		return nil, internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	row, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.notFoundOr(err, "failed to find employee by email", "email", email)
	}
	return FromDataModel(row), nil
}

// FindByDepartment lists the employees of a department, matched by exact name.
func (s *Service) FindByDepartment(ctx context.Context, departmentName string) ([]*Employee, error) {
	return s.findByDepartment(ctx, departmentName, false)
}

func (s *Service) FindByDepartmentIgnoreCase(ctx context.Context, departmentName string) ([]*Employee, error) {
	return s.findByDepartment(ctx, departmentName, true)
}

func (s *Service) findByDepartment(ctx context.Context, departmentName string, ignoreCase bool) ([]*Employee, error) {
	if departmentName == "" {
		return nil, internal.NewValidationFieldError("department_name", "department_name is required", internal.ErrCodeValidationFailed)
	}
	rows, err := s.repo.FindByDepartmentName(ctx, departmentName, ignoreCase)
	if err != nil {
		s.logger.Error("failed to find employees by department", "error", err, "department", departmentName)
		return nil, internal.NewRetrievalError("failed to find employees by department", err)
	}
	return FromDataModelSlice(rows), nil
}

// SearchEmployees returns one page of employees matching every present field
// of filter, together with the total number of matches.
func (s *Service) SearchEmployees(ctx context.Context, filter SearchFilter, p query.Pageable) (query.Page[*Employee], error) {
	if filter.MinSalary != nil && *filter.MinSalary < 0 {
		return query.Page[*Employee]{}, internal.NewValidationFieldError("min_salary", "min_salary must be at least 0", internal.ErrCodeInvalidSalary)
	}

	rows, total, err := s.repo.Search(ctx, filter, p)
	if err != nil {
		return query.Page[*Employee]{}, s.queryError(err, "failed to search employees")
	}

	s.logger.Debug("employee search", "total", total, "page", p.Page, "size", p.Size)
	return query.NewPage(FromDataModelSlice(rows), p, total), nil
}

// SearchByName is SearchEmployees with only the name filter.
func (s *Service) SearchByName(ctx context.Context, name *string, p query.Pageable) (query.Page[*Employee], error) {
	return s.SearchEmployees(ctx, SearchFilter{Name: name}, p)
}

func (s *Service) FindSummariesByDepartment(ctx context.Context, departmentName *string, p query.Pageable) (query.Page[*Summary], error) {
	rows, total, err := s.repo.FindSummaries(ctx, departmentName, p)
	if err != nil {
		return query.Page[*Summary]{}, s.queryError(err, "failed to find employee summaries")
	}
	return query.MapPage(query.NewPage(rows, p, total), SummaryFromDataModel), nil
}

// FindEmployeeDetails returns one page of the employee/department/company
// report and the total row count under the same filters.
func (s *Service) FindEmployeeDetails(ctx context.Context, filter DetailsFilter, p query.Pageable) (query.Page[*EmployeeDetails], error) {
	rows, total, err := s.repo.FindDetails(ctx, filter, p)
	if err != nil {
		return query.Page[*EmployeeDetails]{}, s.queryError(err, "failed to find employee details")
	}
	return query.MapPage(query.NewPage(rows, p, total), DetailsFromDataModel), nil
}

func (s *Service) ensureDepartment(ctx context.Context, departmentID *int64) error {
	if departmentID == nil {
		return nil
	}
	exists, err := s.repo.DepartmentExists(ctx, *departmentID)
	if err != nil {
		s.logger.Error("failed to check department", "error", err, "department_id", *departmentID)
		return internal.NewRetrievalError("failed to check department", err)
	}
	if !exists {
		return internal.ErrDepartmentNotFound
	}
	return nil
}

func (s *Service) notFoundOr(err error, message string, args ...any) error {
	if errors.Is(err, ErrEmployeeNotFound) {
		return internal.ErrEmployeeNotFound
	}
	s.logger.Error(message, append([]any{"error", err}, args...)...)
	return internal.NewRetrievalError(message, err)
}

func (s *Service) queryError(err error, message string) *internal.AppError {
	appErr := internal.TranslateQueryError(message, err)
	if appErr.Code == internal.ErrCodeRetrievalFailed {
		s.logger.Error(message, "error", err)
	}
	return appErr
}
