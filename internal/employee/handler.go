package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/transport"
)

type ServiceAPI interface {
	CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeWithDepartment(ctx context.Context, id int64) (*EmployeeWithDepartment, error)
	GetEmployeeSummary(ctx context.Context, id int64) (*Summary, error)
	ListEmployees(ctx context.Context, p query.Pageable) (query.Page[*Employee], error)
	ListEmployeesWithDepartment(ctx context.Context, p query.Pageable) (query.Page[*EmployeeWithDepartment], error)
	UpdateEmployee(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByDepartment(ctx context.Context, departmentName string) ([]*Employee, error)
	FindByDepartmentIgnoreCase(ctx context.Context, departmentName string) ([]*Employee, error)
	SearchEmployees(ctx context.Context, filter SearchFilter, p query.Pageable) (query.Page[*Employee], error)
	SearchByName(ctx context.Context, name *string, p query.Pageable) (query.Page[*Employee], error)
	FindSummariesByDepartment(ctx context.Context, departmentName *string, p query.Pageable) (query.Page[*Summary], error)
	FindEmployeeDetails(ctx context.Context, filter DetailsFilter, p query.Pageable) (query.Page[*EmployeeDetails], error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	employee, err := h.Service.CreateEmployee(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	employee, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) GetEmployeeWithDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	employee, err := h.Service.GetEmployeeWithDepartment(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.Service.GetEmployeeSummary(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	page, err := h.Service.ListEmployees(r.Context(), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

// ListEmployeesWithDepartment serves GET /employees/paged-summary.
func (h *Handler) ListEmployeesWithDepartment(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	page, err := h.Service.ListEmployeesWithDepartment(r.Context(), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateEmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	employee, err := h.Service.UpdateEmployee(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FindByEmail(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Service.FindByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) FindByDepartment(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.FindByDepartment(r.Context(), r.URL.Query().Get("department_name"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) FindByDepartmentIgnoreCase(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.FindByDepartmentIgnoreCase(r.Context(), r.URL.Query().Get("department_name"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

// SearchEmployees serves GET /employees/search?name=&department=&min_salary=&location=
func (h *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	minSalary, appErr := transport.OptionalFloat(r, "min_salary")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	filter := SearchFilter{
		Name:       transport.OptionalString(r, "name"),
		Department: transport.OptionalString(r, "department"),
		MinSalary:  minSalary,
		Location:   transport.OptionalString(r, "location"),
	}

	page, err := h.Service.SearchEmployees(r.Context(), filter, p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	page, err := h.Service.SearchByName(r.Context(), transport.OptionalString(r, "name"), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

// FindSummariesByDepartment serves GET /employees/summaries/by-department/{page}.
// The page size is fixed at the default.
func (h *Handler) FindSummariesByDepartment(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	p = query.NewPageable(p.Page, query.DefaultPageSize, p.Sort...)

	page, err := h.Service.FindSummariesByDepartment(r.Context(), transport.OptionalString(r, "department_name"), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

// FindEmployeeDetails serves GET /employees/details?employee_name=&company_name=
func (h *Handler) FindEmployeeDetails(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	filter := DetailsFilter{
		EmployeeName: transport.OptionalString(r, "employee_name"),
		CompanyName:  transport.OptionalString(r, "company_name"),
	}

	page, err := h.Service.FindEmployeeDetails(r.Context(), filter, p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}
