package department

import (
	"context"
	"net/http"

	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/transport"
)

type ServiceAPI interface {
	CreateDepartment(ctx context.Context, dto CreateDepartmentDTO) (*Department, error)
	GetDepartment(ctx context.Context, id int64) (*Department, error)
	ListDepartments(ctx context.Context, p query.Pageable) (query.Page[*Department], error)
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

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto CreateDepartmentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	department, err := h.Service.CreateDepartment(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, department)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	department, err := h.Service.GetDepartment(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, department)
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	page, err := h.Service.ListDepartments(r.Context(), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}
