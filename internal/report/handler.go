package report

import (
	"context"
	"net/http"

	"github.com/frahmantamala/company-directory/internal/transport"
)

type ServiceAPI interface {
	GetDepartmentSalaryStats(ctx context.Context) ([]*DepartmentSalaryStats, error)
	GetEmployeeCountByDepartment(ctx context.Context) ([]*DepartmentCount, error)
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

func (h *Handler) GetDepartmentSalaryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetDepartmentSalaryStats(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetEmployeeCountByDepartment(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.GetEmployeeCountByDepartment(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, counts)
}
