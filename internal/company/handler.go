package company

import (
	"context"
	"net/http"

	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/transport"
)

type ServiceAPI interface {
	CreateCompany(ctx context.Context, dto CreateCompanyDTO) (*Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	FindByIndustry(ctx context.Context, industry string, p query.Pageable) (query.Page[*Company], error)
	FindByAttribute(ctx context.Context, key, value string, p query.Pageable) (query.Page[*Company], error)
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

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var dto CreateCompanyDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	company, err := h.Service.CreateCompany(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, company)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(w, r, "id")
	if !ok {
		return
	}

	company, err := h.Service.GetCompany(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, company)
}

// FindByIndustry serves GET /companies/search/industry/{page}?industry=...
func (h *Handler) FindByIndustry(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	page, err := h.Service.FindByIndustry(r.Context(), r.URL.Query().Get("industry"), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

// FindByAttribute serves GET /companies/search/attribute?key=...&value=...
func (h *Handler) FindByAttribute(w http.ResponseWriter, r *http.Request) {
	p, appErr := h.ParsePageable(r)
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	q := r.URL.Query()
	page, err := h.Service.FindByAttribute(r.Context(), q.Get("key"), q.Get("value"), p)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}
