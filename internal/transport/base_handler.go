package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/company-directory/internal"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/pkg/logger"
	"github.com/go-chi/chi"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger

	// DefaultPageSize and MaxPageSize override the query package limits
	// when set.
	DefaultPageSize int
	MaxPageSize     int
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WithPageSizes sets the page size limits used by ParsePageable.
func (h *BaseHandler) WithPageSizes(def, max int) *BaseHandler {
	h.DefaultPageSize = def
	h.MaxPageSize = max
	return h
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// WriteAppError renders an AppError envelope with its status code.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, appErr *internal.AppError) {
	status, body := appErr.ToHTTPResponse()
	if status >= http.StatusInternalServerError {
		h.Logger.Error("http error", "status", status, "code", appErr.Code, "error", appErr)
	} else {
		h.Logger.Debug("http error", "status", status, "code", appErr.Code, "message", appErr.GetDetailedMessage())
	}
	h.WriteJSON(w, status, body)
}

// HandleServiceError maps a service error to a response. Errors that are
// not AppErrors become an opaque 500.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteAppError(w, appErr)
		return
	}
	h.WriteAppError(w, internal.NewInternalError("internal server error", err))
}

// DecodeJSON decodes the request body into dst, writing a 400 on failure.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.WriteAppError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed).WithCause(err))
		return false
	}
	return true
}

// ParseID reads a positive integer path parameter.
func (h *BaseHandler) ParseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.WriteAppError(w, internal.NewValidationFieldError(name, "invalid "+name+": "+raw, internal.ErrCodeValidationFailed))
		return 0, false
	}
	return id, true
}

// ParsePageable reads page, size and repeated sort query parameters. A page
// path parameter, when routed, takes precedence over the query parameter.
func (h *BaseHandler) ParsePageable(r *http.Request) (query.Pageable, *internal.AppError) {
	q := r.URL.Query()

	page := 0
	rawPage := chi.URLParam(r, "page")
	if rawPage == "" {
		rawPage = q.Get("page")
	}
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 0 {
			return query.Pageable{}, paginationError("page", "page must be a non-negative integer")
		}
		page = n
	}

	size := h.DefaultPageSize
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return query.Pageable{}, paginationError("size", "size must be a positive integer")
		}
		size = n
	}
	if h.MaxPageSize > 0 && size > h.MaxPageSize {
		size = h.MaxPageSize
	}

	orders, err := query.ParseSort(q["sort"])
	if err != nil {
		return query.Pageable{}, internal.TranslateQueryError("invalid sort", err)
	}

	return query.NewPageable(page, size, orders...), nil
}

func paginationError(field, message string) *internal.AppError {
	return internal.NewValidationError(message, internal.ErrCodeInvalidPagination).
		WithDetails(internal.ValidationErrors{Errors: []internal.ValidationError{
			{Field: field, Message: message, Code: string(internal.ErrCodeInvalidPagination)},
		}})
}

// OptionalString returns a pointer to the query parameter, or nil when it is
// absent or empty.
func OptionalString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// OptionalFloat parses an optional numeric query parameter.
func OptionalFloat(r *http.Request, name string) (*float64, *internal.AppError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, internal.NewValidationFieldError(name, name+" must be a number", internal.ErrCodeValidationFailed)
	}
	return &f, nil
}
