package rest

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/company-directory/internal/company"
	"github.com/frahmantamala/company-directory/internal/department"
	"github.com/frahmantamala/company-directory/internal/employee"
	"github.com/frahmantamala/company-directory/internal/report"
	"github.com/frahmantamala/company-directory/internal/transport"
	"github.com/frahmantamala/company-directory/internal/transport/middleware"
	"github.com/frahmantamala/company-directory/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups the domain handlers mounted under /api/v1. Nil handlers
// are skipped.
type Handlers struct {
	Company    *company.Handler
	Department *department.Handler
	Employee   *employee.Handler
	Report     *report.Handler
}

// Options carries the server settings the routes need.
type Options struct {
	OpenAPIPath    string
	AllowedOrigins string
	QueryTimeout   time.Duration
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, baseHandler *transport.BaseHandler, handlers Handlers, opts Options) {
	healthHandler := NewHealthHandler(baseHandler, db)

	// Apply global middleware
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	if opts.AllowedOrigins != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: splitOrigins(opts.AllowedOrigins),
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", swagger.SpecHandler(opts.OpenAPIPath))
	router.Handle("/swagger/*", swagger.Handler("/openapi.yml"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.QueryTimeout(opts.QueryTimeout))

		r.Get("/health", healthHandler.Health)
		r.Get("/ping", healthHandler.Ping)

		if h := handlers.Company; h != nil {
			r.Route("/companies", func(cr chi.Router) {
				cr.Post("/", h.CreateCompany)
				cr.Get("/search/industry/{page}", h.FindByIndustry)
				cr.Get("/search/attribute", h.FindByAttribute)
				cr.Get("/{id}", h.GetCompany)
			})
		}

		if h := handlers.Department; h != nil {
			r.Route("/departments", func(dr chi.Router) {
				dr.Post("/", h.CreateDepartment)
				dr.Get("/", h.ListDepartments)
				dr.Get("/{id}", h.GetDepartment)
			})
		}

		r.Route("/employees", func(er chi.Router) {
			if h := handlers.Report; h != nil {
				er.Get("/stats/salary-by-department", h.GetDepartmentSalaryStats)
				er.Get("/stats/employee-count-by-department", h.GetEmployeeCountByDepartment)
			}

			h := handlers.Employee
			if h == nil {
				return
			}
			er.Post("/", h.CreateEmployee)
			er.Get("/", h.ListEmployees)

			er.Get("/search", h.SearchEmployees)
			er.Get("/search/dynamic-query", h.SearchByName)
			er.Get("/search/email", h.FindByEmail)
			er.Get("/search/department", h.FindByDepartment)
			er.Get("/search/department-ignore-case", h.FindByDepartmentIgnoreCase)
			er.Get("/paged-summary", h.ListEmployeesWithDepartment)
			er.Get("/summaries/by-department/{page}", h.FindSummariesByDepartment)
			er.Get("/details", h.FindEmployeeDetails)

			er.Get("/{id}", h.GetEmployee)
			er.Put("/{id}", h.UpdateEmployee)
			er.Delete("/{id}", h.DeleteEmployee)
			er.Get("/{id}/with-department", h.GetEmployeeWithDepartment)
			er.Get("/{id}/summary", h.GetEmployeeSummary)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		baseHandler.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "route not found"})
	})
}

// splitOrigins turns the comma separated config value into the list cors expects.
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
