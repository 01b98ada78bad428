package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/company-directory/internal/core/dbtest"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/company-directory/internal/employee/postgres"
	"github.com/frahmantamala/company-directory/internal/seed"
	"github.com/frahmantamala/company-directory/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Employee Handler Integration", func() {
	var router *chi.Mux

	BeforeEach(func() {
		db, err := dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		Expect(seed.NewSeeder(db, dbtest.Logger()).Run(context.Background())).To(Succeed())

		service := employee.NewService(employeePostgres.NewEmployeeRepository(db), dbtest.Logger())
		handler := employee.NewHandler(transport.NewBaseHandler(dbtest.Logger()), service)

		router = chi.NewRouter()
		router.Route("/employees", func(r chi.Router) {
			r.Post("/", handler.CreateEmployee)
			r.Get("/", handler.ListEmployees)
			r.Get("/search", handler.SearchEmployees)
			r.Get("/search/dynamic-query", handler.SearchByName)
			r.Get("/search/email", handler.FindByEmail)
			r.Get("/search/department", handler.FindByDepartment)
			r.Get("/search/department-ignore-case", handler.FindByDepartmentIgnoreCase)
			r.Get("/paged-summary", handler.ListEmployeesWithDepartment)
			r.Get("/summaries/by-department/{page}", handler.FindSummariesByDepartment)
			r.Get("/details", handler.FindEmployeeDetails)
			r.Get("/{id}", handler.GetEmployee)
			r.Get("/{id}/with-department", handler.GetEmployeeWithDepartment)
			r.Get("/{id}/summary", handler.GetEmployeeSummary)
			r.Put("/{id}", handler.UpdateEmployee)
			r.Delete("/{id}", handler.DeleteEmployee)
		})
	})

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should search with every filter combined", func() {
		w := serve(http.MethodGet, "/employees/search?name=ar&department=IT&min_salary=85000&location=Building%20B", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[employee.Employee]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.TotalElements).To(Equal(int64(1)))
		Expect(page.Content).To(HaveLen(1))
		Expect(page.Content[0].Name).To(Equal("Charlie"))
	})

	It("should page search results with sort parameters", func() {
		w := serve(http.MethodGet, "/employees/search?size=2&page=1&sort=salary,desc", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[employee.Employee]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.TotalElements).To(Equal(int64(4)))
		Expect(page.TotalPages).To(Equal(2))
		Expect(page.Page).To(Equal(1))
		Expect(page.Content[0].Name).To(Equal("David"))
		Expect(page.Content[1].Name).To(Equal("Alice"))
	})

	It("should reject malformed numbers", func() {
		w := serve(http.MethodGet, "/employees/search?min_salary=lots", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		w = serve(http.MethodGet, "/employees/search?size=-1", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_PAGINATION"))

		w = serve(http.MethodGet, "/employees/search?sort=name,sideways", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_PAGINATION"))
	})

	It("should report a negative salary floor with its own code", func() {
		w := serve(http.MethodGet, "/employees/search?min_salary=-1", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_SALARY"))
	})

	It("should serve the details report sorted by department", func() {
		w := serve(http.MethodGet, "/employees/details?company_name=corp&sort=departmentName,asc", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[employee.EmployeeDetails]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.TotalElements).To(Equal(int64(3)))
		Expect(page.Content[0].DepartmentName).To(Equal("HR"))
		Expect(page.Content[0].CompanyName).To(Equal("TechCorp"))
		Expect(page.Content[2].DepartmentName).To(Equal("IT"))
	})

	It("should reject unknown details sort fields", func() {
		w := serve(http.MethodGet, "/employees/details?sort=bonus", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_SORT_FIELD"))
	})

	It("should serve summaries by department with a path page", func() {
		w := serve(http.MethodGet, "/employees/summaries/by-department/0?department_name=IT", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[employee.Summary]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.Size).To(Equal(query.DefaultPageSize))
		Expect(page.Content).To(HaveLen(2))
		Expect(page.Content[0].Email).To(Equal("bob@example.com"))
	})

	It("should include the department name in the paged summary", func() {
		w := serve(http.MethodGet, "/employees/paged-summary?size=1", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[employee.EmployeeWithDepartment]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.TotalElements).To(Equal(int64(4)))
		Expect(*page.Content[0].DepartmentName).To(Equal("HR"))
	})

	It("should run the create, update, delete cycle", func() {
		w := serve(http.MethodPost, "/employees", `{"name":"Eve","email":"eve@example.com","salary":50000}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var created employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

		w = serve(http.MethodGet, "/employees/5/with-department", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"department_name":null`))

		w = serve(http.MethodPut, "/employees/5", `{"department_id":3}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		w = serve(http.MethodPut, "/employees/5", `{"department_id":42}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("DEPARTMENT_NOT_FOUND"))

		w = serve(http.MethodGet, "/employees/search/department?department_name=Sales", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		var sales []employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&sales)).To(Succeed())
		Expect(sales).To(HaveLen(2))

		w = serve(http.MethodDelete, "/employees/5", "")
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = serve(http.MethodGet, "/employees/5", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("EMPLOYEE_NOT_FOUND"))
	})

	It("should find by email and report misses", func() {
		w := serve(http.MethodGet, "/employees/search/email?email=bob@example.com", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		w = serve(http.MethodGet, "/employees/search/email?email=zed@example.com", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should reject a non-numeric id", func() {
		w := serve(http.MethodGet, "/employees/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
