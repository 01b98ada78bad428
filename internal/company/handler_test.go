package company_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/frahmantamala/company-directory/internal/company"
	companyPostgres "github.com/frahmantamala/company-directory/internal/company/postgres"
	"github.com/frahmantamala/company-directory/internal/core/dbtest"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/seed"
	"github.com/frahmantamala/company-directory/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Company Handler Integration", func() {
	var router *chi.Mux

	BeforeEach(func() {
		db, err := dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		Expect(seed.NewSeeder(db, dbtest.Logger()).Run(context.Background())).To(Succeed())

		service := company.NewService(companyPostgres.NewCompanyRepository(db), dbtest.Logger())
		handler := company.NewHandler(&transport.BaseHandler{Logger: dbtest.Logger()}, service)

		router = chi.NewRouter()
		router.Post("/companies", handler.CreateCompany)
		router.Get("/companies/{id}", handler.GetCompany)
		router.Get("/companies/search/industry/{page}", handler.FindByIndustry)
		router.Get("/companies/search/attribute", handler.FindByAttribute)
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should handle GET /companies/search/industry/0 request successfully", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/companies/search/industry/0?industry=Technology", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var page query.Page[company.Company]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.TotalElements).To(Equal(int64(2)))
		Expect(page.Size).To(Equal(query.DefaultPageSize))
		Expect(page.Content).To(HaveLen(2))
		Expect(page.Content[0].Name).To(Equal("Shopify"))
		Expect(page.Content[1].Name).To(Equal("TechCorp"))
	})

	It("should return an empty page past the end", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/companies/search/industry/4?industry=Healthcare", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var page query.Page[company.Company]
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		Expect(page.Content).To(BeEmpty())
		Expect(page.TotalElements).To(Equal(int64(1)))
	})

	It("should reject a malformed page index", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/companies/search/industry/first?industry=Technology", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_PAGINATION"))
	})

	It("should reject an unknown sort field", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/companies/search/attribute?key=industry&value=Technology&sort=revenue,desc", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_SORT_FIELD"))
	})

	It("should create and fetch a company", func() {
		body := strings.NewReader(`{"name":"Acme","properties":{"industry":"Retail"}}`)
		w := serve(httptest.NewRequest(http.MethodPost, "/companies", body))
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created company.Company
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))

		w = serve(httptest.NewRequest(http.MethodGet, "/companies/"+strconv.FormatInt(created.ID, 10), nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var fetched company.Company
		Expect(json.NewDecoder(w.Body).Decode(&fetched)).To(Succeed())
		Expect(fetched.Industry()).To(Equal("Retail"))
	})

	It("should return 404 with COMPANY_NOT_FOUND for unknown ids", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/companies/9999", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("COMPANY_NOT_FOUND"))
	})
})
