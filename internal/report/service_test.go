package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/company-directory/internal"
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/company-directory/internal/core/dbtest"
	"github.com/frahmantamala/company-directory/internal/report"
	"github.com/frahmantamala/company-directory/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

type MockRepository struct {
	stats  []*employeeDatamodel.DepartmentSalaryStats
	counts []*employeeDatamodel.DepartmentCount
	err    error
}

func (m *MockRepository) SalaryStatsByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentSalaryStats, error) {
	return m.stats, m.err
}

func (m *MockRepository) EmployeeCountByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentCount, error) {
	return m.counts, m.err
}

var _ = Describe("Report Service", func() {
	var (
		mockRepo *MockRepository
		handler  *report.Handler
	)

	BeforeEach(func() {
		mockRepo = &MockRepository{
			stats: []*employeeDatamodel.DepartmentSalaryStats{
				{DepartmentName: "IT", EmployeeCount: 2, AverageSalary: 85000},
			},
			counts: []*employeeDatamodel.DepartmentCount{
				{DepartmentName: "IT", EmployeeCount: 2},
			},
		}
		service := report.NewService(mockRepo, dbtest.Logger())
		handler = report.NewHandler(transport.NewBaseHandler(dbtest.Logger()), service)
	})

	It("renders salary stats as JSON", func() {
		w := httptest.NewRecorder()
		handler.GetDepartmentSalaryStats(w, httptest.NewRequest(http.MethodGet, "/employees/stats/salary-by-department", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var stats []report.DepartmentSalaryStats
		Expect(json.NewDecoder(w.Body).Decode(&stats)).To(Succeed())
		Expect(stats).To(Equal([]report.DepartmentSalaryStats{
			{DepartmentName: "IT", EmployeeCount: 2, AverageSalary: 85000},
		}))
	})

	It("renders an empty list rather than null", func() {
		mockRepo.counts = []*employeeDatamodel.DepartmentCount{}
		w := httptest.NewRecorder()
		handler.GetEmployeeCountByDepartment(w, httptest.NewRequest(http.MethodGet, "/employees/stats/employee-count-by-department", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("reports store failures as RETRIEVAL_FAILED", func() {
		mockRepo.err = errors.New("connection refused")
		w := httptest.NewRecorder()
		handler.GetEmployeeCountByDepartment(w, httptest.NewRequest(http.MethodGet, "/employees/stats/employee-count-by-department", nil))
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring(string(internal.ErrCodeRetrievalFailed)))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
	})
})
