package postgres_test

import (
	"context"
	"errors"
	"testing"

	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/company-directory/internal/core/dbtest"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/department"
	departmentPostgres "github.com/frahmantamala/company-directory/internal/department/postgres"
	"github.com/frahmantamala/company-directory/internal/seed"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDepartmentPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Postgres Suite")
}

var _ = Describe("Department Repository", func() {
	var (
		ctx  context.Context
		repo department.RepositoryAPI
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, err := dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		Expect(seed.NewSeeder(db, dbtest.Logger()).Run(ctx)).To(Succeed())
		repo = departmentPostgres.NewDepartmentRepository(db)
	})

	It("lists departments by id with a total", func() {
		rows, total, err := repo.List(ctx, query.NewPageable(0, 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(int64(3)))
		Expect(rows).To(HaveLen(2))
		Expect(rows[0].Name).To(Equal("HR"))
		Expect(rows[1].Name).To(Equal("IT"))
	})

	It("sorts by location descending", func() {
		rows, _, err := repo.List(ctx, query.NewPageable(0, 10, query.DescBy("location")))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Location).To(Equal("Building C"))
	})

	It("rejects unknown sort fields", func() {
		_, _, err := repo.List(ctx, query.NewPageable(0, 10, query.AscBy("budget")))
		Expect(errors.Is(err, query.ErrInvalidSortField)).To(BeTrue())
	})

	It("creates and reads back a department", func() {
		d := &departmentDatamodel.Department{Name: "Legal", Location: "Building D"}
		Expect(repo.Create(ctx, d)).To(Succeed())

		got, err := repo.GetByID(ctx, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal("Legal"))
		Expect(got.CompanyID).To(BeNil())
	})

	It("returns ErrDepartmentNotFound for unknown ids", func() {
		_, err := repo.GetByID(ctx, 404)
		Expect(errors.Is(err, department.ErrDepartmentNotFound)).To(BeTrue())
	})

	It("checks company existence", func() {
		ok, err := repo.CompanyExists(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		ok, err = repo.CompanyExists(ctx, 99)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})
