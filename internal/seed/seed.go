package seed

import (
	"context"
	"fmt"
	"log/slog"

	companyDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/company"
	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type companySeed struct {
	Name       string
	Properties map[string]interface{}
}

type departmentSeed struct {
	Name     string
	Location string
	Company  string
}

type employeeSeed struct {
	Name       string
	Email      string
	Salary     float64
	Department string
}

var (
	companies = []companySeed{
		{Name: "TechCorp", Properties: map[string]interface{}{"industry": "Technology", "employees": 500}},
		{Name: "HealthInc", Properties: map[string]interface{}{"industry": "Healthcare", "employees": 1200}},
		{Name: "Shopify", Properties: map[string]interface{}{"industry": "Technology", "employees": 10000}},
	}

	departments = []departmentSeed{
		{Name: "HR", Location: "Building A", Company: "TechCorp"},
		{Name: "IT", Location: "Building B", Company: "TechCorp"},
		{Name: "Sales", Location: "Building C", Company: "HealthInc"},
	}

	employees = []employeeSeed{
		{Name: "Alice", Email: "alice@example.com", Salary: 60000, Department: "HR"},
		{Name: "Bob", Email: "bob@example.com", Salary: 80000, Department: "IT"},
		{Name: "Charlie", Email: "charlie@example.com", Salary: 90000, Department: "IT"},
		{Name: "David", Email: "david@example.com", Salary: 75000, Department: "Sales"},
	}
)

// Seeder loads the sample directory. Rows are matched by company name,
// department name and employee email, so running it twice is a no-op.
type Seeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewSeeder(db *gorm.DB, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run inserts any missing sample rows in one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		companyIDs := make(map[string]int64, len(companies))
		for _, c := range companies {
			row := companyDatamodel.Company{Name: c.Name, Properties: c.Properties}
			if err := tx.Where(companyDatamodel.Company{Name: c.Name}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed company %s: %w", c.Name, err)
			}
			companyIDs[c.Name] = row.ID
			s.logger.Info("seeded company", "name", c.Name, "id", row.ID)
		}

		departmentIDs := make(map[string]int64, len(departments))
		for _, d := range departments {
			companyID := companyIDs[d.Company]
			row := departmentDatamodel.Department{Name: d.Name, Location: d.Location, CompanyID: &companyID}
			if err := tx.Where(departmentDatamodel.Department{Name: d.Name}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed department %s: %w", d.Name, err)
			}
			departmentIDs[d.Name] = row.ID
			s.logger.Info("seeded department", "name", d.Name, "id", row.ID)
		}

		for _, e := range employees {
			departmentID := departmentIDs[e.Department]
			row := employeeDatamodel.Employee{Name: e.Name, Email: e.Email, Salary: e.Salary, DepartmentID: &departmentID}
			if err := tx.Omit(clause.Associations).Where(employeeDatamodel.Employee{Email: e.Email}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed employee %s: %w", e.Email, err)
			}
			s.logger.Info("seeded employee", "email", e.Email, "id", row.ID)
		}

		return nil
	})
}

// Clear deletes every employee, department and company, children first.
func (s *Seeder) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&employeeDatamodel.Employee{},
			&departmentDatamodel.Department{},
			&companyDatamodel.Company{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear: %w", err)
			}
		}
		s.logger.Info("cleared directory data")
		return nil
	})
}
