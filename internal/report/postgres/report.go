package postgres

import (
	"context"

	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/company-directory/internal/report"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const employeeCountByDepartmentSQL = `
SELECT d.name AS department_name, COUNT(e.id) AS employee_count
FROM employees e
JOIN departments d ON d.id = e.department_id
GROUP BY d.name
ORDER BY d.name`

// ReportRepository computes the grouped reports. Salary stats go through a
// GORM projection; the per-department count is a plain grouped query run
// with sqlx on the same connection pool.
type ReportRepository struct {
	db   *gorm.DB
	sqlx *sqlx.DB
}

func NewReportRepository(db *gorm.DB, sqlxDB *sqlx.DB) report.RepositoryAPI {
	return &ReportRepository{db: db, sqlx: sqlxDB}
}

func (r *ReportRepository) SalaryStatsByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentSalaryStats, error) {
	rows := make([]*employeeDatamodel.DepartmentSalaryStats, 0)
	err := r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Select("departments.name AS department_name, " +
			"COUNT(employees.id) AS employee_count, " +
			"AVG(employees.salary) AS average_salary").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Group("departments.name").
		Order("departments.name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) EmployeeCountByDepartment(ctx context.Context) ([]*employeeDatamodel.DepartmentCount, error) {
	rows := make([]*employeeDatamodel.DepartmentCount, 0)
	if err := r.sqlx.SelectContext(ctx, &rows, employeeCountByDepartmentSQL); err != nil {
		return nil, err
	}
	return rows, nil
}
