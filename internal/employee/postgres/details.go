package postgres

import (
	"context"

	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/employee"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// detailsFields resolves the report's own sort keys. Anything else is looked
// up as an attribute of the employee row.
var detailsFields = query.FirstOf(
	query.Fields(map[string]clause.Column{
		"employeeName":   query.Col(employeesTable, "name"),
		"departmentName": query.Col(departmentsTable, "name"),
		"companyName":    query.Col(companiesTable, "name"),
	}),
	employeeFields,
)

func detailsProjection(db *gorm.DB) *gorm.DB {
	return db.Select(
		"employees.id AS employee_id, " +
			"employees.name AS employee_name, " +
			"employees.email AS employee_email, " +
			"departments.name AS department_name, " +
			"companies.name AS company_name",
	)
}

// FindDetails pages through the employee/department/company report. Only
// employees whose department belongs to a company are included.
func (r *EmployeeRepository) FindDetails(ctx context.Context, f employee.DetailsFilter, p query.Pageable) ([]*employeeDatamodel.Details, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.DescBy("id")), detailsFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate[*employeeDatamodel.Details](r.model(ctx), DetailsSpec(f), p, by, detailsProjection)
}
