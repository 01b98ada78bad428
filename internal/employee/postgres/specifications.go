package postgres

import (
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/employee"
	"gorm.io/gorm/clause"
)

const (
	employeesTable   = "employees"
	departmentsTable = "departments"
	companiesTable   = "companies"
)

var (
	departmentJoin = query.Join{
		Name:  "department",
		Table: departmentsTable,
		On:    "departments.id = employees.department_id",
	}
	companyJoin = query.Join{
		Name:  "company",
		Table: companiesTable,
		On:    "companies.id = departments.company_id",
	}
)

// HasName matches employees whose name contains name, ignoring case.
func HasName(name *string) query.Predicate {
	if name == nil || *name == "" {
		return nil
	}
	s := *name
	return func(b *query.Builder) clause.Expression {
		return query.ContainsFold(query.Col(employeesTable, "name"), s)
	}
}

// InDepartment matches employees whose department is named exactly name.
func InDepartment(name *string) query.Predicate {
	if name == nil || *name == "" {
		return nil
	}
	s := *name
	return func(b *query.Builder) clause.Expression {
		b.Join(departmentJoin)
		return query.Equals(query.Col(departmentsTable, "name"), s)
	}
}

// InDepartmentFold is InDepartment ignoring case.
func InDepartmentFold(name *string) query.Predicate {
	if name == nil || *name == "" {
		return nil
	}
	s := *name
	return func(b *query.Builder) clause.Expression {
		b.Join(departmentJoin)
		return query.EqualsFold(query.Col(departmentsTable, "name"), s)
	}
}

// HasSalaryAtLeast matches employees earning min or more.
func HasSalaryAtLeast(min *float64) query.Predicate {
	if min == nil {
		return nil
	}
	v := *min
	return func(b *query.Builder) clause.Expression {
		return query.AtLeast(query.Col(employeesTable, "salary"), v)
	}
}

// AtLocation matches employees whose department sits at location.
func AtLocation(location *string) query.Predicate {
	if location == nil || *location == "" {
		return nil
	}
	s := *location
	return func(b *query.Builder) clause.Expression {
		b.Join(departmentJoin)
		return query.Equals(query.Col(departmentsTable, "location"), s)
	}
}

// HasEmail matches the exact email address.
func HasEmail(email string) query.Predicate {
	return func(b *query.Builder) clause.Expression {
		return query.Equals(query.Col(employeesTable, "email"), email)
	}
}

// CompanyNameContains matches rows whose company name contains name,
// ignoring case. It needs the department and company joins.
func CompanyNameContains(name *string) query.Predicate {
	if name == nil || *name == "" {
		return nil
	}
	s := *name
	return func(b *query.Builder) clause.Expression {
		b.Join(departmentJoin)
		b.Join(companyJoin)
		return query.ContainsFold(query.Col(companiesTable, "name"), s)
	}
}

// SearchSpec is the conjunction of every present field of f.
func SearchSpec(f employee.SearchFilter) query.Spec {
	return query.Where(
		HasName(f.Name),
		InDepartment(f.Department),
		HasSalaryAtLeast(f.MinSalary),
		AtLocation(f.Location),
	)
}

// DetailsSpec builds the predicates of the details report. The department
// and company joins are always present: employees without a department, or
// whose department has no company, never appear. The row query and the count
// query both take their WHERE clause from here.
func DetailsSpec(f employee.DetailsFilter) query.Spec {
	return query.Where(
		HasName(f.EmployeeName),
		CompanyNameContains(f.CompanyName),
	).Require(departmentJoin, companyJoin)
}
