package postgres

import (
	"context"
	"errors"

	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/employee"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	idColumn = query.Col(employeesTable, "id")

	// employeeFields are the sortable attributes of the employee row.
	employeeFields = query.Fields(map[string]clause.Column{
		"id":           idColumn,
		"name":         query.Col(employeesTable, "name"),
		"email":        query.Col(employeesTable, "email"),
		"salary":       query.Col(employeesTable, "salary"),
		"departmentId": query.Col(employeesTable, "department_id"),
		"createdAt":    query.Col(employeesTable, "created_at"),
		"updatedAt":    query.Col(employeesTable, "updated_at"),
	})

	summaryFields = query.Fields(map[string]clause.Column{
		"id":    idColumn,
		"name":  query.Col(employeesTable, "name"),
		"email": query.Col(employeesTable, "email"),
	})
)

// EmployeeRepository implements employee.RepositoryAPI using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) model(ctx context.Context) func() *gorm.DB {
	return func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&employeeDatamodel.Employee{})
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDatamodel.Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetWithDepartment loads the employee and, through a left join, its
// department. Department stays nil for employees without one.
func (r *EmployeeRepository) GetWithDepartment(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Joins("Department").
		Where("employees.id = ?", id).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetSummary(ctx context.Context, id int64) (*employeeDatamodel.Summary, error) {
	var s employeeDatamodel.Summary
	err := r.model(ctx)().
		Select("employees.id", "employees.name", "employees.email").
		Where("employees.id = ?", id).
		Take(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *EmployeeRepository) List(ctx context.Context, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.AscBy("id")), employeeFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate[*employeeDatamodel.Employee](r.model(ctx), query.Where(), p, by, nil)
}

// ListWithDepartment pages through all employees with their department
// loaded by a left join. The join cannot change the row count, so the count
// phase runs without it.
func (r *EmployeeRepository) ListWithDepartment(ctx context.Context, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.AscBy("id")), employeeFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}
	withDepartment := func(db *gorm.DB) *gorm.DB {
		return db.Joins("Department")
	}
	return query.Paginate[*employeeDatamodel.Employee](r.model(ctx), query.Where(), p, by, withDepartment)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employeeDatamodel.Employee) error {
	result := r.db.WithContext(ctx).
		Model(e).
		Omit(clause.Associations).
		Select("name", "email", "salary", "department_id", "updated_at").
		Updates(e)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&employeeDatamodel.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&departmentDatamodel.Department{}).Where("id = ?", departmentID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByEmail returns the lowest-id employee with the given address.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := query.Where(HasEmail(email)).Apply(r.model(ctx)()).
		Order(clause.OrderByColumn{Column: idColumn}).
		Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByDepartmentName lists employees of the named department, by id.
func (r *EmployeeRepository) FindByDepartmentName(ctx context.Context, name string, ignoreCase bool) ([]*employeeDatamodel.Employee, error) {
	pred := InDepartment(&name)
	if ignoreCase {
		pred = InDepartmentFold(&name)
	}

	rows := make([]*employeeDatamodel.Employee, 0)
	err := query.Where(pred).Apply(r.model(ctx)()).
		Order(clause.OrderByColumn{Column: idColumn}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Search pages through employees matching every present field of f. The
// default order is id descending.
func (r *EmployeeRepository) Search(ctx context.Context, f employee.SearchFilter, p query.Pageable) ([]*employeeDatamodel.Employee, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.DescBy("id")), employeeFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate[*employeeDatamodel.Employee](r.model(ctx), SearchSpec(f), p, by, nil)
}

// FindSummaries pages through {id, name, email} projections, optionally
// restricted to one department by exact name.
func (r *EmployeeRepository) FindSummaries(ctx context.Context, departmentName *string, p query.Pageable) ([]*employeeDatamodel.Summary, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.AscBy("id")), summaryFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}
	summary := func(db *gorm.DB) *gorm.DB {
		return db.Select("employees.id", "employees.name", "employees.email")
	}
	return query.Paginate[*employeeDatamodel.Summary](r.model(ctx), query.Where(InDepartment(departmentName)), p, by, summary)
}
