package postgres

import (
	"context"
	"errors"

	companyDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/company"
	departmentDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"github.com/frahmantamala/company-directory/internal/department"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const table = "departments"

var (
	idColumn = query.Col(table, "id")

	sortFields = query.Fields(map[string]clause.Column{
		"id":        idColumn,
		"name":      query.Col(table, "name"),
		"location":  query.Col(table, "location"),
		"companyId": query.Col(table, "company_id"),
	})
)

// DepartmentRepository implements department.RepositoryAPI using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *departmentDatamodel.Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error) {
	var d departmentDatamodel.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List pages through all departments, ordered by id ascending by default.
func (r *DepartmentRepository) List(ctx context.Context, p query.Pageable) ([]*departmentDatamodel.Department, int64, error) {
	by, err := query.OrderBy(p.Sorted(query.AscBy("id")), sortFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&departmentDatamodel.Department{})
	}
	return query.Paginate[*departmentDatamodel.Department](base, query.Where(), p, by, nil)
}

func (r *DepartmentRepository) CompanyExists(ctx context.Context, companyID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&companyDatamodel.Company{}).Where("id = ?", companyID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
