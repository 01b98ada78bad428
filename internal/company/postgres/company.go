package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/company-directory/internal/company"
	companyDatamodel "github.com/frahmantamala/company-directory/internal/core/datamodel/company"
	"github.com/frahmantamala/company-directory/internal/core/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const table = "companies"

var (
	idColumn = query.Col(table, "id")

	sortFields = query.Fields(map[string]clause.Column{
		"id":         idColumn,
		"name":       query.Col(table, "name"),
		"createdAt":  query.Col(table, "created_at"),
		"created_at": query.Col(table, "created_at"),
	})
)

// CompanyRepository implements company.RepositoryAPI using GORM
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.RepositoryAPI {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *companyDatamodel.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByAttribute pages through companies whose attribute bag holds value
// under key. Default order is id descending.
func (r *CompanyRepository) FindByAttribute(ctx context.Context, key, value string, p query.Pageable) ([]*companyDatamodel.Company, int64, error) {
	if err := query.ValidateAttributeKey(key); err != nil {
		return nil, 0, err
	}

	by, err := query.OrderBy(p.Sorted(query.DescBy("id")), sortFields, &idColumn)
	if err != nil {
		return nil, 0, err
	}

	spec := query.Where(hasAttribute(key, value))
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&companyDatamodel.Company{})
	}

	return query.Paginate[*companyDatamodel.Company](base, spec, p, by, nil)
}

func hasAttribute(key, value string) query.Predicate {
	return func(b *query.Builder) clause.Expression {
		return query.AttributeEquals(b.Dialect(), query.Col(table, "properties"), key, value)
	}
}
