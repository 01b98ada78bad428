package query

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Paginate runs a page query in two phases: the ordered, windowed row
// select, then a count(*) over the same joins and predicates. Both phases
// start from a fresh base() and go through spec.Apply. project, when set,
// narrows the select phase to a projection and is not applied to the count.
func Paginate[T any](base func() *gorm.DB, spec Spec, p Pageable, by clause.OrderBy, project func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	q := spec.Apply(base())
	if project != nil {
		q = project(q)
	}

	rows := make([]T, 0, p.Limit())
	if err := p.Window(Ordered(q, by)).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := spec.Apply(base()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
