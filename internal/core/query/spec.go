package query

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Join is a relation hop a predicate can ask for. Name is the cache key:
// two predicates requesting the same Name share one join.
type Join struct {
	Name  string
	Table string
	On    string
}

// Builder is the per-query context handed to predicates. It records the
// joins requested while predicates are evaluated.
type Builder struct {
	dialect string
	joins   []Join
	seen    map[string]struct{}
}

func newBuilder(dialect string) *Builder {
	return &Builder{
		dialect: dialect,
		seen:    make(map[string]struct{}),
	}
}

// Join requests j. Repeated requests for the same join name are ignored so
// joined rows are never multiplied.
func (b *Builder) Join(j Join) {
	if _, ok := b.seen[j.Name]; ok {
		return
	}
	b.seen[j.Name] = struct{}{}
	b.joins = append(b.joins, j)
}

// Joined reports whether the join with the given name has been requested.
func (b *Builder) Joined(name string) bool {
	_, ok := b.seen[name]
	return ok
}

// Dialect returns the gorm dialector name ("postgres", "sqlite").
func (b *Builder) Dialect() string {
	return b.dialect
}

// Predicate produces one condition. A nil Predicate is an absent filter.
type Predicate func(b *Builder) clause.Expression

// Spec is a conjunction of predicates.
type Spec struct {
	joins      []Join
	predicates []Predicate
}

// Where starts a Spec from preds, skipping nil entries.
func Where(preds ...Predicate) Spec {
	return Spec{}.And(preds...)
}

// And returns a copy of s with preds appended. Nil predicates are dropped.
func (s Spec) And(preds ...Predicate) Spec {
	out := Spec{
		joins:      append([]Join(nil), s.joins...),
		predicates: append([]Predicate(nil), s.predicates...),
	}
	for _, p := range preds {
		if p != nil {
			out.predicates = append(out.predicates, p)
		}
	}
	return out
}

// Require returns a copy of s that always carries the given joins, whether
// or not any predicate asks for them.
func (s Spec) Require(joins ...Join) Spec {
	out := s.And()
	out.joins = append(out.joins, joins...)
	return out
}

// Len is the number of present predicates.
func (s Spec) Len() int {
	return len(s.predicates)
}

// Build evaluates every predicate against a fresh Builder and returns the
// joins to emit and the resulting conditions.
func (s Spec) Build(dialect string) ([]Join, []clause.Expression) {
	b := newBuilder(dialect)
	for _, j := range s.joins {
		b.Join(j)
	}

	exprs := make([]clause.Expression, 0, len(s.predicates))
	for _, p := range s.predicates {
		if expr := p(b); expr != nil {
			exprs = append(exprs, expr)
		}
	}
	return b.joins, exprs
}

// Apply adds the joins and the WHERE conjunction of s to db. It is the only
// place predicates are turned into SQL, so a row query and its count query
// built from the same Spec cannot disagree.
func (s Spec) Apply(db *gorm.DB) *gorm.DB {
	joins, exprs := s.Build(dialectOf(db))
	for _, j := range joins {
		db = db.Joins("JOIN " + j.Table + " ON " + j.On)
	}
	if len(exprs) > 0 {
		db = db.Where(clause.And(exprs...))
	}
	return db
}

func dialectOf(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return ""
	}
	return db.Dialector.Name()
}
