package query

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is one sort key as requested by a caller, e.g. {"departmentName", Asc}.
type Order struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

func (o Order) Descending() bool {
	return o.Direction == Desc
}

func AscBy(field string) Order  { return Order{Field: field, Direction: Asc} }
func DescBy(field string) Order { return Order{Field: field, Direction: Desc} }

// ParseOrder parses "field" or "field,asc|desc". Direction defaults to asc.
func ParseOrder(s string) (Order, error) {
	parts := strings.Split(s, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return Order{}, fmt.Errorf("%w: empty field in %q", ErrInvalidSortField, s)
	}
	if len(parts) > 2 {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}

	dir := Asc
	if len(parts) == 2 {
		switch Direction(strings.ToLower(strings.TrimSpace(parts[1]))) {
		case Asc:
		case Desc:
			dir = Desc
		default:
			return Order{}, fmt.Errorf("%w: %q", ErrInvalidSortDirection, parts[1])
		}
	}
	return Order{Field: field, Direction: dir}, nil
}

// ParseSort parses repeated sort parameters in request order.
func ParseSort(values []string) ([]Order, error) {
	orders := make([]Order, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		o, err := ParseOrder(v)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Pageable is a zero-based page request with an ordered sort list.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// NewPageable normalises page and size: negative pages become 0, sizes
// outside (0, MaxPageSize] fall back to DefaultPageSize or MaxPageSize.
func NewPageable(page, size int, sort ...Order) Pageable {
	if page < 0 {
		page = 0
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return Pageable{Page: page, Size: size, Sort: sort}
}

// Offset is the number of rows before the page. It saturates at math.MaxInt
// so a huge page index still lands past the end.
func (p Pageable) Offset() int {
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

func (p Pageable) Limit() int {
	return p.Size
}

// Sorted returns p.Sort, or def when the caller asked for no ordering.
func (p Pageable) Sorted(def ...Order) []Order {
	if len(p.Sort) == 0 {
		return def
	}
	return p.Sort
}

// Window applies LIMIT/OFFSET.
func (p Pageable) Window(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit()).Offset(p.Offset())
}

// FieldResolver maps an API sort field to a column.
type FieldResolver func(field string) (clause.Column, bool)

// Fields resolves against a fixed table of API field names.
func Fields(m map[string]clause.Column) FieldResolver {
	return func(field string) (clause.Column, bool) {
		col, ok := m[field]
		return col, ok
	}
}

// FirstOf tries each resolver in turn.
func FirstOf(resolvers ...FieldResolver) FieldResolver {
	return func(field string) (clause.Column, bool) {
		for _, r := range resolvers {
			if col, ok := r(field); ok {
				return col, true
			}
		}
		return clause.Column{}, false
	}
}

// OrderBy resolves orders into an ORDER BY clause. An unresolvable field is
// an error, never silently dropped. When tieBreak is set and not already
// part of the ordering it is appended ascending so equal keys keep a stable
// order across pages.
func OrderBy(orders []Order, resolve FieldResolver, tieBreak *clause.Column) (clause.OrderBy, error) {
	by := clause.OrderBy{Columns: make([]clause.OrderByColumn, 0, len(orders)+1)}
	hasTie := false
	for _, o := range orders {
		col, ok := resolve(o.Field)
		if !ok {
			return clause.OrderBy{}, fmt.Errorf("%w: %s", ErrInvalidSortField, o.Field)
		}
		if tieBreak != nil && col == *tieBreak {
			hasTie = true
		}
		by.Columns = append(by.Columns, clause.OrderByColumn{Column: col, Desc: o.Descending()})
	}
	if tieBreak != nil && !hasTie {
		by.Columns = append(by.Columns, clause.OrderByColumn{Column: *tieBreak})
	}
	return by, nil
}

// Ordered applies by to db unless it is empty.
func Ordered(db *gorm.DB, by clause.OrderBy) *gorm.DB {
	if len(by.Columns) == 0 {
		return db
	}
	return db.Order(by)
}

// Page is one slice of a result set plus the size of the whole set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

func NewPage[T any](content []T, p Pageable, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage converts the content of a page, keeping its metadata.
func MapPage[T, U any](in Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(in.Content))
	for i, v := range in.Content {
		out[i] = fn(v)
	}
	return Page[U]{
		Content:       out,
		Page:          in.Page,
		Size:          in.Size,
		TotalElements: in.TotalElements,
		TotalPages:    in.TotalPages,
	}
}
