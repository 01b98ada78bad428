package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm/clause"
)

var ErrInvalidAttributeKey = errors.New("invalid attribute key")

var attributeKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

const likeEscape = `\`

// Col is a table-qualified column reference.
func Col(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// Equals matches column = value.
func Equals(col clause.Column, value interface{}) clause.Expression {
	return clause.Eq{Column: col, Value: value}
}

// EqualsFold matches column = value ignoring case. Both sides are folded by
// the database so they agree on which characters have a lower case.
func EqualsFold(col clause.Column, value string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(?) = LOWER(?)",
		Vars: []interface{}{col, value},
	}
}

// AtLeast matches column >= value.
func AtLeast(col clause.Column, value interface{}) clause.Expression {
	return clause.Gte{Column: col, Value: value}
}

// ContainsFold matches rows whose column contains s, ignoring case. LIKE
// wildcards in s are matched literally.
func ContainsFold(col clause.Column, s string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(?) LIKE LOWER(?) ESCAPE '" + likeEscape + "'",
		Vars: []interface{}{col, "%" + escapeLike(s) + "%"},
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(s)
}

// ValidateAttributeKey rejects keys that cannot be used as an attribute
// bag lookup.
func ValidateAttributeKey(key string) error {
	if !attributeKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidAttributeKey, key)
	}
	return nil
}

// AttributeEquals matches rows whose JSON attribute bag column holds value
// under key. The bag has no schema, so the key is resolved at query time:
//
//	postgres: col ->> 'key' = value
//	sqlite:   json_extract(col, '$.key') = value
//
// The key must pass ValidateAttributeKey; callers validate before building
// the predicate.
func AttributeEquals(dialect string, col clause.Column, key string, value string) clause.Expression {
	switch dialect {
	case "sqlite":
		return clause.Expr{
			SQL:  "json_extract(?, ?) = ?",
			Vars: []interface{}{col, "$." + key, value},
		}
	default:
		return clause.Expr{
			SQL:  "? ->> ? = ?",
			Vars: []interface{}{col, key, value},
		}
	}
}
