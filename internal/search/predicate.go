// Package search implements the faceted listing core: translating
// optional filter parameters into a store-agnostic predicate, aggregating
// facet counts over the filtered candidate set, paginating
// deterministically, and assembling the final result payload.
package search

// Predicate is a store-agnostic query predicate. Store adapters compile
// the tagged variants below into native query syntax; the builder never
// sees SQL.
type Predicate interface {
	isPredicate()
}

// And matches rows satisfying every child predicate. An empty And
// matches every row.
type And struct {
	Preds []Predicate
}

// Or matches rows satisfying at least one child predicate.
type Or struct {
	Preds []Predicate
}

// Eq is an exact equality match on a column.
type Eq struct {
	Column string
	Value  string
}

// Substring is a case-insensitive substring match on a column.
type Substring struct {
	Column string
	Value  string
}

// Present matches rows where the column holds an actual value: non-null,
// non-empty, and not the "-" placeholder.
type Present struct {
	Column string
}

// NotNull matches rows where the column is non-null.
type NotNull struct {
	Column string
}

func (And) isPredicate()       {}
func (Or) isPredicate()        {}
func (Eq) isPredicate()        {}
func (Substring) isPredicate() {}
func (Present) isPredicate()   {}
func (NotNull) isPredicate()   {}

// MatchAll returns a predicate matching every row.
func MatchAll() Predicate {
	return And{}
}
