package domain

import "time"

// Well-known predicate paths.
const (
	PathDocumentType = "document.type"
	PathDocumentID   = "document.id"
)

// DefaultPageSize is the page size used for listings and enumerations.
const DefaultPageSize = 100

// PredicateOp is a content source predicate operator.
type PredicateOp string

// Supported predicate operators.
const (
	OpAt        PredicateOp = "at"
	OpIn        PredicateOp = "in"
	OpDateAfter PredicateOp = "date.after"
)

// Predicate is a single filter clause of a query.
type Predicate struct {
	Op     PredicateOp
	Path   string
	Values []string

	// Day is the exclusive cutoff for date predicates, truncated to the day.
	Day time.Time
}

// At matches documents whose path equals value.
func At(path, value string) Predicate {
	return Predicate{Op: OpAt, Path: path, Values: []string{value}}
}

// In matches documents whose path equals any of values.
func In(path string, values ...string) Predicate {
	return Predicate{Op: OpIn, Path: path, Values: values}
}

// DateAfter matches documents whose date at path falls on a day strictly
// after day. Only the calendar date of day is significant.
func DateAfter(path string, day time.Time) Predicate {
	return Predicate{Op: OpDateAfter, Path: path, Day: TruncateDay(day)}
}

// TypeIs matches documents of the given type.
func TypeIs(t DocumentType) Predicate {
	return At(PathDocumentType, string(t))
}

// FieldPath builds the predicate path of a custom type field.
func FieldPath(t DocumentType, field string) string {
	return "my." + string(t) + "." + field
}

// TruncateDay drops the time of day, keeping the calendar date in t's location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Ordering sorts results by a path.
type Ordering struct {
	Path string
	Desc bool
}

// Asc orders ascending by path.
func Asc(path string) Ordering {
	return Ordering{Path: path}
}

// Desc orders descending by path.
func Desc(path string) Ordering {
	return Ordering{Path: path, Desc: true}
}

// Query is a predicate-based document query.
type Query struct {
	Predicates []Predicate
	Orderings  []Ordering

	// PageSize caps the number of results; zero means DefaultPageSize.
	PageSize int

	// Page is the 1-based page number; zero means the first page.
	Page int

	// Lang restricts results to a locale; empty means the source default.
	Lang string
}

// EffectivePageSize returns the page size with defaults applied.
func (q Query) EffectivePageSize() int {
	if q.PageSize <= 0 {
		return DefaultPageSize
	}
	return q.PageSize
}

// EffectivePage returns the page number with defaults applied.
func (q Query) EffectivePage() int {
	if q.Page <= 0 {
		return 1
	}
	return q.Page
}

// QueryResult is one page of query results.
type QueryResult struct {
	Page             int
	ResultsPerPage   int
	TotalResultsSize int
	TotalPages       int
	Results          []Document
}
