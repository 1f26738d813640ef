package memory

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// Predicate paths understood by the evaluator besides "my.<type>.<field>".
const (
	pathDocumentUID   = "document.uid"
	pathDocumentTags  = "document.tags"
	pathDocumentFirst = "document.first_publication_date"
	pathDocumentLast  = "document.last_publication_date"
	customFieldPrefix = "my."
	sortableTimestamp = "2006-01-02T15:04:05.000000000"
	langWildcard      = "*"
)

func matchLang(doc domain.Document, lang string) bool {
	return lang == "" || lang == langWildcard || doc.Lang == "" || doc.Lang == lang
}

func matchAll(doc domain.Document, preds []domain.Predicate) (bool, error) {
	for _, p := range preds {
		ok, err := match(doc, p)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func match(doc domain.Document, p domain.Predicate) (bool, error) {
	switch p.Op {
	case domain.OpAt, domain.OpIn:
		values, present := resolve(doc, p.Path)
		if !present {
			return false, nil
		}
		for _, want := range p.Values {
			if slices.Contains(values, want) {
				return true, nil
			}
		}
		return false, nil

	case domain.OpDateAfter:
		values, present := resolve(doc, p.Path)
		if !present || len(values) == 0 {
			return false, nil
		}
		t, ok := parseDate(values[0])
		if !ok {
			return false, nil
		}
		return calendarDay(t).After(calendarDay(p.Day)), nil

	default:
		return false, fmt.Errorf("predicate %q: %w", p.Op, domain.ErrNotImplemented)
	}
}

// resolve returns the values at path and whether the path applies to doc.
// Custom field paths only apply to documents of the named type.
func resolve(doc domain.Document, path string) ([]string, bool) {
	switch path {
	case domain.PathDocumentType:
		return []string{string(doc.Type)}, true
	case domain.PathDocumentID:
		return []string{doc.ID}, true
	case pathDocumentUID:
		return []string{doc.UID}, true
	case pathDocumentTags:
		return doc.Tags, true
	case pathDocumentFirst:
		return []string{formatTimestamp(doc.FirstPublicationDate.Time)}, true
	case pathDocumentLast:
		return []string{formatTimestamp(doc.LastPublicationDate.Time)}, true
	}

	rest, ok := strings.CutPrefix(path, customFieldPrefix)
	if !ok {
		return nil, false
	}
	docType, field, ok := strings.Cut(rest, ".")
	if !ok || domain.DocumentType(docType) != doc.Type || !doc.Data.Has(field) {
		return nil, false
	}
	return []string{doc.Data.Text(field)}, true
}

func less(a, b domain.Document, orderings []domain.Ordering) bool {
	for _, o := range orderings {
		av, _ := sortKey(a, o.Path)
		bv, _ := sortKey(b, o.Path)
		if av == bv {
			continue
		}
		if o.Desc {
			return av > bv
		}
		return av < bv
	}
	return false
}

func sortKey(doc domain.Document, path string) (string, bool) {
	values, ok := resolve(doc, path)
	if !ok || len(values) == 0 {
		return "", false
	}
	if t, ok := parseDate(values[0]); ok {
		return formatTimestamp(t), true
	}
	return values[0], true
}

func parseDate(s string) (time.Time, bool) {
	return domain.ParseTimestamp(s)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTimestamp)
}

// calendarDay keeps the date of t as read in its own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
