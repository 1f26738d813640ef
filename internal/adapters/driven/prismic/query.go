package prismic

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// dateLayout is the date format accepted by date predicates.
const dateLayout = "2006-01-02"

// Search endpoint query parameters.
const (
	paramRef         = "ref"
	paramQ           = "q"
	paramOrderings   = "orderings"
	paramPageSize    = "pageSize"
	paramPage        = "page"
	paramLang        = "lang"
	paramAccessToken = "access_token"
)

// renderPredicate renders a single predicate in the Prismic query language.
func renderPredicate(p domain.Predicate) (string, error) {
	switch p.Op {
	case domain.OpAt:
		if len(p.Values) != 1 {
			return "", fmt.Errorf("at(%s) takes one value, got %d: %w", p.Path, len(p.Values), domain.ErrInvalidInput)
		}
		return fmt.Sprintf("[at(%s, %s)]", p.Path, strconv.Quote(p.Values[0])), nil

	case domain.OpIn:
		quoted := make([]string, len(p.Values))
		for i, v := range p.Values {
			quoted[i] = strconv.Quote(v)
		}
		return fmt.Sprintf("[in(%s, [%s])]", p.Path, strings.Join(quoted, ",")), nil

	case domain.OpDateAfter:
		return fmt.Sprintf("[date.after(%s, %s)]", p.Path, strconv.Quote(p.Day.Format(dateLayout))), nil

	default:
		return "", fmt.Errorf("predicate %q: %w", p.Op, domain.ErrNotImplemented)
	}
}

// renderPredicates wraps every predicate in the outer query brackets.
func renderPredicates(preds []domain.Predicate) (string, error) {
	if len(preds) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, p := range preds {
		rendered, err := renderPredicate(p)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	b.WriteByte(']')
	return b.String(), nil
}

// renderOrderings renders orderings as "[a,b desc]".
func renderOrderings(orderings []domain.Ordering) string {
	if len(orderings) == 0 {
		return ""
	}
	parts := make([]string, len(orderings))
	for i, o := range orderings {
		parts[i] = o.Path
		if o.Desc {
			parts[i] += " desc"
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// searchParams builds the search endpoint parameters for q at ref.
// An empty q.Lang falls back to defaultLang.
func searchParams(q domain.Query, ref, defaultLang string) (url.Values, error) {
	params := url.Values{}
	params.Set(paramRef, ref)

	predicates, err := renderPredicates(q.Predicates)
	if err != nil {
		return nil, err
	}
	if predicates != "" {
		params.Set(paramQ, predicates)
	}
	if orderings := renderOrderings(q.Orderings); orderings != "" {
		params.Set(paramOrderings, orderings)
	}
	params.Set(paramPageSize, strconv.Itoa(q.EffectivePageSize()))
	params.Set(paramPage, strconv.Itoa(q.EffectivePage()))

	lang := q.Lang
	if lang == "" {
		lang = defaultLang
	}
	if lang != "" {
		params.Set(paramLang, lang)
	}
	return params, nil
}
