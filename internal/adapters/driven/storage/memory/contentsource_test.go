package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

func testDoc(t *testing.T, id, uid string, docType domain.DocumentType, data string) domain.Document {
	t.Helper()
	var fields domain.Fields
	require.NoError(t, json.Unmarshal([]byte(data), &fields))
	return domain.Document{ID: id, UID: uid, Type: docType, Data: fields}
}

func uids(docs []domain.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.UID)
	}
	return out
}

func TestContentSource_GetSingle(t *testing.T) {
	ctx := context.Background()
	src := NewContentSource(
		testDoc(t, "H1", "", domain.TypeHomePage, `{"title_color":"#fff"}`),
	)

	doc, err := src.GetSingle(ctx, domain.TypeHomePage)
	require.NoError(t, err)
	assert.Equal(t, "H1", doc.ID)

	_, err = src.GetSingle(ctx, domain.TypeLayout)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentSource_GetByUID(t *testing.T) {
	ctx := context.Background()
	src := NewContentSource(
		testDoc(t, "P1", "about", domain.TypeGeneralPage, `{}`),
		testDoc(t, "B1", "about", domain.TypeBlogPost, `{}`),
	)

	doc, err := src.GetByUID(ctx, domain.TypeBlogPost, "about")
	require.NoError(t, err)
	assert.Equal(t, "B1", doc.ID)

	_, err = src.GetByUID(ctx, domain.TypeBlogPost, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentSource_GetByIDs_SkipsUnknown(t *testing.T) {
	src := NewContentSource(
		testDoc(t, "A", "a", domain.TypeBlogPost, `{}`),
		testDoc(t, "B", "b", domain.TypeBlogPost, `{}`),
	)

	docs, err := src.GetByIDs(context.Background(), []string{"B", "X", "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, uids(docs))
}

func TestContentSource_Put_ReplacesByID(t *testing.T) {
	src := NewContentSource(testDoc(t, "A", "old", domain.TypeBlogPost, `{}`))
	src.Put(testDoc(t, "A", "new", domain.TypeBlogPost, `{}`))
	src.Put(testDoc(t, "B", "b", domain.TypeBlogPost, `{}`))

	assert.Equal(t, 2, src.Len())
	docs, err := src.GetByIDs(context.Background(), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, uids(docs))
}

func TestContentSource_Query(t *testing.T) {
	ctx := context.Background()
	src := NewContentSource(
		testDoc(t, "1", "first", domain.TypeBlogPost, `{"release_date":"2024-01-10"}`),
		testDoc(t, "2", "second", domain.TypeBlogPost, `{"release_date":"2024-03-01"}`),
		testDoc(t, "3", "third", domain.TypeBlogPost, `{"release_date":"2024-02-15"}`),
		testDoc(t, "4", "page", domain.TypeGeneralPage, `{}`),
		testDoc(t, "5", "past", domain.TypeEvent, `{"event_date":"2024-04-30T09:00:00+0000"}`),
		testDoc(t, "6", "today", domain.TypeEvent, `{"event_date":"2024-05-02T09:00:00+0000"}`),
		testDoc(t, "7", "yesterday", domain.TypeEvent, `{"event_date":"2024-05-01T23:00:00+0000"}`),
		testDoc(t, "8", "later", domain.TypeEvent, `{"event_date":"2024-06-01T09:00:00+0000"}`),
	)
	releaseDate := domain.FieldPath(domain.TypeBlogPost, "release_date")
	eventDate := domain.FieldPath(domain.TypeEvent, "event_date")
	yesterday := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query domain.Query
		want  []string
	}{
		{
			name:  "type filter keeps insertion order",
			query: domain.Query{Predicates: []domain.Predicate{domain.TypeIs(domain.TypeBlogPost)}},
			want:  []string{"first", "second", "third"},
		},
		{
			name: "ordered descending",
			query: domain.Query{
				Predicates: []domain.Predicate{domain.TypeIs(domain.TypeBlogPost)},
				Orderings:  []domain.Ordering{domain.Desc(releaseDate)},
			},
			want: []string{"second", "third", "first"},
		},
		{
			name: "in document ids",
			query: domain.Query{
				Predicates: []domain.Predicate{domain.In(domain.PathDocumentID, "4", "2")},
			},
			want: []string{"second", "page"},
		},
		{
			name: "date after is day granular and exclusive",
			query: domain.Query{
				Predicates: []domain.Predicate{
					domain.TypeIs(domain.TypeEvent),
					domain.DateAfter(eventDate, yesterday),
				},
				Orderings: []domain.Ordering{domain.Asc(eventDate)},
			},
			want: []string{"today", "later"},
		},
		{
			name: "custom field path only matches its own type",
			query: domain.Query{
				Predicates: []domain.Predicate{domain.At(domain.FieldPath(domain.TypeGeneralPage, "release_date"), "2024-01-10")},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := src.Query(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, uids(res.Results))
		})
	}
}

func TestContentSource_Query_Pagination(t *testing.T) {
	docs := make([]domain.Document, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		docs = append(docs, testDoc(t, id, id, domain.TypeBlogPost, `{}`))
	}
	src := NewContentSource(docs...)

	res, err := src.Query(context.Background(), domain.Query{PageSize: 2, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 5, res.TotalResultsSize)
	assert.Equal(t, []string{"e"}, uids(res.Results))

	res, err = src.Query(context.Background(), domain.Query{PageSize: 2, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
}

func TestContentSource_Query_Lang(t *testing.T) {
	en := testDoc(t, "1", "en", domain.TypeBlogPost, `{}`)
	en.Lang = "en-nz"
	mi := testDoc(t, "2", "mi", domain.TypeBlogPost, `{}`)
	mi.Lang = "mi-nz"
	src := NewContentSource(en, mi)

	res, err := src.Query(context.Background(), domain.Query{Lang: "mi-nz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mi"}, uids(res.Results))

	res, err = src.Query(context.Background(), domain.Query{Lang: "*"})
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
}

func TestContentSource_Query_UnsupportedPredicate(t *testing.T) {
	src := NewContentSource(testDoc(t, "1", "a", domain.TypeBlogPost, `{}`))
	_, err := src.Query(context.Background(), domain.Query{
		Predicates: []domain.Predicate{{Op: "fulltext", Path: "document"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestContentSource_Query_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewContentSource().Query(ctx, domain.Query{})
	assert.ErrorIs(t, err, context.Canceled)
}
