package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
)

// Ensure ContentSource implements the interface.
var _ driven.ContentSource = (*ContentSource)(nil)

// ContentSource is an in-memory implementation of driven.ContentSource.
// Documents keep their insertion order, which is the order results are
// returned in when a query has no orderings.
type ContentSource struct {
	mu        sync.RWMutex
	documents []domain.Document
	byID      map[string]int
}

// NewContentSource creates a content source holding docs.
func NewContentSource(docs ...domain.Document) *ContentSource {
	s := &ContentSource{}
	s.Replace(docs)
	return s
}

// Put stores or replaces a document, keyed by ID.
func (s *ContentSource) Put(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[doc.ID]; ok {
		s.documents[i] = doc
		return
	}
	s.byID[doc.ID] = len(s.documents)
	s.documents = append(s.documents, doc)
}

// Replace swaps the whole document set.
func (s *ContentSource) Replace(docs []domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make([]domain.Document, 0, len(docs))
	s.byID = make(map[string]int, len(docs))
	for _, doc := range docs {
		if i, ok := s.byID[doc.ID]; ok {
			s.documents[i] = doc
			continue
		}
		s.byID[doc.ID] = len(s.documents)
		s.documents = append(s.documents, doc)
	}
}

// Len returns the number of stored documents.
func (s *ContentSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Query returns one page of documents matching every predicate.
func (s *ContentSource) Query(ctx context.Context, q domain.Query) (*domain.QueryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := make([]domain.Document, 0)
	for _, doc := range s.documents {
		if !matchLang(doc, q.Lang) {
			continue
		}
		ok, err := matchAll(doc, q.Predicates)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	if len(q.Orderings) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i], matched[j], q.Orderings)
		})
	}

	return paginate(matched, q.EffectivePage(), q.EffectivePageSize()), nil
}

// GetSingle returns the first document of a singleton type.
func (s *ContentSource) GetSingle(ctx context.Context, docType domain.DocumentType) (*domain.Document, error) {
	res, err := s.Query(ctx, domain.Query{
		Predicates: []domain.Predicate{domain.TypeIs(docType)},
		PageSize:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Results) == 0 {
		return nil, fmt.Errorf("%s: %w", docType, domain.ErrNotFound)
	}
	return &res.Results[0], nil
}

// GetByUID returns the document of docType with the given UID.
func (s *ContentSource) GetByUID(ctx context.Context, docType domain.DocumentType, uid string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.documents {
		if doc.Type == docType && doc.UID == uid {
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", docType, uid, domain.ErrNotFound)
}

// GetByIDs returns the known documents among ids, in the order requested.
func (s *ContentSource) GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.byID[id]; ok {
			result = append(result, s.documents[i])
		}
	}
	return result, nil
}

func paginate(docs []domain.Document, page, pageSize int) *domain.QueryResult {
	total := len(docs)
	pages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return &domain.QueryResult{
		Page:             page,
		ResultsPerPage:   pageSize,
		TotalResultsSize: total,
		TotalPages:       pages,
		Results:          docs[start:end],
	}
}
