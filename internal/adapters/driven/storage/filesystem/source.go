// Package filesystem implements an offline [driven.ContentSource] over a
// directory of Prismic-shaped JSON documents.
//
// Each *.json file under the root holds a single document, an array of
// documents, or a saved search response with a "results" array. Hidden
// files and directories are skipped. Queries are evaluated in memory with
// the same predicate semantics as the live API.
package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/memory"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.ContentSource  = (*Source)(nil)
	_ driven.ContentWatcher = (*Source)(nil)
)

const documentExt = ".json"

// Source serves documents loaded from a directory.
type Source struct {
	root string
	mem  *memory.ContentSource
	log  logger.Scope

	mu     sync.Mutex
	loaded bool
}

// New creates a source rooted at dir. Documents are read on first use.
func New(dir string) *Source {
	return &Source{
		root: dir,
		mem:  memory.NewContentSource(),
		log:  logger.For("filesystem"),
	}
}

// Root returns the directory documents are read from.
func (s *Source) Root() string {
	return s.root
}

// Load reads every document under the root, replacing what was loaded.
func (s *Source) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Source) load(ctx context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content directory %s: %w", s.root, domain.ErrInvalidInput)
	}

	var docs []domain.Document
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path != s.root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isDocumentFile(path) {
			return nil
		}

		fileDocs, err := readDocuments(path)
		if err != nil {
			return err
		}
		docs = append(docs, fileDocs...)
		return nil
	})
	if err != nil {
		return err
	}

	s.mem.Replace(docs)
	s.loaded = true
	s.log.Debug("loaded %d document(s) from %s", len(docs), s.root)
	return nil
}

// ensureLoaded loads documents on first use.
func (s *Source) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	return s.load(ctx)
}

// Query returns one page of documents matching every predicate.
func (s *Source) Query(ctx context.Context, q domain.Query) (*domain.QueryResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.mem.Query(ctx, q)
}

// GetSingle returns the document of a singleton type.
func (s *Source) GetSingle(ctx context.Context, docType domain.DocumentType) (*domain.Document, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.mem.GetSingle(ctx, docType)
}

// GetByUID returns the document of docType with the given UID.
func (s *Source) GetByUID(ctx context.Context, docType domain.DocumentType, uid string) (*domain.Document, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.mem.GetByUID(ctx, docType, uid)
}

// GetByIDs returns the known documents among ids.
func (s *Source) GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.mem.GetByIDs(ctx, ids)
}

// Watch reloads the documents whenever a JSON file under the root changes
// and emits the changed path afterwards. The channel is closed when ctx is
// cancelled.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := s.addDirs(watcher); err != nil {
		watcher.Close()
		return nil, err
	}

	changes := make(chan string)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) && isDir(event.Name) && !isHidden(filepath.Base(event.Name)) {
					if err := watcher.Add(event.Name); err != nil {
						s.log.Warn("watch %s: %v", event.Name, err)
					}
					continue
				}
				path, ok := s.handleFsEvent(event)
				if !ok {
					continue
				}
				if err := s.Load(ctx); err != nil {
					s.log.Error("reload after %s: %v", path, err)
					continue
				}
				select {
				case changes <- path:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// addDirs watches the root and every visible directory below it.
func (s *Source) addDirs(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != s.root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// handleFsEvent reports whether event changes a document file.
func (s *Source) handleFsEvent(event fsnotify.Event) (string, bool) {
	if isHidden(filepath.Base(event.Name)) || !isDocumentFile(event.Name) {
		return "", false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	return event.Name, true
}

// readDocuments decodes the documents stored in one file.
func readDocuments(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var docs []domain.Document
	switch data[0] {
	case '[':
		err = json.Unmarshal(data, &docs)
	case '{':
		var probe struct {
			Results *[]domain.Document `json:"results"`
		}
		if err = json.Unmarshal(data, &probe); err == nil && probe.Results != nil {
			docs = *probe.Results
			break
		}
		var doc domain.Document
		if err = json.Unmarshal(data, &doc); err == nil {
			docs = []domain.Document{doc}
		}
	default:
		err = errors.New("expected a JSON object or array")
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, errors.Join(err, domain.ErrInvalidInput))
	}

	for i, doc := range docs {
		if doc.ID == "" || doc.Type == "" {
			return nil, fmt.Errorf("%s: document %d has no id or type: %w", path, i, domain.ErrInvalidInput)
		}
	}
	return docs, nil
}

func isDocumentFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), documentExt)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
