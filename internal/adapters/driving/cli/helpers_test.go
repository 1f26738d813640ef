package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/memory"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/services"
)

// stubContent is a canned driving.ContentService.
type stubContent struct {
	err error
}

func (s *stubContent) HomePage(_ context.Context) (*domain.HomePage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.HomePage{Title: domain.PlainText("Kia ora"), ShowEvents: true}, nil
}

func (s *stubContent) Page(_ context.Context, uid string) (*domain.GeneralPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if uid != "about" {
		return nil, domain.ErrNotFound
	}
	return &domain.GeneralPage{
		UID:         uid,
		Title:       domain.PlainText("About us"),
		HeadingType: domain.HeadingTypeStandard,
		Body:        domain.SliceZone{},
	}, nil
}

func (s *stubContent) PageIDs(_ context.Context) ([]domain.PageID, error) {
	return []domain.PageID{domain.NewPageID("about")}, s.err
}

func (s *stubContent) BlogIndex(_ context.Context) (*domain.BlogIndex, error) {
	return &domain.BlogIndex{Title: "Articles"}, s.err
}

func (s *stubContent) Post(_ context.Context, uid string) (*domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	if uid != "hello" {
		return nil, domain.ErrNotFound
	}
	return &domain.Post{
		URL:         "/articles/hello",
		Title:       "Hello world",
		Tags:        []string{"news"},
		ReadingTime: 2,
		Related:     []domain.Post{},
	}, nil
}

func (s *stubContent) PostIDs(_ context.Context) ([]domain.PageID, error) {
	return []domain.PageID{domain.NewPageID("hello")}, s.err
}

func (s *stubContent) AllPosts(ctx context.Context) ([]domain.Post, error) {
	post, err := s.Post(ctx, "hello")
	if err != nil {
		return nil, err
	}
	return []domain.Post{*post}, nil
}

func (s *stubContent) Header(_ context.Context) (*domain.Header, error) {
	return &domain.Header{HeaderLinks: []domain.LinkDescriptor{{Label: "About", URL: "/about"}}}, s.err
}

func (s *stubContent) Footer(_ context.Context) (*domain.Footer, error) {
	return &domain.Footer{FooterLinks: []domain.LinkDescriptor{}}, s.err
}

func (s *stubContent) Events(_ context.Context) ([]domain.Event, error) {
	return []domain.Event{}, s.err
}

// stubWatcher emits nothing and closes its channel immediately.
type stubWatcher struct{}

func (stubWatcher) Watch(_ context.Context) (<-chan string, error) {
	ch := make(chan string)
	close(ch)
	return ch, nil
}

// newTestServices builds services backed by stubContent and an in-memory
// snapshot store.
func newTestServices(content *stubContent, store *memory.SnapshotStore) *Services {
	return &Services{
		Settings: domain.DefaultSettings(),
		Content:  content,
		Export:   services.NewExportService(content, store),
	}
}

// setupTestServices installs test services for one test.
func setupTestServices(t *testing.T, content *stubContent) *memory.SnapshotStore {
	t.Helper()
	store := memory.NewSnapshotStore()
	deps = newTestServices(content, store)
	t.Cleanup(func() { deps = nil })
	return store
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
		deps = nil
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

var errBoom = errors.New("boom")
