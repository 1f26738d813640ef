package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// Field keys of the content model.
const (
	fieldTitle            = "title"
	fieldSubtitle         = "subtitle"
	fieldHeroImage        = "hero_image"
	fieldHeroDisplay      = "hero_display"
	fieldTitleColor       = "title_color"
	fieldShowEvents       = "show_events"
	fieldBody             = "body"
	fieldTitleImage       = "title_image"
	fieldSummary          = "summary"
	fieldArticleTags      = "article_tags"
	fieldTag              = "tag"
	fieldReleaseDate      = "release_date"
	fieldLinkedPosts      = "linked_posts"
	fieldPost             = "post"
	fieldSiteTagline      = "site_tagline"
	fieldSiteLogo         = "site_logo"
	fieldHeaderLinks      = "header_links"
	fieldFooterText       = "footer_text"
	fieldFooterLinks      = "footer_links"
	fieldFooterIcon       = "footer_icon"
	fieldLinkLabel        = "link_label"
	fieldLink             = "link"
	fieldPresenter        = "presenter"
	fieldEventDescription = "event_description"
	fieldEventDate        = "event_date"
)

// ContentService assembles view-models from content source documents.
type ContentService struct {
	source driven.ContentSource
	images imageResolver
	lang   string
	now    func() time.Time
}

// NewContentService creates a new content service.
// The placeholders parameter is optional (can be nil), in which case image
// descriptors carry an empty blurDataURL.
func NewContentService(source driven.ContentSource, placeholders driven.PlaceholderGenerator) *ContentService {
	return &ContentService{
		source: source,
		images: imageResolver{generator: placeholders},
		now:    time.Now,
	}
}

// SetConcurrency bounds parallel placeholder requests per assembly.
// Zero or less means unbounded.
func (s *ContentService) SetConcurrency(n int) {
	if n < 0 {
		n = 0
	}
	s.images.limit = n
}

// SetLocale sets the lang sent with every listing query.
func (s *ContentService) SetLocale(lang string) {
	s.lang = lang
}

// SetClock replaces the time source used for the events cutoff.
func (s *ContentService) SetClock(now func() time.Time) {
	s.now = now
}

// HomePage returns the site root view-model.
func (s *ContentService) HomePage(ctx context.Context) (*domain.HomePage, error) {
	logger.Section("Home Page")

	doc, err := s.source.GetSingle(ctx, domain.TypeHomePage)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.TypeHomePage, err)
	}

	image, err := s.images.describe(ctx, doc.Data.Image(fieldHeroImage))
	if err != nil {
		return nil, err
	}

	return &domain.HomePage{
		Title:      doc.Data.RichText(fieldTitle),
		Subtitle:   doc.Data.RichText(fieldSubtitle),
		Image:      image,
		TextColor:  doc.Data.Text(fieldTitleColor),
		ShowEvents: doc.Data.Bool(fieldShowEvents),
	}, nil
}

// Page returns a general page by UID.
func (s *ContentService) Page(ctx context.Context, uid string) (*domain.GeneralPage, error) {
	logger.Section("General Page")
	logger.Debug("UID: %q", uid)

	if uid == "" {
		return nil, fmt.Errorf("page uid: %w", domain.ErrInvalidInput)
	}

	doc, err := s.source.GetByUID(ctx, domain.TypeGeneralPage, uid)
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", domain.TypeGeneralPage, uid, err)
	}

	hero, err := s.images.describe(ctx, doc.Data.Image(fieldHeroImage))
	if err != nil {
		return nil, err
	}

	return &domain.GeneralPage{
		UID:         doc.UID,
		Title:       doc.Data.RichText(fieldTitle),
		Subtitle:    doc.Data.RichText(fieldSubtitle),
		HeroImage:   hero,
		HeadingType: domain.HeadingType(doc.Data.Text(fieldHeroDisplay)),
		TextColor:   doc.Data.Text(fieldTitleColor),
		Body:        doc.Data.Slices(fieldBody),
	}, nil
}

// PageIDs enumerates general page UIDs.
func (s *ContentService) PageIDs(ctx context.Context) ([]domain.PageID, error) {
	return s.ids(ctx, domain.TypeGeneralPage)
}

// BlogIndex returns the article listing page view-model.
func (s *ContentService) BlogIndex(ctx context.Context) (*domain.BlogIndex, error) {
	logger.Section("Blog Index")

	doc, err := s.source.GetSingle(ctx, domain.TypeBlogIndex)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.TypeBlogIndex, err)
	}
	return &domain.BlogIndex{Title: doc.Data.RichText(fieldTitle).AsText()}, nil
}

// Post returns a blog post by UID with its related posts expanded one level.
func (s *ContentService) Post(ctx context.Context, uid string) (*domain.Post, error) {
	logger.Section("Blog Post")
	logger.Debug("UID: %q", uid)

	if uid == "" {
		return nil, fmt.Errorf("post uid: %w", domain.ErrInvalidInput)
	}

	doc, err := s.source.GetByUID(ctx, domain.TypeBlogPost, uid)
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", domain.TypeBlogPost, uid, err)
	}

	related := []domain.Document{}
	if ids := relatedIDs(doc.Data); len(ids) > 0 {
		logger.Debug("Linked posts: %v", ids)
		linked, err := s.source.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get linked posts of %q: %w", uid, err)
		}
		for _, d := range linked {
			if d.Type == domain.TypeBlogPost {
				related = append(related, d)
			}
		}
	}

	docs := append([]domain.Document{*doc}, related...)
	posts, err := s.posts(ctx, docs)
	if err != nil {
		return nil, err
	}

	post := posts[0]
	post.Related = posts[1:]
	logger.Debug("Assembled post %q with %d related", uid, len(post.Related))
	return &post, nil
}

// PostIDs enumerates blog post UIDs.
func (s *ContentService) PostIDs(ctx context.Context) ([]domain.PageID, error) {
	return s.ids(ctx, domain.TypeBlogPost)
}

// AllPosts lists every blog post, newest release first.
func (s *ContentService) AllPosts(ctx context.Context) ([]domain.Post, error) {
	logger.Section("All Posts")

	docs, err := s.queryAll(ctx, domain.Query{
		Predicates: []domain.Predicate{domain.TypeIs(domain.TypeBlogPost)},
		Orderings:  []domain.Ordering{domain.Desc(domain.FieldPath(domain.TypeBlogPost, fieldReleaseDate))},
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", domain.TypeBlogPost, err)
	}
	return s.posts(ctx, docs)
}

// Header returns the site header view-model.
func (s *ContentService) Header(ctx context.Context) (*domain.Header, error) {
	logger.Section("Header")

	doc, err := s.source.GetSingle(ctx, domain.TypeLayout)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.TypeLayout, err)
	}

	logo, err := s.images.describe(ctx, doc.Data.Image(fieldSiteLogo))
	if err != nil {
		return nil, err
	}

	return &domain.Header{
		SiteTagline: doc.Data.RichText(fieldSiteTagline),
		SiteLogo:    logo,
		HeaderLinks: links(doc.Data.Group(fieldHeaderLinks)),
	}, nil
}

// Footer returns the site footer view-model.
func (s *ContentService) Footer(ctx context.Context) (*domain.Footer, error) {
	logger.Section("Footer")

	doc, err := s.source.GetSingle(ctx, domain.TypeLayout)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.TypeLayout, err)
	}

	icon, err := s.images.describe(ctx, doc.Data.Image(fieldFooterIcon))
	if err != nil {
		return nil, err
	}

	return &domain.Footer{
		FooterText:  doc.Data.RichText(fieldFooterText),
		FooterLinks: links(doc.Data.Group(fieldFooterLinks)),
		FooterIcon:  icon,
	}, nil
}

// Events lists events dated after yesterday, soonest first.
func (s *ContentService) Events(ctx context.Context) ([]domain.Event, error) {
	logger.Section("Events")

	eventDate := domain.FieldPath(domain.TypeEvent, fieldEventDate)
	yesterday := s.now().AddDate(0, 0, -1)
	logger.Debug("Cutoff: after %s", yesterday.Format("2006-01-02"))

	docs, err := s.queryAll(ctx, domain.Query{
		Predicates: []domain.Predicate{
			domain.TypeIs(domain.TypeEvent),
			domain.DateAfter(eventDate, yesterday),
		},
		Orderings: []domain.Ordering{domain.Asc(eventDate)},
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", domain.TypeEvent, err)
	}

	events := make([]domain.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, domain.Event{
			Title:       doc.Data.RichText(fieldTitle),
			Presenter:   doc.Data.RichText(fieldPresenter),
			Description: doc.Data.RichText(fieldEventDescription),
			Time:        doc.Data.Text(fieldEventDate),
		})
	}
	return events, nil
}

// posts assembles post view-models without related posts, resolving every
// title image placeholder in one concurrent batch.
func (s *ContentService) posts(ctx context.Context, docs []domain.Document) ([]domain.Post, error) {
	imgs := make([]domain.Image, len(docs))
	for i, doc := range docs {
		imgs[i] = doc.Data.Image(fieldTitleImage)
	}

	descriptors, err := s.images.describeAll(ctx, imgs)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, len(docs))
	for i, doc := range docs {
		posts[i] = buildPost(doc, descriptors[i])
	}
	return posts, nil
}

// ids enumerates the UIDs of every document of docType.
func (s *ContentService) ids(ctx context.Context, docType domain.DocumentType) ([]domain.PageID, error) {
	logger.Section("Enumerate " + docType.String())

	docs, err := s.queryAll(ctx, domain.Query{
		Predicates: []domain.Predicate{domain.TypeIs(docType)},
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", docType, err)
	}

	ids := make([]domain.PageID, 0, len(docs))
	for _, doc := range docs {
		if doc.UID == "" {
			logger.Debug("Skipping %s %s without uid", docType, doc.ID)
			continue
		}
		ids = append(ids, domain.NewPageID(doc.UID))
	}
	return ids, nil
}

// queryAll follows result pages until the source reports no more.
func (s *ContentService) queryAll(ctx context.Context, q domain.Query) ([]domain.Document, error) {
	if q.PageSize == 0 {
		q.PageSize = domain.DefaultPageSize
	}
	if q.Lang == "" {
		q.Lang = s.lang
	}

	docs := []domain.Document{}
	for page := 1; ; page++ {
		q.Page = page
		res, err := s.source.Query(ctx, q)
		if err != nil {
			return nil, err
		}
		docs = append(docs, res.Results...)
		logger.Debug("Page %d/%d: %d result(s)", page, res.TotalPages, len(res.Results))
		if page >= res.TotalPages || len(res.Results) == 0 {
			return docs, nil
		}
	}
}

func buildPost(doc domain.Document, titleImage domain.ImageDescriptor) domain.Post {
	body := doc.Data.Slices(fieldBody)
	return domain.Post{
		URL:           doc.Path(),
		Title:         doc.Data.RichText(fieldTitle).AsText(),
		TitleImage:    titleImage,
		Summary:       doc.Data.RichText(fieldSummary),
		Body:          body,
		Tags:          tags(doc.Data.Group(fieldArticleTags)),
		DatePublished: doc.Data.Text(fieldReleaseDate),
		ReadingTime:   body.ReadingTime(),
		Related:       []domain.Post{},
	}
}

// relatedIDs extracts linked post IDs, dropping links without a target.
func relatedIDs(data domain.Fields) []string {
	var ids []string
	for _, item := range data.Group(fieldLinkedPosts) {
		if id := item.Link(fieldPost).TargetID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func tags(items []domain.Fields) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if tag := item.Text(fieldTag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func links(items []domain.Fields) []domain.LinkDescriptor {
	out := make([]domain.LinkDescriptor, 0, len(items))
	for _, item := range items {
		label := item.RichText(fieldLinkLabel).AsText()
		link := item.Link(fieldLink)
		if !resolvable(link) {
			continue
		}
		out = append(out, domain.LinkDescriptor{Label: label, URL: link.Path()})
	}
	return out
}

// resolvable reports whether a navigation link has a target. Web and media
// links need a URL; anything else needs a live document.
func resolvable(link domain.LinkField) bool {
	switch link.LinkType {
	case domain.LinkTypeWeb, domain.LinkTypeMedia:
		return link.URL != ""
	default:
		return link.TargetID() != ""
	}
}
