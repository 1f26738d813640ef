package domain

// HomePage is the view-model of the site root.
type HomePage struct {
	Title      RichText        `json:"title"`
	Subtitle   RichText        `json:"subtitle"`
	Image      ImageDescriptor `json:"image"`
	TextColor  string          `json:"textColor"`
	ShowEvents bool            `json:"showEvents"`
}

// GeneralPage is the view-model of a content page.
type GeneralPage struct {
	UID         string          `json:"uid"`
	Title       RichText        `json:"title"`
	Subtitle    RichText        `json:"subtitle"`
	HeroImage   ImageDescriptor `json:"heroImage"`
	HeadingType HeadingType     `json:"headingType"`
	TextColor   string          `json:"textColor"`
	Body        SliceZone       `json:"body"`
}

// BlogIndex is the view-model of the article listing page.
type BlogIndex struct {
	Title string `json:"title"`
}

// Post is the view-model of a blog post.
// Related posts are expanded one level only; their own Related is empty.
type Post struct {
	URL           string          `json:"url"`
	Title         string          `json:"title"`
	TitleImage    ImageDescriptor `json:"titleImage"`
	Summary       RichText        `json:"summary"`
	Body          SliceZone       `json:"body"`
	Tags          []string        `json:"tags"`
	DatePublished string          `json:"datePublished"`
	ReadingTime   int             `json:"readingTime"`
	Related       []Post          `json:"related"`
}

// Header is the view-model of the site header.
type Header struct {
	SiteTagline RichText         `json:"siteTagLine"`
	SiteLogo    ImageDescriptor  `json:"siteLogo"`
	HeaderLinks []LinkDescriptor `json:"headerLinks"`
}

// Footer is the view-model of the site footer.
type Footer struct {
	FooterText  RichText         `json:"footerText"`
	FooterLinks []LinkDescriptor `json:"footerLinks"`
	FooterIcon  ImageDescriptor  `json:"footerIcon"`
}

// Event is the view-model of an upcoming event.
type Event struct {
	Title       RichText `json:"title"`
	Presenter   RichText `json:"presenter"`
	Description RichText `json:"description"`
	Time        string   `json:"time"`
}

// PageID is a route parameter set for static path generation.
type PageID struct {
	Params PageParams `json:"params"`
}

// PageParams holds the dynamic segment of a route.
type PageParams struct {
	ID string `json:"id"`
}

// NewPageID builds route parameters for a slug.
func NewPageID(slug string) PageID {
	return PageID{Params: PageParams{ID: slug}}
}
