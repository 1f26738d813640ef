package domain

// LinkType identifies what a link field points at.
type LinkType string

// Link types.
const (
	LinkTypeDocument LinkType = "Document"
	LinkTypeWeb      LinkType = "Web"
	LinkTypeMedia    LinkType = "Media"
	LinkTypeAny      LinkType = "Any"
)

// LinkField is a reference to another document or an external URL.
type LinkField struct {
	LinkType LinkType     `json:"link_type"`
	ID       string       `json:"id,omitempty"`
	UID      string       `json:"uid,omitempty"`
	Type     DocumentType `json:"type,omitempty"`
	IsBroken bool         `json:"isBroken,omitempty"`
	URL      string       `json:"url,omitempty"`
}

// TargetID returns the referenced document ID, or "" when the link has no
// resolvable document target.
func (l LinkField) TargetID() string {
	if l.IsBroken {
		return ""
	}
	if l.LinkType != "" && l.LinkType != LinkTypeDocument {
		return ""
	}
	return l.ID
}

// IsEmpty reports whether the link points nowhere, as an unset link field does.
func (l LinkField) IsEmpty() bool {
	return l.ID == "" && l.UID == "" && l.Type == "" && l.URL == ""
}

// Path resolves the site-relative URL of the link target.
func (l LinkField) Path() string {
	return ResolvePath(l.Type, l.UID)
}

// LinkDescriptor is a render-ready navigation link.
type LinkDescriptor struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Site paths.
const (
	PathRoot     = "/"
	PathArticles = "/articles"
)

// ResolvePath maps a document type and UID to its site path.
// Unrecognised types resolve to the root.
func ResolvePath(docType DocumentType, uid string) string {
	switch docType {
	case TypeHomePage:
		return PathRoot
	case TypeGeneralPage:
		return PathRoot + uid
	case TypeBlogIndex:
		return PathArticles
	case TypeBlogPost:
		return PathArticles + "/" + uid
	default:
		return PathRoot
	}
}
