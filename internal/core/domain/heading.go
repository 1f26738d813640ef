package domain

// HeadingType is the editor-selected heading style of a page.
type HeadingType string

// Heading types.
const (
	HeadingTypeFullBleed HeadingType = "Full Bleed"
	HeadingTypeStandard  HeadingType = "Standard"
	HeadingTypeYouTube   HeadingType = "YouTube"
)

// HeadingLayout is the heading variant chosen for rendering.
type HeadingLayout int

// Heading layouts.
const (
	// HeadingNone renders no heading.
	HeadingNone HeadingLayout = iota
	HeadingFullBleed
	HeadingStandard
	HeadingEmbeddedVideo
)

// String returns the layout name.
func (l HeadingLayout) String() string {
	switch l {
	case HeadingFullBleed:
		return "full-bleed"
	case HeadingStandard:
		return "standard"
	case HeadingEmbeddedVideo:
		return "embedded-video"
	default:
		return "none"
	}
}

// HeadingInput is what the heading selection depends on.
type HeadingInput struct {
	Type     HeadingType
	ImageSrc string
	VideoURL string
}

// SelectHeading picks the heading layout.
//
// A full-bleed heading without an image falls through to the standard
// layout. A YouTube heading without a video URL, or an unrecognised type with
// an image, renders nothing.
func SelectHeading(in HeadingInput) HeadingLayout {
	hasImage := in.ImageSrc != ""
	switch {
	case hasImage && in.Type == HeadingTypeFullBleed:
		return HeadingFullBleed
	case in.Type != HeadingTypeYouTube && (!hasImage || in.Type == HeadingTypeStandard):
		return HeadingStandard
	case in.Type == HeadingTypeYouTube && in.VideoURL != "":
		return HeadingEmbeddedVideo
	default:
		return HeadingNone
	}
}
