package driven

import "context"

// PlaceholderGenerator produces low-resolution inline previews of images.
type PlaceholderGenerator interface {
	// Placeholder returns a data URL preview of the image at imageURL.
	Placeholder(ctx context.Context, imageURL string) (string, error)
}
