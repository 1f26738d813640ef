package domain

// Dimensions are the pixel dimensions of an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Image is an image field as stored by the content source.
type Image struct {
	URL        string     `json:"url"`
	Alt        string     `json:"alt"`
	Dimensions Dimensions `json:"dimensions"`
}

// IsEmpty reports whether the field has no image.
func (i Image) IsEmpty() bool {
	return i.URL == ""
}

// ImageDescriptor is a render-ready image with its inline blur preview.
type ImageDescriptor struct {
	URL         string `json:"url"`
	Alt         string `json:"alt"`
	BlurDataURL string `json:"blurDataURL"`
}

// Describe builds a descriptor for the image with the given placeholder.
func (i Image) Describe(blurDataURL string) ImageDescriptor {
	return ImageDescriptor{
		URL:         i.URL,
		Alt:         i.Alt,
		BlurDataURL: blurDataURL,
	}
}
