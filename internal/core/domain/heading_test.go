package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectHeading(t *testing.T) {
	const image = "https://images.example/hero.png"
	const video = "https://www.youtube.com/embed/abc"

	tests := []struct {
		name     string
		input    HeadingInput
		expected HeadingLayout
	}{
		{"full bleed with image", HeadingInput{Type: HeadingTypeFullBleed, ImageSrc: image}, HeadingFullBleed},
		{"full bleed without image falls back", HeadingInput{Type: HeadingTypeFullBleed}, HeadingStandard},
		{"standard with image", HeadingInput{Type: HeadingTypeStandard, ImageSrc: image}, HeadingStandard},
		{"standard without image", HeadingInput{Type: HeadingTypeStandard}, HeadingStandard},
		{"youtube with url", HeadingInput{Type: HeadingTypeYouTube, VideoURL: video}, HeadingEmbeddedVideo},
		{"youtube with url and image", HeadingInput{Type: HeadingTypeYouTube, ImageSrc: image, VideoURL: video}, HeadingEmbeddedVideo},
		{"youtube without url", HeadingInput{Type: HeadingTypeYouTube}, HeadingNone},
		{"unknown type without image", HeadingInput{Type: "Banner"}, HeadingStandard},
		{"unknown type with image", HeadingInput{Type: "Banner", ImageSrc: image}, HeadingNone},
		{"empty type with image", HeadingInput{ImageSrc: image}, HeadingNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectHeading(tt.input))
		})
	}
}

func TestSelectHeading_Idempotent(t *testing.T) {
	inputs := []HeadingInput{
		{Type: HeadingTypeFullBleed, ImageSrc: "a"},
		{Type: HeadingTypeFullBleed},
		{Type: HeadingTypeYouTube, VideoURL: "v"},
		{Type: HeadingTypeStandard, ImageSrc: "a"},
	}
	for _, in := range inputs {
		first := SelectHeading(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, SelectHeading(in))
		}
	}
}

func TestHeadingLayout_String(t *testing.T) {
	assert.Equal(t, "full-bleed", HeadingFullBleed.String())
	assert.Equal(t, "standard", HeadingStandard.String())
	assert.Equal(t, "embedded-video", HeadingEmbeddedVideo.String())
	assert.Equal(t, "none", HeadingNone.String())
	assert.Equal(t, "none", HeadingLayout(42).String())
}
