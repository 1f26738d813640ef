package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Slice types with a typed variant.
const (
	SliceText  = "text"
	SliceImage = "image"
	SliceQuote = "quote"
	SliceEmbed = "embed"
)

// Slice is a typed content block within a page or post body.
// Known slice types decode to their own variant; anything else decodes to
// UnknownSlice. Every decoded slice keeps its source JSON in Raw and is
// written back from it unchanged; the typed fields are read-only views.
type Slice interface {
	SliceType() string
	SliceLabel() string
}

// SliceZone is the ordered body of a page or post.
type SliceZone []Slice

// ReadingTime sums the reading time of every text slice in the zone.
// Each slice is rounded on its own before summing.
func (z SliceZone) ReadingTime() int {
	total := 0
	for _, s := range z {
		if text, ok := s.(TextSlice); ok {
			total += text.Text.ReadingTime()
		}
	}
	return total
}

// TextSlice is a free-text block.
type TextSlice struct {
	Label string
	Text  RichText
	Items []json.RawMessage
	Raw   json.RawMessage
}

// SliceType implements Slice.
func (TextSlice) SliceType() string { return SliceText }

// SliceLabel implements Slice.
func (s TextSlice) SliceLabel() string { return s.Label }

// MarshalJSON writes the slice in content source shape.
func (s TextSlice) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return marshalSlice(SliceText, s.Label, map[string]any{"text": s.Text}, s.Items)
}

// ImageSlice is a full-width image with an optional caption.
type ImageSlice struct {
	Label   string
	Image   ImageDescriptor
	Caption RichText
	Items   []json.RawMessage
	Raw     json.RawMessage
}

// SliceType implements Slice.
func (ImageSlice) SliceType() string { return SliceImage }

// SliceLabel implements Slice.
func (s ImageSlice) SliceLabel() string { return s.Label }

// MarshalJSON writes the slice in content source shape.
func (s ImageSlice) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return marshalSlice(SliceImage, s.Label, map[string]any{
		"image":   s.Image,
		"caption": s.Caption,
	}, s.Items)
}

// QuoteSlice is a pull quote with attribution.
type QuoteSlice struct {
	Label       string
	Quote       RichText
	Attribution RichText
	Items       []json.RawMessage
	Raw         json.RawMessage
}

// SliceType implements Slice.
func (QuoteSlice) SliceType() string { return SliceQuote }

// SliceLabel implements Slice.
func (s QuoteSlice) SliceLabel() string { return s.Label }

// MarshalJSON writes the slice in content source shape.
func (s QuoteSlice) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return marshalSlice(SliceQuote, s.Label, map[string]any{
		"quote":       s.Quote,
		"attribution": s.Attribution,
	}, s.Items)
}

// Embed is an oEmbed payload.
type Embed struct {
	URL          string `json:"embed_url"`
	Type         string `json:"type"`
	ProviderName string `json:"provider_name"`
	Title        string `json:"title"`
	HTML         string `json:"html"`
}

// EmbedSlice is an embedded third-party player or card.
type EmbedSlice struct {
	Label string
	Embed Embed
	Items []json.RawMessage
	Raw   json.RawMessage
}

// SliceType implements Slice.
func (EmbedSlice) SliceType() string { return SliceEmbed }

// SliceLabel implements Slice.
func (s EmbedSlice) SliceLabel() string { return s.Label }

// MarshalJSON writes the slice in content source shape.
func (s EmbedSlice) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return marshalSlice(SliceEmbed, s.Label, map[string]any{"embed": s.Embed}, s.Items)
}

// UnknownSlice is a slice type this layer does not interpret.
type UnknownSlice struct {
	Type    string
	Label   string
	Primary json.RawMessage
	Items   []json.RawMessage
	Raw     json.RawMessage
}

// SliceType implements Slice.
func (s UnknownSlice) SliceType() string { return s.Type }

// SliceLabel implements Slice.
func (s UnknownSlice) SliceLabel() string { return s.Label }

// MarshalJSON writes the slice back exactly as it was read.
func (s UnknownSlice) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	primary := s.Primary
	if isNull(primary) {
		primary = json.RawMessage("{}")
	}
	return marshalSlice(s.Type, s.Label, primary, s.Items)
}

// sliceEnvelope is the wire shape of a slice.
type sliceEnvelope struct {
	SliceType  string            `json:"slice_type"`
	SliceLabel *string           `json:"slice_label"`
	Primary    json.RawMessage   `json:"primary"`
	Items      []json.RawMessage `json:"items"`
}

func marshalSlice(sliceType, label string, primary any, items []json.RawMessage) ([]byte, error) {
	rawPrimary, err := json.Marshal(primary)
	if err != nil {
		return nil, fmt.Errorf("marshal %s slice primary: %w", sliceType, err)
	}
	env := sliceEnvelope{
		SliceType: sliceType,
		Primary:   rawPrimary,
		Items:     items,
	}
	if label != "" {
		env.SliceLabel = &label
	}
	if env.Items == nil {
		env.Items = []json.RawMessage{}
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes each slice into its typed variant.
func (z *SliceZone) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("decode slice zone: %w", err)
	}
	zone := make(SliceZone, 0, len(raws))
	for i, raw := range raws {
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return fmt.Errorf("decode slice %d: %w", i, err)
		}
		var env sliceEnvelope
		if err := json.Unmarshal(compact.Bytes(), &env); err != nil {
			return fmt.Errorf("decode slice %d: %w", i, err)
		}
		zone = append(zone, decodeSlice(env, compact.Bytes()))
	}
	*z = zone
	return nil
}

func decodeSlice(env sliceEnvelope, raw json.RawMessage) Slice {
	label := ""
	if env.SliceLabel != nil {
		label = *env.SliceLabel
	}
	var primary Fields
	if !isNull(env.Primary) {
		if err := json.Unmarshal(env.Primary, &primary); err != nil {
			primary = nil
		}
	}

	switch {
	case primary == nil:
		// Unreadable primaries are passed through as-is.
	case env.SliceType == SliceText:
		return TextSlice{Label: label, Text: primary.RichText("text"), Items: env.Items, Raw: raw}
	case env.SliceType == SliceImage:
		return ImageSlice{
			Label:   label,
			Image:   primary.Image("image").Describe(""),
			Caption: primary.RichText("caption"),
			Items:   env.Items,
			Raw:     raw,
		}
	case env.SliceType == SliceQuote:
		return QuoteSlice{
			Label:       label,
			Quote:       primary.RichText("quote"),
			Attribution: primary.RichText("attribution"),
			Items:       env.Items,
			Raw:         raw,
		}
	case env.SliceType == SliceEmbed:
		var embed Embed
		primary.decode("embed", &embed)
		return EmbedSlice{Label: label, Embed: embed, Items: env.Items, Raw: raw}
	}

	return UnknownSlice{
		Type:    env.SliceType,
		Label:   label,
		Primary: env.Primary,
		Items:   env.Items,
		Raw:     raw,
	}
}
