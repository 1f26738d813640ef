package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayout is the format of date fields.
const dateLayout = "2006-01-02"

// Fields is the type-specific field bag of a document, slice primary or
// group item. Values stay raw until read through a typed accessor.
//
// Accessors never fail: absent, null or mistyped values read as the zero
// value so that optional fields can be filtered instead of aborting a build.
type Fields map[string]json.RawMessage

// Has reports whether key is present with a non-null value.
func (f Fields) Has(key string) bool {
	raw, ok := f[key]
	return ok && !isNull(raw)
}

// decode unmarshals key into v and reports success.
func (f Fields) decode(key string, v any) bool {
	raw, ok := f[key]
	if !ok || isNull(raw) {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Text reads a key text, select, colour or date field verbatim.
func (f Fields) Text(key string) string {
	var s string
	f.decode(key, &s)
	return s
}

// Bool reads a boolean field.
func (f Fields) Bool(key string) bool {
	var b bool
	f.decode(key, &b)
	return b
}

// RichText reads a rich text field. Missing fields yield an empty, non-nil value.
func (f Fields) RichText(key string) RichText {
	var rt RichText
	if !f.decode(key, &rt) || rt == nil {
		return RichText{}
	}
	return rt
}

// Image reads an image field.
func (f Fields) Image(key string) Image {
	var img Image
	f.decode(key, &img)
	return img
}

// Link reads a link field.
func (f Fields) Link(key string) LinkField {
	var link LinkField
	f.decode(key, &link)
	return link
}

// Date reads a date or timestamp field.
func (f Fields) Date(key string) (time.Time, bool) {
	return ParseTimestamp(f.Text(key))
}

// Group reads a repeatable group field. Items that are not objects are skipped.
func (f Fields) Group(key string) []Fields {
	var raw []json.RawMessage
	if !f.decode(key, &raw) {
		return []Fields{}
	}
	items := make([]Fields, 0, len(raw))
	for _, r := range raw {
		var item Fields
		if json.Unmarshal(r, &item) != nil || item == nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Slices reads a slice zone.
func (f Fields) Slices(key string) SliceZone {
	var zone SliceZone
	if !f.decode(key, &zone) || zone == nil {
		return SliceZone{}
	}
	return zone
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
