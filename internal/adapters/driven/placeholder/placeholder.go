// Package placeholder implements [driven.PlaceholderGenerator] with the imgix
// rendering API that serves Prismic images.
//
// A placeholder is a tiny, blurred, low quality rendition of the image,
// inlined as a base64 data URL so pages can paint it before the full image
// loads.
package placeholder

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// Ensure implementations satisfy the interface.
var (
	_ driven.PlaceholderGenerator = (*Imgix)(nil)
	_ driven.PlaceholderGenerator = Disabled{}
)

const (
	// DefaultWidth is the rendition width in pixels.
	DefaultWidth = 10

	// DefaultTimeout bounds a single rendition request.
	DefaultTimeout = 10 * time.Second

	// maxRenditionBytes guards against servers ignoring the size parameters.
	maxRenditionBytes = 64 << 10

	blurRadius      = "200"
	quality         = "30"
	defaultMIME     = "image/jpeg"
	renditionFormat = "jpg"
)

// Imgix requests tiny blurred renditions through imgix URL parameters.
type Imgix struct {
	http  *http.Client
	width int
	log   logger.Scope
}

// NewImgix creates a generator producing renditions width pixels wide.
func NewImgix(width int) *Imgix {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Imgix{
		http:  &http.Client{Timeout: DefaultTimeout},
		width: width,
		log:   logger.For("placeholder"),
	}
}

// NewFromSettings returns the generator configured by settings.
func NewFromSettings(s domain.PlaceholderSettings) driven.PlaceholderGenerator {
	if !s.Enabled {
		return Disabled{}
	}
	return NewImgix(s.Width)
}

// SetHTTPClient replaces the HTTP client.
func (g *Imgix) SetHTTPClient(hc *http.Client) {
	g.http = hc
}

// RenditionURL returns the imgix URL of the placeholder rendition.
// Existing query parameters such as crop rectangles are kept.
func (g *Imgix) RenditionURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("image url %q: %w", imageURL, domain.ErrInvalidInput)
	}
	q := u.Query()
	q.Set("w", strconv.Itoa(g.width))
	q.Set("blur", blurRadius)
	q.Set("fm", renditionFormat)
	q.Set("q", quality)
	q.Del("h")
	q.Del("dpr")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Placeholder fetches the rendition and returns it as a data URL.
func (g *Imgix) Placeholder(ctx context.Context, imageURL string) (string, error) {
	target, err := g.RenditionURL(imageURL)
	if err != nil {
		return "", err
	}
	g.log.Debug("GET %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPlaceholder, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrPlaceholder, imageURL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRenditionBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read rendition: %w", domain.ErrPlaceholder, err)
	}
	if len(data) > maxRenditionBytes {
		return "", fmt.Errorf("%w: rendition of %s exceeds %d bytes", domain.ErrPlaceholder, imageURL, maxRenditionBytes)
	}

	return DataURL(resp.Header.Get("Content-Type"), data), nil
}

// DataURL encodes data as a base64 data URL. Unknown or non-image content
// types are reported as JPEG, the requested rendition format.
func DataURL(contentType string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		mediaType = defaultMIME
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Disabled produces no placeholders. Descriptors keep an empty blurDataURL.
type Disabled struct{}

// Placeholder returns an empty string.
func (Disabled) Placeholder(context.Context, string) (string, error) {
	return "", nil
}
