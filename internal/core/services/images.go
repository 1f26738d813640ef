package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// imageResolver computes blur placeholders for a batch of images.
// Each distinct URL is requested once; empty images never reach the
// generator.
type imageResolver struct {
	generator driven.PlaceholderGenerator

	// limit bounds in-flight placeholder requests; zero means unbounded.
	limit int
}

// describe resolves a single image.
func (r imageResolver) describe(ctx context.Context, img domain.Image) (domain.ImageDescriptor, error) {
	out, err := r.describeAll(ctx, []domain.Image{img})
	if err != nil {
		return domain.ImageDescriptor{}, err
	}
	return out[0], nil
}

// describeAll resolves every image concurrently and returns descriptors in
// input order. The first failure cancels the remaining requests and no
// partial result is returned.
func (r imageResolver) describeAll(ctx context.Context, imgs []domain.Image) ([]domain.ImageDescriptor, error) {
	urls := make([]string, 0, len(imgs))
	index := make(map[string]int, len(imgs))
	for _, img := range imgs {
		if img.IsEmpty() || r.generator == nil {
			continue
		}
		if _, seen := index[img.URL]; !seen {
			index[img.URL] = len(urls)
			urls = append(urls, img.URL)
		}
	}

	blurs := make([]string, len(urls))
	if len(urls) > 0 {
		logger.Debug("Resolving %d placeholder(s) (limit %d)", len(urls), r.limit)

		g, gctx := errgroup.WithContext(ctx)
		if r.limit > 0 {
			g.SetLimit(r.limit)
		}
		for i, url := range urls {
			g.Go(func() error {
				blur, err := r.generator.Placeholder(gctx, url)
				if err != nil {
					return fmt.Errorf("placeholder for %s: %w", url, err)
				}
				blurs[i] = blur
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]domain.ImageDescriptor, len(imgs))
	for i, img := range imgs {
		if j, ok := index[img.URL]; ok && !img.IsEmpty() {
			out[i] = img.Describe(blurs[j])
			continue
		}
		out[i] = img.Describe("")
	}
	return out, nil
}
