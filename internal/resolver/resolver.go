// Package resolver defines the provider boundary: everything with a
// provider-specific response shape lives behind IResolver, the rest of the
// app only ever sees media.Metadata and media.DirectURL.
package resolver

import (
	"context"
	"fmt"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/media"
)

type IResolver interface {
	// Valid reports whether this resolver handles the url. No network.
	Valid(url string) bool

	// Resolve fetches display metadata for the url.
	Resolve(ctx context.Context, url string) (*media.Metadata, error)

	// DirectURL obtains a byte-serving location for the url. Some providers
	// answer this already during Resolve, others need a second round trip.
	DirectURL(ctx context.Context, url string) (media.DirectURL, error)
}

// Pick returns the first resolver claiming the url, in registration order.
func Pick(resolvers []IResolver, url string) (IResolver, error) {
	if url == "" {
		return nil, common.ErrInvalidInput
	}

	for _, r := range resolvers {
		if r.Valid(url) {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: no resolver for %s", common.ErrInvalidInput, url)
}
