package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	SiteSetupKey       = "site_setup"
	IndexListingPrefix = "listing:index:%d"
)

// Content is mutated by an external admin system this service cannot observe,
// so cached entries rely on short TTLs rather than write-path invalidation.
const (
	SiteSetupTTL = 5 * time.Minute
	ListingTTL   = 1 * time.Minute
)

func IndexListingKey(page int) string {
	return fmt.Sprintf(IndexListingPrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateSiteSetup(ctx context.Context) {
	Invalidate(ctx, SiteSetupKey)
}
