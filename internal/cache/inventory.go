package cache

import (
	"context"
	"fmt"
	"time"
)

// Key inventory. Community aggregates share one short TTL; the post detail
// cache lives longer and is dropped explicitly whenever the post mutates.
const (
	CommunityStatsKey  = "community:stats"
	RecentActivityKey  = "community:recent-activity"
	TopContributorsKey = "community:top-contributors"
)

const (
	// CommunityTTL bounds staleness of the dashboard aggregates between
	// invalidating mutations.
	CommunityTTL = time.Minute

	// PostTTL applies to the by-slug post detail. View counts inside a
	// cached payload may lag; the counter itself is updated on every read.
	PostTTL = 30 * time.Minute
)

// PostSlugKey returns the cache key for a post detail looked up by slug.
func PostSlugKey(slug string) string {
	return fmt.Sprintf("post:slug:%s", slug)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateCommunity drops the dashboard aggregates. Called after any
// mutation that feeds the stats, the ranking, or the activity feed.
func InvalidateCommunity(ctx context.Context) {
	Invalidate(ctx, CommunityStatsKey, RecentActivityKey, TopContributorsKey)
}
