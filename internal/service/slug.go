// Package service holds the business logic between the HTTP handlers and the
// repositories.
package service

import (
	"context"
	"fmt"
	"strings"
)

// Slugify converts a title to a URL slug: lowercase, every run of characters
// outside [a-z0-9] collapses to a single hyphen, leading and trailing hyphens
// are trimmed. "Hello, World!" becomes "hello-world".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// uniqueSlug returns base if it is free, otherwise appends -2, -3, ... until
// an unused slug is found. Uniqueness is checked through exists, so callers
// plug in whichever table owns the slug.
func uniqueSlug(ctx context.Context, base string, exists func(context.Context, string) (bool, error)) (string, error) {
	taken, err := exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// EstimateReadTime derives reading minutes from the content word count at
// 200 words per minute, rounding up, never less than one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
