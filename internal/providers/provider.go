package providers

import (
	"context"

	"github.com/vukan322/devdash/internal/core"
)

// Stats is what every provider variant derives: platform-specific counts
// plus a feed of normalized activity records.
type Stats interface {
	core.GithubStats | core.LeetcodeStats
	Feed() []core.ActivityRecord
}

type Provider[S Stats] interface {
	Name() string
	Fetch(ctx context.Context, handle string) (S, error)
}
