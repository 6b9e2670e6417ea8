package demo

import (
	"context"
	"time"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/providers/github"
	"github.com/vukan322/devdash/internal/providers/leetcode"
)

// GitHub serves a deterministic event history relative to the clock.
type GitHub struct {
	clock clock.Clock
}

func NewGitHub(c clock.Clock) *GitHub {
	return &GitHub{clock: c}
}

func (d *GitHub) Name() string {
	return "demo-github"
}

func (d *GitHub) Fetch(ctx context.Context, handle string) (core.GithubStats, error) {
	now := d.clock.Now()
	repo := handle + "/devdash"

	events := []core.RawEvent{
		{Type: core.EventPush, CreatedAt: now.Add(-12 * time.Minute), RepoName: repo, Payload: core.EventPayload{Commits: 3}},
		{Type: core.EventPullRequest, CreatedAt: now.Add(-4 * time.Hour), RepoName: repo, Payload: core.EventPayload{Action: "opened", PullRequest: 42}},
		{Type: core.EventCreate, CreatedAt: now.Add(-26 * time.Hour), RepoName: handle + "/dotfiles", Payload: core.EventPayload{RefType: "branch"}},
	}
	for i := 2; i < 40; i++ {
		events = append(events, core.RawEvent{
			Type:      core.EventPush,
			CreatedAt: now.AddDate(0, 0, -i*4),
			RepoName:  repo,
			Payload:   core.EventPayload{Commits: 1 + i%4},
		})
	}

	return github.Derive(12, events, now), nil
}

// LeetCode serves fixed solved counts and recent submissions.
type LeetCode struct {
	clock clock.Clock
}

func NewLeetCode(c clock.Clock) *LeetCode {
	return &LeetCode{clock: c}
}

func (d *LeetCode) Name() string {
	return "demo-leetcode"
}

func (d *LeetCode) Fetch(ctx context.Context, handle string) (core.LeetcodeStats, error) {
	now := d.clock.Now()

	subs := []core.RawSubmission{
		{Title: "Two Sum", TimestampSeconds: now.Add(-40 * time.Second).Unix(), StatusDisplay: "Accepted", Language: "golang"},
		{Title: "Word Ladder", TimestampSeconds: now.Add(-2 * time.Hour).Unix(), StatusDisplay: "Time Limit Exceeded", Language: "golang"},
		{Title: "Binary Tree Level Order Traversal", TimestampSeconds: now.Add(-3 * time.Hour).Unix(), StatusDisplay: "Accepted", Language: "golang"},
		{Title: "Coin Change", TimestampSeconds: now.AddDate(0, 0, -3).Unix(), StatusDisplay: "Accepted", Language: "golang"},
	}

	stats := core.DefaultLeetcodeStats()
	stats.Easy = 120
	stats.Medium = 85
	stats.Hard = 14
	stats.TotalSolved = stats.Easy + stats.Medium + stats.Hard
	stats.Ranking = "187342"
	stats.Reputation = 12
	stats.Activities = leetcode.BuildActivities(subs, now)

	return stats, nil
}
