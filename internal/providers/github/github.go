package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/metrics"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "devdash/0.1"
	perPage          = 100
	activityLimit    = 6
)

// Display approximations carried over from the dashboard; none of these is
// a measured value.
const (
	contributionScale     = 10
	commitScale           = 2
	streakIncreasePercent = 12
	longestStreakOffset   = 20
)

type Options struct {
	BaseURL   string
	UserAgent string
	Token     string
	Timeout   time.Duration
	Clock     clock.Clock
}

type Provider struct {
	client    *http.Client
	baseURL   string
	userAgent string
	token     string
	clock     clock.Clock
}

func New(opts Options) *Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clock.Local{}
	}

	return &Provider{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: metrics.InstrumentTransport("github", nil),
		},
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		token:     opts.Token,
		clock:     opts.Clock,
	}
}

func (p *Provider) Name() string {
	return "github"
}

type githubUser struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
}

type githubEvent struct {
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload struct {
		Action      string            `json:"action"`
		Number      int               `json:"number"`
		RefType     string            `json:"ref_type"`
		Commits     []json.RawMessage `json:"commits"`
		PullRequest *struct {
			Number int `json:"number"`
		} `json:"pull_request"`
	} `json:"payload"`
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.GithubStats, error) {
	var (
		user   *githubUser
		events []githubEvent
		repos  []json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = p.fetchUser(gctx, handle)
		if err != nil {
			return fmt.Errorf("github: fetch user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		endpoint := fmt.Sprintf("%s/users/%s/events?per_page=%d", p.baseURL, url.PathEscape(handle), perPage)
		if err := p.getJSON(gctx, endpoint, &events); err != nil {
			return fmt.Errorf("github: fetch events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d", p.baseURL, url.PathEscape(handle), perPage)
		if err := p.getJSON(gctx, endpoint, &repos); err != nil {
			return fmt.Errorf("github: fetch repos: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return core.GithubStats{}, err
	}

	return buildStats(user, events, p.clock.Now()), nil
}

func buildStats(user *githubUser, raw []githubEvent, now time.Time) core.GithubStats {
	return Derive(user.PublicRepos, normalizeEvents(raw), now)
}

// Derive computes the dashboard figures from events in upstream order.
func Derive(publicRepos int, events []core.RawEvent, now time.Time) core.GithubStats {
	pushes, pulls, commits := 0, 0, 0
	for _, e := range events {
		switch e.Type {
		case core.EventPush:
			pushes++
			commits += e.Payload.Commits
		case core.EventPullRequest:
			pulls++
		}
	}

	streak := core.ComputeStreak(events, now)

	head := events
	if len(head) > activityLimit {
		head = head[:activityLimit]
	}

	return core.GithubStats{
		Contributions:         (pushes + pulls) * contributionScale,
		CurrentStreak:         streak,
		StreakIncreasePercent: streakIncreasePercent,
		Repositories:          publicRepos,
		PullRequests:          pulls,
		Commits:               commits * commitScale,
		LongestStreak:         streak + longestStreakOffset,
		MonthlyData:           core.MonthlyContributions(events, now),
		Activities:            buildActivities(head, now),
		Events:                events,
	}
}

// normalizeEvents drops events whose timestamp cannot be parsed, as if
// the upstream had never returned them.
func normalizeEvents(raw []githubEvent) []core.RawEvent {
	events := make([]core.RawEvent, 0, len(raw))
	for _, r := range raw {
		createdAt, err := core.ParseTimestamp(r.CreatedAt)
		if err != nil {
			continue
		}

		number := r.Payload.Number
		if r.Payload.PullRequest != nil {
			number = r.Payload.PullRequest.Number
		}

		events = append(events, core.RawEvent{
			Type:      core.EventType(r.Type),
			CreatedAt: createdAt,
			RepoName:  r.Repo.Name,
			Payload: core.EventPayload{
				Action:      r.Payload.Action,
				Commits:     len(r.Payload.Commits),
				PullRequest: number,
				RefType:     r.Payload.RefType,
			},
		})
	}
	return events
}

func buildActivities(events []core.RawEvent, now time.Time) []core.ActivityRecord {
	activities := make([]core.ActivityRecord, 0, len(events))
	for _, e := range events {
		var (
			action string
			icon   core.IconKey
		)

		switch e.Type {
		case core.EventPush:
			action = fmt.Sprintf("Pushed %d commits", e.Payload.Commits)
			icon = core.IconCommit
		case core.EventPullRequest:
			action = strings.TrimSpace(fmt.Sprintf("%s PR #%d", e.Payload.Action, e.Payload.PullRequest))
			icon = core.IconPullRequest
		case core.EventCreate:
			action = strings.TrimSpace("Created " + e.Payload.RefType)
			icon = core.IconBranch
		default:
			continue
		}

		activities = append(activities, core.ActivityRecord{
			Platform: core.PlatformGitHub,
			Action:   action,
			Project:  projectName(e.RepoName),
			Time:     core.RelativeTime(e.CreatedAt, now),
			Icon:     icon,
			Color:    core.ColorPurple,
		})
	}
	return activities
}

func projectName(repo string) string {
	if _, name, ok := strings.Cut(repo, "/"); ok {
		return name
	}
	return repo
}

func (p *Provider) fetchUser(ctx context.Context, handle string) (*githubUser, error) {
	endpoint := fmt.Sprintf("%s/users/%s", p.baseURL, url.PathEscape(handle))

	var u githubUser
	if err := p.getJSON(ctx, endpoint, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Provider) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	p.applyHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found: %s", endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (p *Provider) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", p.userAgent)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
}
