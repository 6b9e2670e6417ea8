package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/metrics"
)

const (
	defaultEndpoint  = "https://leetcode.com/graphql"
	defaultUserAgent = "devdash/0.1"
	activityLimit    = 3
	statusAccepted   = "Accepted"
)

const profileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
    }
    profile {
      ranking
      reputation
    }
  }
  recentSubmissionList(username: $username, limit: 20) {
    title
    timestamp
    statusDisplay
    lang
  }
}`

var errGraphQL = errors.New("graphql error")

type Options struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	Clock     clock.Clock
}

type Provider struct {
	client    *http.Client
	endpoint  string
	userAgent string
	clock     clock.Clock
}

func New(opts Options) *Provider {
	if opts.Endpoint == "" {
		opts.Endpoint = defaultEndpoint
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
			Transport: metrics.InstrumentTransport("leetcode", nil),
		},
		endpoint:  opts.Endpoint,
		userAgent: opts.UserAgent,
		clock:     opts.Clock,
	}
}

func (p *Provider) Name() string {
	return "leetcode"
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Data struct {
		MatchedUser *struct {
			Username    string `json:"username"`
			SubmitStats *struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
			Profile *struct {
				Ranking    *int `json:"ranking"`
				Reputation *int `json:"reputation"`
			} `json:"profile"`
		} `json:"matchedUser"`
		RecentSubmissionList []submission `json:"recentSubmissionList"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type submission struct {
	Title         string `json:"title"`
	Timestamp     string `json:"timestamp"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.LeetcodeStats, error) {
	resp, err := p.query(ctx, handle)
	if err != nil {
		return core.LeetcodeStats{}, fmt.Errorf("leetcode: fetch profile: %w", err)
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return core.LeetcodeStats{}, fmt.Errorf("leetcode: %w: %s", errGraphQL, strings.Join(msgs, "; "))
	}

	return buildStats(resp, p.clock.Now()), nil
}

func buildStats(resp *profileResponse, now time.Time) core.LeetcodeStats {
	stats := core.DefaultLeetcodeStats()

	if user := resp.Data.MatchedUser; user != nil {
		if user.SubmitStats != nil {
			for _, s := range user.SubmitStats.AcSubmissionNum {
				switch core.Difficulty(s.Difficulty) {
				case core.DifficultyEasy:
					stats.Easy = s.Count
				case core.DifficultyMedium:
					stats.Medium = s.Count
				case core.DifficultyHard:
					stats.Hard = s.Count
				}
			}
		}
		if user.Profile != nil {
			if user.Profile.Ranking != nil {
				stats.Ranking = strconv.Itoa(*user.Profile.Ranking)
			}
			if user.Profile.Reputation != nil {
				stats.Reputation = *user.Profile.Reputation
			}
		}
	}
	stats.TotalSolved = stats.Easy + stats.Medium + stats.Hard

	stats.Activities = BuildActivities(toRawSubmissions(resp.Data.RecentSubmissionList), now)
	return stats
}

// toRawSubmissions drops submissions whose timestamp is not a unix second count.
func toRawSubmissions(list []submission) []core.RawSubmission {
	subs := make([]core.RawSubmission, 0, len(list))
	for _, s := range list {
		ts, err := strconv.ParseInt(s.Timestamp, 10, 64)
		if err != nil {
			continue
		}
		subs = append(subs, core.RawSubmission{
			Title:            s.Title,
			TimestampSeconds: ts,
			StatusDisplay:    s.StatusDisplay,
			Language:         s.Lang,
		})
	}
	return subs
}

// BuildActivities keeps the first accepted submissions in upstream order. The
// difficulty is guessed from the title; the query does not request the
// problem's own difficulty.
func BuildActivities(subs []core.RawSubmission, now time.Time) []core.ActivityRecord {
	activities := make([]core.ActivityRecord, 0, activityLimit)
	for _, s := range subs {
		if len(activities) == activityLimit {
			break
		}
		if s.StatusDisplay != statusAccepted {
			continue
		}

		activities = append(activities, core.ActivityRecord{
			Platform:   core.PlatformLeetCode,
			Action:     "Solved: " + s.Title,
			Difficulty: core.GuessDifficulty(s.Title),
			Time:       core.RelativeTime(time.Unix(s.TimestampSeconds, 0), now),
			Icon:       core.IconCode,
			Color:      core.ColorOrange,
		})
	}
	return activities
}

func (p *Provider) query(ctx context.Context, handle string) (*profileResponse, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     profileQuery,
		Variables: map[string]any{"username": handle},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	// GraphQL errors may arrive with a non-2xx status; decode them when present.
	var out profileResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && len(out.Errors) > 0 {
			return &out, nil
		}
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, p.endpoint)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return &out, nil
}
