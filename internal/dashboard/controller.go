package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/lib/sl"
	"github.com/vukan322/devdash/internal/metrics"
	"github.com/vukan322/devdash/internal/providers"
)

type Controller struct {
	log      *slog.Logger
	github   providers.Provider[core.GithubStats]
	leetcode providers.Provider[core.LeetcodeStats]
	clock    clock.Clock
	timeout  time.Duration
	inflight singleflight.Group
}

func New(
	log *slog.Logger,
	github providers.Provider[core.GithubStats],
	leetcode providers.Provider[core.LeetcodeStats],
	clk clock.Clock,
	timeout time.Duration,
) *Controller {
	return &Controller{
		log:      log,
		github:   github,
		leetcode: leetcode,
		clock:    clk,
		timeout:  timeout,
	}
}

// Refresh fetches both platforms and assembles a new dashboard. Only a
// primary failure is returned; a secondary failure degrades to the default
// LeetCode stats. Concurrent calls for the same handles share one refresh.
func (c *Controller) Refresh(ctx context.Context, h core.Handles) (core.Dashboard, error) {
	h.GitHub = strings.TrimSpace(h.GitHub)
	h.LeetCode = strings.TrimSpace(h.LeetCode)
	if h.GitHub == "" {
		return core.Dashboard{}, core.ErrMissingHandle
	}

	key := h.GitHub + "\x00" + h.LeetCode
	ch := c.inflight.DoChan(key, func() (any, error) {
		return c.refresh(context.WithoutCancel(ctx), h)
	})

	select {
	case <-ctx.Done():
		return core.Dashboard{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return core.Dashboard{}, res.Err
		}
		if res.Shared {
			c.log.Debug("joined in-flight refresh", slog.String("github", h.GitHub))
		}
		return res.Val.(core.Dashboard), nil
	}
}

func (c *Controller) refresh(ctx context.Context, h core.Handles) (core.Dashboard, error) {
	const op = "dashboard.refresh"
	log := c.log.With(
		slog.String("op", op),
		slog.String("github", h.GitHub),
		slog.String("leetcode", h.LeetCode),
	)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var (
		gh       core.GithubStats
		lc       = core.DefaultLeetcodeStats()
		degraded bool
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := c.github.Fetch(gctx, h.GitHub)
		if err != nil {
			return &core.FetchError{Platform: core.PlatformGitHub, Primary: true, Err: err}
		}
		gh = stats
		return nil
	})

	if h.LeetCode != "" {
		g.Go(func() error {
			stats, err := c.leetcode.Fetch(gctx, h.LeetCode)
			if err != nil {
				ferr := &core.FetchError{Platform: core.PlatformLeetCode, Err: err}
				log.Warn("secondary fetch failed, using defaults",
					slog.String("provider", c.leetcode.Name()),
					sl.Err(ferr),
				)
				degraded = true
				return nil
			}
			lc = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("refresh failed", sl.Err(err))
		metrics.ObserveRefresh(metrics.RefreshFailed)
		return core.Dashboard{}, err
	}

	now := c.clock.Now()
	coding := core.EstimateCodingHours(gh.Events, now)
	coding.TotalRepos = gh.Repositories

	dash := core.Dashboard{
		Handles: h,
		Stats: core.AggregatedStats{
			GitHub:   gh,
			LeetCode: lc,
			Coding:   coding,
		},
		Activities:  core.MergeActivities(gh.Feed(), lc.Feed()),
		MonthlyData: gh.MonthlyData,
		FetchedAt:   now,
	}

	result := metrics.RefreshOK
	if degraded {
		result = metrics.RefreshDegraded
	}
	metrics.ObserveRefresh(result)
	log.Info("refresh completed",
		slog.String("result", result),
		slog.Int("activities", len(dash.Activities)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return dash, nil
}
