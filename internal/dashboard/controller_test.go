package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/dashboard"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/lib/sl"
	"github.com/vukan322/devdash/internal/providers/mocks"
)

var now = time.Date(2026, time.October, 10, 18, 0, 0, 0, time.UTC)

func githubFixture() core.GithubStats {
	events := make([]core.RawEvent, 0, 10)
	for i := 0; i < 10; i++ {
		events = append(events, core.RawEvent{
			Type:      core.EventPush,
			CreatedAt: time.Date(2026, time.October, 1+i%9, 9, 0, 0, 0, time.UTC),
		})
	}

	return core.GithubStats{
		Contributions: 100,
		CurrentStreak: 2,
		Repositories:  9,
		MonthlyData:   []core.MonthlyPoint{{Month: "Oct", Contributions: 50}},
		Activities: []core.ActivityRecord{
			{Platform: core.PlatformGitHub, Action: "Pushed 1 commits", Time: "2 days ago"},
			{Platform: core.PlatformGitHub, Action: "Created branch", Time: "3 minutes ago"},
		},
		Events: events,
	}
}

func leetcodeFixture() core.LeetcodeStats {
	stats := core.DefaultLeetcodeStats()
	stats.Easy, stats.Medium, stats.Hard, stats.TotalSolved = 1, 2, 3, 6
	stats.Ranking = "42"
	stats.Activities = []core.ActivityRecord{
		{Platform: core.PlatformLeetCode, Action: "Solved: Two Sum", Time: "5 hours ago"},
	}
	return stats
}

func newMocks(t *testing.T) (*mocks.Provider[core.GithubStats], *mocks.Provider[core.LeetcodeStats]) {
	gh := &mocks.Provider[core.GithubStats]{}
	gh.Test(t)
	lc := &mocks.Provider[core.LeetcodeStats]{}
	lc.Test(t)
	lc.On("Name").Return("leetcode").Maybe()
	t.Cleanup(func() {
		gh.AssertExpectations(t)
		lc.AssertExpectations(t)
	})
	return gh, lc
}

func newController(gh *mocks.Provider[core.GithubStats], lc *mocks.Provider[core.LeetcodeStats]) *dashboard.Controller {
	return dashboard.New(sl.NewDiscardLogger(), gh, lc, clock.Fixed{At: now}, time.Second)
}

func TestController_Refresh_Success(t *testing.T) {
	gh, lc := newMocks(t)
	gh.On("Fetch", mock.Anything, "octocat").Return(githubFixture(), nil).Once()
	lc.On("Fetch", mock.Anything, "lc-user").Return(leetcodeFixture(), nil).Once()

	dash, err := newController(gh, lc).Refresh(context.Background(), core.Handles{GitHub: "octocat", LeetCode: "lc-user"})
	require.NoError(t, err)

	assert.Equal(t, core.Handles{GitHub: "octocat", LeetCode: "lc-user"}, dash.Handles)
	assert.Equal(t, 100, dash.Stats.GitHub.Contributions)
	assert.Equal(t, leetcodeFixture(), dash.Stats.LeetCode)
	assert.Equal(t, core.CodingStats{MonthlyHours: 5, AvgPerDay: 0.5, ActiveProjects: 8, TotalRepos: 9}, dash.Stats.Coding)
	assert.Equal(t, githubFixture().MonthlyData, dash.MonthlyData)
	assert.Equal(t, now, dash.FetchedAt)

	require.Len(t, dash.Activities, 3)
	assert.Equal(t, "Created branch", dash.Activities[0].Action)
	assert.Equal(t, "Solved: Two Sum", dash.Activities[1].Action)
	assert.Equal(t, "Pushed 1 commits", dash.Activities[2].Action)
}

func TestController_Refresh_SecondaryFailureDegrades(t *testing.T) {
	gh, lc := newMocks(t)
	gh.On("Fetch", mock.Anything, "octocat").Return(githubFixture(), nil).Once()
	lc.On("Fetch", mock.Anything, "lc-user").Return(core.LeetcodeStats{}, errors.New("graphql error")).Once()

	dash, err := newController(gh, lc).Refresh(context.Background(), core.Handles{GitHub: "octocat", LeetCode: "lc-user"})
	require.NoError(t, err)

	assert.Equal(t, 100, dash.Stats.GitHub.Contributions)
	assert.Equal(t, core.DefaultLeetcodeStats(), dash.Stats.LeetCode)
	assert.Equal(t, "N/A", dash.Stats.LeetCode.Ranking)
	assert.Equal(t, 825, dash.Stats.LeetCode.EasyTotal)
	assert.Len(t, dash.Activities, 2)
}

func TestController_Refresh_PrimaryFailure(t *testing.T) {
	gh, lc := newMocks(t)
	upstream := errors.New("github: fetch user: unexpected status 500")
	gh.On("Fetch", mock.Anything, "octocat").Return(core.GithubStats{}, upstream).Once()
	lc.On("Fetch", mock.Anything, "lc-user").Return(leetcodeFixture(), nil).Maybe()

	dash, err := newController(gh, lc).Refresh(context.Background(), core.Handles{GitHub: "octocat", LeetCode: "lc-user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrFetchFailure)
	assert.ErrorIs(t, err, upstream)

	var ferr *core.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, core.PlatformGitHub, ferr.Platform)
	assert.Equal(t, core.Dashboard{}, dash)
}

func TestController_Refresh_MissingHandle(t *testing.T) {
	gh, lc := newMocks(t)

	_, err := newController(gh, lc).Refresh(context.Background(), core.Handles{GitHub: "  ", LeetCode: "lc-user"})

	assert.ErrorIs(t, err, core.ErrMissingHandle)
	gh.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	lc.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestController_Refresh_NoSecondaryHandle(t *testing.T) {
	gh, lc := newMocks(t)
	gh.On("Fetch", mock.Anything, "octocat").Return(githubFixture(), nil).Once()

	dash, err := newController(gh, lc).Refresh(context.Background(), core.Handles{GitHub: "octocat"})
	require.NoError(t, err)

	assert.Equal(t, core.DefaultLeetcodeStats(), dash.Stats.LeetCode)
	lc.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

type blockingGitHub struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingGitHub) Name() string { return "blocking" }

func (b *blockingGitHub) Fetch(ctx context.Context, handle string) (core.GithubStats, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	return githubFixture(), nil
}

func TestController_Refresh_SharesInFlightRefresh(t *testing.T) {
	gh := &blockingGitHub{started: make(chan struct{}), release: make(chan struct{})}
	lc := &mocks.Provider[core.LeetcodeStats]{}
	c := dashboard.New(sl.NewDiscardLogger(), gh, lc, clock.Fixed{At: now}, 0)

	h := core.Handles{GitHub: "octocat"}
	results := make([]core.Dashboard, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = c.Refresh(context.Background(), h)
	}()

	<-gh.started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = c.Refresh(context.Background(), h)
	}()

	time.Sleep(50 * time.Millisecond)
	close(gh.release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), gh.calls.Load())
	assert.Equal(t, results[0], results[1])
}

func TestController_Refresh_CallerCancelled(t *testing.T) {
	gh := &blockingGitHub{started: make(chan struct{}), release: make(chan struct{})}
	lc := &mocks.Provider[core.LeetcodeStats]{}
	c := dashboard.New(sl.NewDiscardLogger(), gh, lc, clock.Fixed{At: now}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Refresh(ctx, core.Handles{GitHub: "octocat"})
		done <- err
	}()

	<-gh.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	close(gh.release)
}
