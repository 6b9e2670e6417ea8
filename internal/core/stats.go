package core

import "time"

type Platform string

const (
	PlatformGitHub   Platform = "github"
	PlatformLeetCode Platform = "leetcode"
)

type EventType string

const (
	EventPush        EventType = "PushEvent"
	EventPullRequest EventType = "PullRequestEvent"
	EventCreate      EventType = "CreateEvent"
)

// IconKey and ColorKey are resolved once when a record is built; the
// presentation layer only maps them to glyphs and palettes.
type IconKey string

const (
	IconCommit      IconKey = "commit"
	IconPullRequest IconKey = "pull-request"
	IconBranch      IconKey = "branch"
	IconCode        IconKey = "code"
)

type ColorKey string

const (
	ColorPurple ColorKey = "purple"
	ColorOrange ColorKey = "orange"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Handles struct {
	GitHub   string `json:"github" yaml:"github"`
	LeetCode string `json:"leetcode" yaml:"leetcode"`
}

type RawEvent struct {
	Type      EventType
	CreatedAt time.Time
	RepoName  string
	Payload   EventPayload
}

// EventPayload flattens the per-type payload fields the dashboard reads.
type EventPayload struct {
	Action      string
	Commits     int
	PullRequest int
	RefType     string
}

type RawSubmission struct {
	Title            string
	TimestampSeconds int64
	StatusDisplay    string
	Language         string
}

type ActivityRecord struct {
	Platform   Platform   `json:"platform" yaml:"platform"`
	Action     string     `json:"action" yaml:"action"`
	Project    string     `json:"project,omitempty" yaml:"project,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Time       string     `json:"time" yaml:"time"`
	Icon       IconKey    `json:"icon" yaml:"icon"`
	Color      ColorKey   `json:"color" yaml:"color"`
}

type MonthlyPoint struct {
	Month         string `json:"month" yaml:"month"`
	Contributions int    `json:"contributions" yaml:"contributions"`
}

type GithubStats struct {
	Contributions         int              `json:"contributions" yaml:"contributions"`
	CurrentStreak         int              `json:"currentStreak" yaml:"currentStreak"`
	StreakIncreasePercent int              `json:"streakIncrease" yaml:"streakIncrease"`
	Repositories          int              `json:"repositories" yaml:"repositories"`
	PullRequests          int              `json:"pullRequests" yaml:"pullRequests"`
	Commits               int              `json:"commits" yaml:"commits"`
	LongestStreak         int              `json:"longestStreak" yaml:"longestStreak"`
	MonthlyData           []MonthlyPoint   `json:"monthlyData" yaml:"monthlyData"`
	Activities            []ActivityRecord `json:"activities" yaml:"activities"`

	// Events backs the coding-hours estimate and is not part of the output.
	Events []RawEvent `json:"-" yaml:"-"`
}

func (s GithubStats) Feed() []ActivityRecord {
	return s.Activities
}

type LeetcodeStats struct {
	TotalSolved int              `json:"totalSolved" yaml:"totalSolved"`
	Easy        int              `json:"easy" yaml:"easy"`
	Medium      int              `json:"medium" yaml:"medium"`
	Hard        int              `json:"hard" yaml:"hard"`
	Ranking     string           `json:"ranking" yaml:"ranking"`
	Reputation  int              `json:"reputation" yaml:"reputation"`
	EasyTotal   int              `json:"easyTotal" yaml:"easyTotal"`
	MediumTotal int              `json:"mediumTotal" yaml:"mediumTotal"`
	HardTotal   int              `json:"hardTotal" yaml:"hardTotal"`
	Activities  []ActivityRecord `json:"activities" yaml:"activities"`
}

func (s LeetcodeStats) Feed() []ActivityRecord {
	return s.Activities
}

// Platform-wide problem counts shown as progress denominators.
const (
	LeetcodeEasyTotal   = 825
	LeetcodeMediumTotal = 1725
	LeetcodeHardTotal   = 750
)

const RankingUnavailable = "N/A"

// DefaultLeetcodeStats is substituted whenever the secondary fetch is skipped or fails.
func DefaultLeetcodeStats() LeetcodeStats {
	return LeetcodeStats{
		Ranking:     RankingUnavailable,
		EasyTotal:   LeetcodeEasyTotal,
		MediumTotal: LeetcodeMediumTotal,
		HardTotal:   LeetcodeHardTotal,
		Activities:  []ActivityRecord{},
	}
}

type CodingStats struct {
	MonthlyHours   int     `json:"monthlyHours" yaml:"monthlyHours"`
	AvgPerDay      float64 `json:"avgPerDay" yaml:"avgPerDay"`
	ActiveProjects int     `json:"activeProjects" yaml:"activeProjects"`
	TotalRepos     int     `json:"totalRepos" yaml:"totalRepos"`
}

type AggregatedStats struct {
	GitHub   GithubStats   `json:"github" yaml:"github"`
	LeetCode LeetcodeStats `json:"leetcode" yaml:"leetcode"`
	Coding   CodingStats   `json:"coding" yaml:"coding"`
}

// Dashboard is the complete output of one refresh cycle.
type Dashboard struct {
	Handles     Handles          `json:"handles" yaml:"handles"`
	Stats       AggregatedStats  `json:"stats" yaml:"stats"`
	Activities  []ActivityRecord `json:"activities" yaml:"activities"`
	MonthlyData []MonthlyPoint   `json:"monthlyData" yaml:"monthlyData"`
	FetchedAt   time.Time        `json:"fetchedAt" yaml:"fetchedAt"`
}
