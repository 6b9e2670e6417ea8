package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vukan322/devdash/internal/core"
)

var (
	purple = lipgloss.Color("#a371f7")
	orange = lipgloss.Color("#f0883e")
	blue   = lipgloss.Color("#58a6ff")
	muted  = lipgloss.Color("#8b949e")

	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	paneStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 1)
)

// Text renders a terminal summary of d.
func Text(d core.Dashboard) string {
	gh := d.Stats.GitHub
	lc := d.Stats.LeetCode
	coding := d.Stats.Coding

	github := pane(purple, "GitHub",
		fmt.Sprintf("Contributions  %d", gh.Contributions),
		fmt.Sprintf("Streak         %d days (+%d%%)", gh.CurrentStreak, gh.StreakIncreasePercent),
		fmt.Sprintf("Longest        %d days", gh.LongestStreak),
		fmt.Sprintf("Commits        %d", gh.Commits),
		fmt.Sprintf("Pull requests  %d", gh.PullRequests),
		fmt.Sprintf("Repositories   %d", gh.Repositories),
	)

	leetcode := pane(orange, "LeetCode",
		fmt.Sprintf("Solved   %d", lc.TotalSolved),
		fmt.Sprintf("Easy     %d/%d", lc.Easy, lc.EasyTotal),
		fmt.Sprintf("Medium   %d/%d", lc.Medium, lc.MediumTotal),
		fmt.Sprintf("Hard     %d/%d", lc.Hard, lc.HardTotal),
		fmt.Sprintf("Ranking  %s", lc.Ranking),
	)

	hours := pane(blue, "Coding",
		fmt.Sprintf("This month  %d h", coding.MonthlyHours),
		fmt.Sprintf("Per day     %.1f h", coding.AvgPerDay),
		fmt.Sprintf("Projects    %d", coding.ActiveProjects),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Developer Dashboard"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(d.Handles.GitHub))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, github, leetcode, hours))
	b.WriteString("\n")

	months := make([]string, 0, len(d.MonthlyData))
	for _, p := range d.MonthlyData {
		months = append(months, fmt.Sprintf("%s %d", p.Month, p.Contributions))
	}
	b.WriteString(mutedStyle.Render("Monthly: " + strings.Join(months, " · ")))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Recent activity"))
	b.WriteString("\n")
	if len(d.Activities) == 0 {
		b.WriteString(mutedStyle.Render("  no recent activity"))
		b.WriteString("\n")
	}
	for _, a := range d.Activities {
		line := a.Action
		if a.Project != "" {
			line += " · " + a.Project
		}
		if a.Difficulty != "" {
			line += " (" + string(a.Difficulty) + ")"
		}
		dot := lipgloss.NewStyle().Foreground(activityColor(a.Color)).Render("●")
		fmt.Fprintf(&b, "  %s %s %s\n", dot, line, mutedStyle.Render(a.Time))
	}

	return b.String()
}

func pane(accent lipgloss.Color, title string, lines ...string) string {
	header := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return paneStyle.Render(header + "\n" + strings.Join(lines, "\n"))
}

func activityColor(c core.ColorKey) lipgloss.Color {
	switch c {
	case core.ColorPurple:
		return purple
	case core.ColorOrange:
		return orange
	default:
		return muted
	}
}
