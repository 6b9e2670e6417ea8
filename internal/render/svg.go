package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/vukan322/devdash/internal/core"
)

const (
	svgWidth  = 800
	svgHeight = 420

	progressWidth = 150

	chartX      = 430
	chartBottom = 200
	chartHeight = 110
	barWidth    = 36
	barGap      = 20
)

//go:embed templates/dashboard.svg.tmpl
var dashboardTemplate string

var dashboardTmpl = template.Must(
	template.New("dashboard").
		Funcs(template.FuncMap{
			"esc":   template.HTMLEscapeString,
			"addi":  func(a, b int) int { return a + b },
			"muli":  func(a, b int) int { return a * b },
			"color": colorHex,
		}).
		Parse(dashboardTemplate),
)

type bar struct {
	Label  string
	Value  int
	X      int
	Y      int
	Height int
}

type dashboardViewModel struct {
	Width  int
	Height int

	Title    string
	Subtitle string

	GitHub   core.GithubStats
	LeetCode core.LeetcodeStats
	Coding   core.CodingStats

	EasyBar   float64
	MediumBar float64
	HardBar   float64

	Bars       []bar
	Activities []core.ActivityRecord
	FetchedAt  string
}

func RenderSVG(d core.Dashboard) ([]byte, error) {
	subtitle := "github: " + d.Handles.GitHub
	if d.Handles.LeetCode != "" {
		subtitle += " · leetcode: " + d.Handles.LeetCode
	}

	lc := d.Stats.LeetCode
	vm := dashboardViewModel{
		Width:      svgWidth,
		Height:     svgHeight,
		Title:      "Developer Dashboard",
		Subtitle:   subtitle,
		GitHub:     d.Stats.GitHub,
		LeetCode:   lc,
		Coding:     d.Stats.Coding,
		EasyBar:    percent(lc.Easy, lc.EasyTotal) * progressWidth / 100,
		MediumBar:  percent(lc.Medium, lc.MediumTotal) * progressWidth / 100,
		HardBar:    percent(lc.Hard, lc.HardTotal) * progressWidth / 100,
		Bars:       buildBars(d.MonthlyData),
		Activities: d.Activities,
		FetchedAt:  d.FetchedAt.Format("2006-01-02 15:04 MST"),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("execute dashboard template: %w", err)
	}
	return buf.Bytes(), nil
}

func buildBars(points []core.MonthlyPoint) []bar {
	maxValue := 1
	for _, p := range points {
		if p.Contributions > maxValue {
			maxValue = p.Contributions
		}
	}

	bars := make([]bar, 0, len(points))
	for i, p := range points {
		h := p.Contributions * chartHeight / maxValue
		bars = append(bars, bar{
			Label:  p.Month,
			Value:  p.Contributions,
			X:      chartX + i*(barWidth+barGap),
			Y:      chartBottom - h,
			Height: h,
		})
	}
	return bars
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(part) / float64(total) * 100
	if p > 100 {
		return 100
	}
	return p
}

func colorHex(c core.ColorKey) string {
	switch c {
	case core.ColorPurple:
		return "#a371f7"
	case core.ColorOrange:
		return "#f0883e"
	default:
		return "#586069"
	}
}
