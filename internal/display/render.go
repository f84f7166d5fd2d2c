package display

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pixil98/go-survive/internal/game"
)

const barLength = 20

// Renderer styles text for one output. Colors are only emitted when the
// output is a terminal or color has been forced.
type Renderer struct {
	r *lipgloss.Renderer

	heading  lipgloss.Style
	good     lipgloss.Style
	fair     lipgloss.Style
	poor     lipgloss.Style
	notice   lipgloss.Style
	alert    lipgloss.Style
	moment   lipgloss.Style
	progress lipgloss.Style
}

type Option func(*lipgloss.Renderer)

// WithColor forces 256 color output, for connections that cannot be probed.
func WithColor() Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(termenv.ANSI256)
	}
}

func New(w io.Writer, opts ...Option) *Renderer {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}

	return &Renderer{
		r:        r,
		heading:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		good:     r.NewStyle().Foreground(lipgloss.Color("34")),
		fair:     r.NewStyle().Foreground(lipgloss.Color("220")),
		poor:     r.NewStyle().Foreground(lipgloss.Color("196")),
		notice:   r.NewStyle().Foreground(lipgloss.Color("220")),
		alert:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		moment:   r.NewStyle().Foreground(lipgloss.Color("86")),
		progress: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
}

// Whole rounds a vital up for display, so a survivor who is still alive never
// shows 0 health.
func Whole(v float64) int {
	return int(math.Ceil(v - 1e-9))
}

// Heading renders "=== title ===".
func (d *Renderer) Heading(title string) string {
	return d.heading.Render(fmt.Sprintf("=== %s ===", title))
}

// Banner frames a line of text between rules.
func (d *Renderer) Banner(title string, width int) string {
	rule := Rule(width)
	return strings.Join([]string{rule, d.heading.Render(title), rule}, "\n")
}

// Bar draws a 20 cell meter for a value out of 100.
func (d *Renderer) Bar(value float64) string {
	filled := int(value / game.MaxVital * barLength)
	filled = max(0, min(barLength, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)

	switch {
	case value <= 20:
		return d.poor.Render(bar)
	case value <= 50:
		return d.fair.Render(bar)
	default:
		return d.good.Render(bar)
	}
}

// StatusBar renders the vitals meters. Fatigue is shown as remaining energy
// so every bar reads fuller is better.
func (d *Renderer) StatusBar(v game.Vitals) string {
	rows := []struct {
		label string
		value float64
	}{
		{"Health:", v.Health},
		{"Hunger:", v.Hunger},
		{"Thirst:", v.Thirst},
		{"Energy:", game.MaxVital - v.Fatigue},
		{"Fuel:", v.Fuel},
	}

	var sb strings.Builder
	sb.WriteString(Rule(60) + "\n")
	sb.WriteString(d.heading.Render("STATUS") + "\n")
	sb.WriteString(Rule(60) + "\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-8s %s %d/100\n", row.label, d.Bar(row.value), Whole(row.value))
	}
	sb.WriteString(Rule(60))
	return sb.String()
}

// Warnings renders the warning block, or "" when all is well.
func (d *Renderer) Warnings(ws []game.Warning) string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(Rule(50) + "\n")
	sb.WriteString(d.alert.Render("STATUS WARNINGS") + "\n")
	sb.WriteString(Rule(50) + "\n")
	for _, w := range ws {
		style := d.notice
		if w.Severity >= game.SeveritySerious {
			style = d.alert
		}
		sb.WriteString(style.Render(w.Text) + "\n")
	}
	sb.WriteString(Rule(50))
	return sb.String()
}

var momentPrefixes = map[game.MomentKind]string{
	game.MomentSkillPoint:   "SKILL POINT!",
	game.MomentSkillLevelUp: "LEVEL UP!",
	game.MomentRankUp:       "RANK UP!",
	game.MomentCollapse:     "COLLAPSE!",
	game.MomentDiscovery:    "DISCOVERY!",
	game.MomentNewTown:      "NEW TOWN!",
}

// Moment renders one notable transition.
func (d *Renderer) Moment(m game.Moment) string {
	prefix, ok := momentPrefixes[m.Kind]
	if !ok {
		return d.moment.Render(m.Text)
	}
	return d.progress.Render(prefix) + " " + d.moment.Render(m.Text)
}

// Moments renders each moment on its own line.
func (d *Renderer) Moments(ms []game.Moment) string {
	lines := make([]string, 0, len(ms))
	for _, m := range ms {
		lines = append(lines, d.Moment(m))
	}
	return strings.Join(lines, "\n")
}

// Good, Bad and Warn style a single line of feedback.
func (d *Renderer) Good(s string) string { return d.good.Render(s) }
func (d *Renderer) Bad(s string) string  { return d.poor.Render(s) }
func (d *Renderer) Warn(s string) string { return d.notice.Render(s) }
