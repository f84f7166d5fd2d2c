package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-survive/internal/game"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = func() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["whole"] = Whole
	fm["title"] = Title
	fm["rule"] = Rule
	return fm
}()

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

const statusTemplate = `=== CHARACTER STATUS ===
Health: {{ whole .Vitals.Health }}/100
Hunger: {{ whole .Vitals.Hunger }}/100
Thirst: {{ whole .Vitals.Thirst }}/100
Fatigue: {{ whole .Vitals.Fatigue }}/100
Fuel: {{ whole .Vitals.Fuel }}/100
Inventory: {{ .Inventory.Len }} items ({{ printf "%.1f" .Inventory.Weight }}/{{ .Inventory.MaxWeight }} kg)
Location: {{ .Location }}
Days Survived: {{ .DaysSurvived }}
Zombie Kills: {{ .ZombieKills }}
{{- if .Vehicle.Current }}
Vehicle: {{ .Vehicle.Current }} ({{ .Vehicle.Condition }}%)
{{- end }}

Survivor Rank: {{ .Progress.Rank }}
Experience Points: {{ .Progress.Experience }}
Available Skill Points: {{ .Progress.SkillPoints }}
{{- if .Skills }}

Skills:
{{- range .Skills }}
  {{ title .Name }}: Level {{ .Level }} ({{ .Progress }}/5)
{{- end }}
{{- end }}
{{- if .Events.Active }}

Active Events:
{{- range .Events.Active }}
  {{ .Title }}{{ if .ExpiresIn }} (Expires in {{ .ExpiresIn }} days){{ else if .Duration }} ({{ .Duration }} days left){{ end }}
{{- end }}
{{- end }}
`

const gameOverTemplate = `{{ .Art }}

{{ .Cause }}

FINAL STATISTICS:
Days Survived: {{ .DaysSurvived }}
Zombies Killed: {{ .ZombieKills }}
Towns Visited: {{ join ", " .TownsVisited }}
Items Collected: {{ .DiscoveredItems.Len }}
{{- if .Vehicle.Current }}
Final Vehicle: {{ .Vehicle.Current }} ({{ .Vehicle.Condition }}%)
{{- end }}

Thank you for playing Zombie Survival Story!
`

const helpTemplate = `=== ZOMBIE SURVIVAL HELP ===

GAME COMMANDS:
- Enter a number to choose one of the actions listed at your location
- Or type part of an action's name, for example "search pharmacy"
- Type "use <item>" to use something you carry
- Enter [0] to access the global commands menu

GLOBAL COMMANDS (accessed via [0]):
  [1] Show detailed character status
  [2] Show inventory and use items
  [3] Save your current game
  [4] Load a previously saved game
  [5] Show this help screen
  [6] Quit game

SURVIVAL TIPS:
- Monitor your health, hunger, thirst, and fatigue
- Search locations for useful items
- Use items to restore your stats
- Find and repair vehicles for long-distance travel
- Be careful with your fuel - you might need to walk!
- Some locations may have zombies - be prepared!
- If your fatigue reaches {{ .CollapseAt }} you will collapse where you stand

VEHICLE SYSTEM:
- Find broken vehicles and repair them with parts
- Use vehicles to travel to distant towns and cities
- Each vehicle will eventually break down permanently
- You'll need to find new vehicles in each new area

GOAL:
Survive the zombie apocalypse and explore multiple towns,
or see how long you can survive in this dangerous world.
`

type skillRow struct {
	Name     string
	Level    int
	Progress int
}

type statusView struct {
	*game.State
	Skills []skillRow
}

// Status renders the detailed character sheet. Only skills that have been
// practiced are listed.
func Status(s *game.State) (string, error) {
	view := statusView{State: s}
	for _, sk := range game.Skills {
		n := s.Progress.Skills[sk]
		if n <= 0 {
			continue
		}
		view.Skills = append(view.Skills, skillRow{
			Name:     string(sk),
			Level:    game.SkillLevel(n),
			Progress: n % game.IncrementsPerLevel,
		})
	}
	return ExpandTemplate(statusTemplate, view)
}

type gameOverView struct {
	*game.State
	Art   string
	Cause game.Cause
}

// GameOver renders the final statistics screen.
func GameOver(s *game.State, cause game.Cause) (string, error) {
	return ExpandTemplate(gameOverTemplate, gameOverView{State: s, Art: strings.TrimRight(gameOverArt, "\n"), Cause: cause})
}

// Help renders the help screen.
func Help() (string, error) {
	out, err := ExpandTemplate(helpTemplate, map[string]any{
		"CollapseAt": game.CollapseThreshold,
	})
	return strings.TrimRight(out, "\n"), err
}
