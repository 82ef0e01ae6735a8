package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adfkit/adf/internal/migrate"
)

// ReviewPlan runs the interactive plan review and returns the MIGRATE
// records the user kept, or accepted=false when the review was
// cancelled.
func ReviewPlan(plan migrate.Plan) (kept []migrate.Record, accepted bool, err error) {
	model := newReviewModel(plan)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := final.(reviewModel)
	if !ok || m.cancelled {
		return nil, false, err
	}
	return m.kept(), true, nil
}

type reviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func defaultReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// reviewModel lets the user walk the MIGRATE records of a plan and
// deselect the ones that should not be applied.
type reviewModel struct {
	records   []migrate.Record
	included  []bool
	cursor    int
	keyMap    reviewKeyMap
	cancelled bool
	done      bool
}

func newReviewModel(plan migrate.Plan) reviewModel {
	included := make([]bool, len(plan.Migrate))
	for i := range included {
		included[i] = true
	}
	return reviewModel{
		records:  plan.Migrate,
		included: included,
		keyMap:   defaultReviewKeyMap(),
	}
}

// Init implements tea.Model.
func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keyMap.Down):
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keyMap.Toggle):
			if len(m.records) > 0 {
				m.included[m.cursor] = !m.included[m.cursor]
			}
		case key.Matches(msg, m.keyMap.Accept):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Quit):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m reviewModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Migration plan review"))
	b.WriteString("\n\n")

	for i, rec := range m.records {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "[x]"
		if !m.included[i] {
			mark = "[ ]"
		}
		line := fmt.Sprintf("%s%s %s → %s/%s", cursor, mark,
			truncate(rec.Text, 48), rec.TargetModule, rec.TargetSection)
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render(line))
		} else if m.included[i] {
			b.WriteString(line)
		} else {
			b.WriteString(MutedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("↑/↓ navigate • space toggle • enter apply • q cancel"))
	return b.String()
}

func (m reviewModel) kept() []migrate.Record {
	var out []migrate.Record
	for i, rec := range m.records {
		if m.included[i] {
			out = append(out, rec)
		}
	}
	return out
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
