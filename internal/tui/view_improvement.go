package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// factorsLoadedMsg delivers a plan's factors.
type factorsLoadedMsg struct {
	factors []*domain.ImprovementFactor
	err     error
}

// factorListView lists the factors of one improvement plan.
type factorListView struct {
	state   *SharedState
	plan    *domain.ImprovementPlan
	factors []*domain.ImprovementFactor
	cursor  int
	loading bool
	err     error

	// Pending delete confirmation; empty unless waiting for s/n.
	confirmID string
}

func (v *factorListView) capturingInput() bool { return v.confirmID != "" }

func newFactorListView(state *SharedState, plan *domain.ImprovementPlan) *factorListView {
	return &factorListView{state: state, plan: plan, loading: true}
}

func (v *factorListView) ID() ViewID    { return ViewImprovementDetail }
func (v *factorListView) Title() string { return v.plan.Name }

func (v *factorListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actividades")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nuevo")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "eliminar")),
	}
}

func (v *factorListView) Init() tea.Cmd {
	return v.load()
}

func (v *factorListView) load() tea.Cmd {
	app := v.state.App
	planID := v.plan.ID
	return func() tea.Msg {
		factors, err := app.Improvement.ListFactors(context.Background(), planID)
		return factorsLoadedMsg{factors: factors, err: err}
	}
}

func (v *factorListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case factorsLoadedMsg:
		v.loading = false
		v.factors = msg.factors
		v.err = msg.err
		if v.cursor >= len(v.factors) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.confirmID != "" {
			id := v.confirmID
			v.confirmID = ""
			if msg.String() == "s" {
				app := v.state.App
				// The factor's activities survive the delete.
				return v, tea.Sequence(
					func() tea.Msg {
						return saveResult(app.Improvement.DeleteFactor(context.Background(), id),
							"Factor eliminado.")
					},
					refreshViews(),
				)
			}
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.factors)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.factors) {
				return v, pushView(newActivityListView(v.state, v.factors[v.cursor]))
			}
		case "n":
			return v, factorFormCmd(v.state, v.plan.ID, nil)
		case "e":
			if v.cursor < len(v.factors) {
				return v, factorFormCmd(v.state, v.plan.ID, v.factors[v.cursor])
			}
		case "d":
			if v.cursor < len(v.factors) {
				v.confirmID = v.factors[v.cursor].ID
			}
		}
	}
	return v, nil
}

func (v *factorListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Factores") + "\n\n")
	if len(v.factors) == 0 {
		b.WriteString("  " + formatter.Dim("Sin factores.") + "\n")
		return b.String()
	}
	for i, f := range v.factors {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			formatter.Dim(fmt.Sprintf("%2d.", f.Number)),
			style.Render(f.Name)))
	}
	if v.confirmID != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render("¿Eliminar el factor seleccionado? Sus actividades quedarán huérfanas. (s/n)"))
	}
	return b.String()
}

// activitiesLoadedMsg delivers a factor's activities.
type activitiesLoadedMsg struct {
	activities []*domain.ImprovementActivity
	err        error
}

// activityListView lists the activities of one factor.
type activityListView struct {
	state      *SharedState
	factor     *domain.ImprovementFactor
	activities []*domain.ImprovementActivity
	cursor     int
	loading    bool
	err        error

	confirmID string
}

func (v *activityListView) capturingInput() bool { return v.confirmID != "" }

func newActivityListView(state *SharedState, factor *domain.ImprovementFactor) *activityListView {
	return &activityListView{state: state, factor: factor, loading: true}
}

func (v *activityListView) ID() ViewID    { return ViewImprovementDetail }
func (v *activityListView) Title() string { return v.factor.Name }

func (v *activityListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nueva")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "eliminar")),
	}
}

func (v *activityListView) Init() tea.Cmd {
	return v.load()
}

func (v *activityListView) load() tea.Cmd {
	app := v.state.App
	factorID := v.factor.ID
	return func() tea.Msg {
		activities, err := app.Improvement.ListActivities(context.Background(), factorID)
		return activitiesLoadedMsg{activities: activities, err: err}
	}
}

func (v *activityListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		v.loading = false
		v.activities = msg.activities
		v.err = msg.err
		if v.cursor >= len(v.activities) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.confirmID != "" {
			id := v.confirmID
			v.confirmID = ""
			if msg.String() == "s" {
				app := v.state.App
				return v, tea.Sequence(
					func() tea.Msg {
						return saveResult(app.Improvement.DeleteActivity(context.Background(), id),
							"Actividad eliminada.")
					},
					refreshViews(),
				)
			}
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.activities)-1 {
				v.cursor++
			}
		case "n":
			return v, activityFormCmd(v.state, v.factor.ID, nil)
		case "e":
			if v.cursor < len(v.activities) {
				return v, activityFormCmd(v.state, v.factor.ID, v.activities[v.cursor])
			}
		case "d":
			if v.cursor < len(v.activities) {
				v.confirmID = v.activities[v.cursor].ID
			}
		}
	}
	return v, nil
}

func (v *activityListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Actividades") + "\n\n")
	if len(v.activities) == 0 {
		b.WriteString("  " + formatter.Dim("Sin actividades.") + "\n")
		return b.String()
	}
	for i, a := range v.activities {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		deadline := formatter.Dim("sin fecha")
		if a.Deadline != nil {
			deadline = formatter.Dim(a.Deadline.Format("2006-01-02"))
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			style.Render(formatter.PadRight(a.Description, 40)),
			formatter.Dim(a.Responsible),
			deadline))
	}
	if v.confirmID != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render("¿Eliminar la actividad seleccionada? (s/n)"))
	}
	return b.String()
}
