package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfrestrepo/claustro/internal/store"
	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// dashboardLoadedMsg signals the counters finished loading.
type dashboardLoadedMsg struct {
	err error
}

// dashboardView is the home screen: per-collection counters plus the
// section menu.
type dashboardView struct {
	state   *SharedState
	cursor  int
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Inicio" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "contraseña")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cerrar sesión")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadCounts()
}

// loadCounts refetches every collection the counters summarize.
func (v *dashboardView) loadCounts() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		professors, err := app.Professors.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		app.Store.ReplaceProfessors(professors)
		if groups, err := app.Groups.List(ctx); err == nil {
			app.Store.ReplaceGroups(groups)
		}
		if actas, err := app.Actas.List(ctx); err == nil {
			app.Store.ReplaceActas(actas)
		}
		if docs, err := app.Documentos.List(ctx); err == nil {
			app.Store.ReplaceDocumentos(docs)
		}
		if sites, err := app.Sites.List(ctx); err == nil {
			app.Store.ReplaceSites(sites)
		}
		if plans, err := app.WorkPlans.List(ctx); err == nil {
			app.Store.ReplaceWorkPlans(plans)
		}
		if improvements, err := app.Improvement.ListPlans(ctx); err == nil {
			app.Store.ReplaceImprovements(improvements)
		}
		return dashboardLoadedMsg{}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadCounts()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(sectionOrder)-1 {
				v.cursor++
			}
		case "enter":
			return v, navigateToSection(sectionOrder[v.cursor])
		case "p":
			return v, changePasswordFormCmd(v.state)
		case "s":
			return v, func() tea.Msg { return loggedOutMsg{} }
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	s := v.state.App.Store
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Resumen") + "\n\n")

	counters := []struct {
		label string
		count int
	}{
		{"Profesores", s.Count(store.ColProfessors)},
		{"Grupos", s.Count(store.ColGroups)},
		{"Actas", s.Count(store.ColActas)},
		{"Documentos", s.Count(store.ColDocumentos)},
		{"Escenarios", s.Count(store.ColSites)},
		{"Planes de trabajo", s.Count(store.ColWorkPlans)},
		{"Planes de mejoramiento", s.Count(store.ColImprovement)},
	}
	for _, c := range counters {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			formatter.StyleGreen.Render(fmt.Sprintf("%3d", c.count)),
			c.label))
	}

	b.WriteString("\n  " + formatter.Header("Secciones") + "\n\n")
	for i, name := range sectionOrder {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(cursor + style.Render(sectionTitle(name)) + "\n")
	}
	return b.String()
}
