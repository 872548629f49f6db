package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// appModel is the root bubbletea Model. It manages a view stack whose
// bottom view is the login gate until a session exists.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient one-line notice shown above the status bar.
	toast      string
	toastIsErr bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.viewStack = []View{newLoginView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
// The stack slice is shared, so a value receiver still lands the write.
func (m appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.clearToast()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.clearToast()
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views (e.g. a
		// section list) reload data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case navigateToSectionMsg:
		return m.navigateToSection(msg.name)

	case formCompleteMsg:
		// Atomically pop the form view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearToast()
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })

	case toastMsg:
		m.toast = msg.text
		m.toastIsErr = msg.isErr
		return m, nil

	case loggedOutMsg:
		m.state.App.Store.SetCurrentUser(nil)
		m.clearToast()
		login := newLoginView(m.state)
		m.viewStack = []View{login}
		return m, login.Init()
	}

	// Forward other messages (loads, blinks) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// navigateToSection rebuilds the stack as [dashboard, section], discarding
// whatever transient state the previous section injected. Unknown names are
// logged and ignored.
func (m appModel) navigateToSection(name string) (tea.Model, tea.Cmd) {
	m.clearToast()
	var section View
	if name == SectionCatalogos {
		section = newCatalogMenuView(m.state)
	} else if spec, ok := sectionSpecs[name]; ok {
		section = newSectionView(m.state, spec)
	} else {
		m.state.App.logger().WithField("section", name).Warn("unknown section")
		return m, nil
	}
	m.state.App.Store.SetActiveSection(name)

	dashboard := m.viewStack[0]
	if dashboard.ID() != ViewDashboard {
		dashboard = newDashboardView(m.state)
	}
	m.viewStack = []View{dashboard, section}
	return m, section.Init()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.toast != "" {
		m.clearToast()
	}

	// Views with their own text inputs receive every key, including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	if m.toast != "" {
		style := formatter.StyleGreen
		if m.toastIsErr {
			style = formatter.StyleRed
		}
		sections = append(sections, "  "+style.Render(m.toast))
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("claustro")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	// Right-align the session owner
	if u := m.state.App.Store.CurrentUser(); u != nil {
		name := formatter.StyleGreen.Render(u.Name)
		header += "  " + formatter.Dim("[") + name + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: volver"))
	}
	if m.activeView() != nil && m.activeView().ID() != ViewLogin {
		hints = append(hints, formatter.Dim("q: salir"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

func (m *appModel) clearToast() {
	m.toast = ""
	m.toastIsErr = false
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events, bypassing global keybindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewLogin, ViewForm:
		return true
	}
	if c, ok := v.(interface{ capturingInput() bool }); ok {
		return c.capturingInput()
	}
	return false
}
