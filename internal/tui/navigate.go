package tui

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data after a
// mutation made above it.
type refreshViewMsg struct{}

// navigateToSectionMsg switches the interface to a named section. The
// appModel tears down whatever transient state the current view injected
// (toast, form remnants) before building the section view. Unknown names
// are logged and ignored.
type navigateToSectionMsg struct {
	name string
}

// toastMsg shows a transient one-line notice above the status bar.
type toastMsg struct {
	text  string
	isErr bool
}

// formCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// loggedOutMsg resets the interface back to the login gate.
type loggedOutMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// navigateToSection returns a tea.Cmd that switches sections.
func navigateToSection(name string) tea.Cmd {
	return func() tea.Msg { return navigateToSectionMsg{name: name} }
}

// toast returns a tea.Cmd that shows a notice.
func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// toastErr returns a tea.Cmd that shows an error notice.
func toastErr(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, isErr: true} }
}

// refreshViews returns a tea.Cmd that broadcasts a reload to the stack.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
