package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// loginResultMsg carries the outcome of a credential check.
type loginResultMsg struct {
	user *domain.User
	err  error
}

// loginView is the authentication gate. Nothing else in the interface is
// reachable until a login succeeds.
type loginView struct {
	state    *SharedState
	username textinput.Model
	password textinput.Model
	roleIdx  int // index into loginRoles
	focused  int // 0 = username, 1 = password, 2 = role
	errText  string
	checking bool
}

// loginRoles lists the selectable roles, administrator first.
var loginRoles = []domain.Role{
	domain.RoleAdministrador,
	domain.RoleCoordinador,
	domain.RoleProfesor,
	domain.RoleEstudiante,
}

func newLoginView(state *SharedState) *loginView {
	username := textinput.New()
	username.Placeholder = "usuario"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginView{
		state:    state,
		username: username,
		password: password,
	}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cambiar campo")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "rol")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ingresar")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		v.checking = false
		if msg.err != nil {
			v.errText = "Usuario o contraseña incorrectos"
			v.password.SetValue("")
			return v, nil
		}
		v.state.App.Store.SetCurrentUser(msg.user)
		return v, replaceView(newDashboardView(v.state))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			v.setFocus((v.focused + 1) % 3)
			return v, nil
		case tea.KeyShiftTab, tea.KeyUp:
			v.setFocus((v.focused + 2) % 3)
			return v, nil
		case tea.KeyLeft, tea.KeyRight:
			if v.focused == 2 {
				delta := 1
				if msg.Type == tea.KeyLeft {
					delta = len(loginRoles) - 1
				}
				v.roleIdx = (v.roleIdx + delta) % len(loginRoles)
				return v, nil
			}
		case tea.KeyEnter:
			if v.focused < 2 {
				v.setFocus(v.focused + 1)
				return v, nil
			}
			return v, v.attempt()
		}
	}

	var cmd tea.Cmd
	if v.focused == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v *loginView) setFocus(field int) {
	v.focused = field
	v.username.Blur()
	v.password.Blur()
	switch field {
	case 0:
		v.username.Focus()
	case 1:
		v.password.Focus()
	}
}

func (v *loginView) attempt() tea.Cmd {
	v.checking = true
	v.errText = ""
	app := v.state.App
	username := v.username.Value()
	password := v.password.Value()
	role := loginRoles[v.roleIdx]
	return func() tea.Msg {
		user, err := app.Auth.Login(context.Background(), username, password, role)
		return loginResultMsg{user: user, err: err}
	}
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Ingreso") + "\n\n")
	b.WriteString("  " + v.username.View() + "\n")
	b.WriteString("  " + v.password.View() + "\n")
	roleLabel := string(loginRoles[v.roleIdx])
	if v.focused == 2 {
		b.WriteString("  " + formatter.Bold("Rol: ‹ "+roleLabel+" ›") + "\n\n")
	} else {
		b.WriteString("  " + formatter.Dim("Rol: "+roleLabel) + "\n\n")
	}
	if v.checking {
		b.WriteString("  " + formatter.Dim("Verificando...") + "\n")
	}
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n")
	}
	return b.String()
}
