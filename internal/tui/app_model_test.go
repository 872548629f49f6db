package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/claustro/internal/testutil"
)

func TestTUI_StartsOnLoginGate(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.View(), "INGRESO")
}

func TestTUI_LoginWithSeededAdmin(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Login("admin", "admin123")

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	require.NotNil(t, app.Store.CurrentUser())
	assert.Equal(t, "admin", app.Store.CurrentUser().Username)
	assert.Contains(t, d.View(), "Administrador")
}

func TestTUI_LoginRejectsWrongPassword(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Login("admin", "wrong")

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Nil(t, app.Store.CurrentUser())
	assert.Contains(t, d.View(), "Usuario o contraseña incorrectos")
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_NavigateToSectionFromDashboard(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	// The first menu entry is Documentos.
	d.PressEnter()

	assert.Equal(t, ViewSection, d.ActiveViewID())
	assert.Equal(t, "Documentos", d.ActiveViewTitle())
	assert.Equal(t, []ViewID{ViewDashboard, ViewSection}, d.ViewStackIDs())
	assert.Equal(t, SectionDocumentos, app.Store.ActiveSection())
}

func TestTUI_SectionSwitchTearsDownPrevious(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	d.PressEnter() // Documentos
	d.PressEsc()   // back to dashboard
	d.PressDown()
	d.PressEnter() // Grupos

	assert.Equal(t, "Grupos", d.ActiveViewTitle())
	assert.Equal(t, []ViewID{ViewDashboard, ViewSection}, d.ViewStackIDs())
	assert.Equal(t, SectionGrupos, app.Store.ActiveSection())
}

func TestTUI_UnknownSectionIsIgnored(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	before := d.ViewStackIDs()
	d.Send(navigateToSectionMsg{name: "inventada"})

	assert.Equal(t, before, d.ViewStackIDs())
}

func TestTUI_EscPopsBackToDashboard(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	d.PressEnter()
	require.Equal(t, 2, d.ViewStackLen())

	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_CancelledFormReturnsToSection(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	// Navigate to Profesores (third entry).
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	require.Equal(t, "Profesores", d.ActiveViewTitle())

	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 3, d.ViewStackLen())

	d.PressEsc()

	assert.Equal(t, ViewSection, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Equal(t, "Cancelado.", d.Toast())
}

func TestTUI_DeleteRefreshesSectionAndShowsToast(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestProfessor("Elena Ruiz")
	require.NoError(t, app.Professors.Create(context.Background(), p))

	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	require.Equal(t, "Profesores", d.ActiveViewTitle())
	require.Contains(t, d.View(), "Elena Ruiz")

	d.PressKey('d')
	require.Contains(t, d.View(), "¿Eliminar el registro seleccionado?")
	d.PressKey('s')

	assert.Equal(t, "Profesor eliminado.", d.Toast())
	assert.NotContains(t, d.View(), "Elena Ruiz")
	assert.Empty(t, app.Store.Professors())
}

func TestTUI_DeleteCanBeCancelled(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestProfessor("Elena Ruiz")
	require.NoError(t, app.Professors.Create(context.Background(), p))

	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")
	d.PressDown()
	d.PressDown()
	d.PressEnter()

	d.PressKey('d')
	d.PressKey('n') // anything but s cancels

	assert.Contains(t, d.View(), "Elena Ruiz")
	assert.Len(t, app.Store.Professors(), 1)
}

func TestTUI_ExportEmptySectionOnlyWarns(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")
	d.PressEnter() // Documentos, empty

	d.PressKey('x')

	assert.Equal(t, "Nada que exportar.", d.Toast())
}

func TestTUI_LogoutResetsToLogin(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")
	require.Equal(t, ViewDashboard, d.ActiveViewID())

	d.PressKey('s')

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Nil(t, app.Store.CurrentUser())
}

func TestTUI_DashboardShowsCounters(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestProfessor("Jorge Paz")
	require.NoError(t, app.Professors.Create(context.Background(), p))

	d := NewTestDriver(t, app)
	d.Login("admin", "admin123")

	view := d.View()
	assert.Contains(t, view, "Profesores")
	assert.Contains(t, view, "claustro")
}
