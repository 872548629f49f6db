package tui

import (
	"testing"

	"github.com/dfrestrepo/claustro/internal/repository"
	"github.com/dfrestrepo/claustro/internal/service"
	"github.com/dfrestrepo/claustro/internal/store"
	"github.com/dfrestrepo/claustro/internal/teatest"
	"github.com/dfrestrepo/claustro/internal/testutil"
)

// testApp wires a full App against an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	return &App{
		Auth:       service.NewAuthService(repository.NewSQLiteUserRepo(database)),
		Professors: service.NewProfessorService(repository.NewSQLiteProfessorRepo(database)),
		Groups:     service.NewGroupService(repository.NewSQLiteGroupRepo(database)),
		Actas:      service.NewActaService(repository.NewSQLiteActaRepo(database)),
		Documentos: service.NewDocumentoService(repository.NewSQLiteDocumentoRepo(database)),
		Sites:      service.NewSiteService(repository.NewSQLiteSiteRepo(database)),
		WorkPlans:  service.NewWorkPlanService(repository.NewSQLiteWorkPlanRepo(database), uow),
		Improvement: service.NewImprovementService(
			repository.NewSQLiteImprovementPlanRepo(database),
			repository.NewSQLiteFactorRepo(database),
			repository.NewSQLiteActivityRepo(database),
		),
		Catalogs: service.NewCatalogService(
			repository.NewSQLiteFacultyRepo(database),
			repository.NewSQLiteProgramRepo(database),
			repository.NewSQLiteSubjectRepo(database),
			repository.NewSQLiteCatalogItemRepo(database),
		),
		Store:         store.New(),
		IsInteractive: func() bool { return true },
	}
}

// TestDriver wraps teatest.Driver with appModel inspection helpers the
// generic driver can't provide.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init(). The app starts on the login view.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Login submits the given credentials through the login view, keeping the
// default administrador role selected.
func (d *TestDriver) Login(username, password string) {
	d.T.Helper()
	d.Type(username)
	d.PressEnter() // moves focus to the password field
	d.Type(password)
	d.PressEnter() // moves focus to the role selector
	d.PressEnter() // submits
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	v := d.appModel().activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Toast returns the transient notice currently displayed, if any.
func (d *TestDriver) Toast() string {
	return d.appModel().toast
}

// IsQuitting reports whether the model saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
