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

var catalogKindLabels = map[domain.CatalogKind]string{
	domain.CatalogActivityType:      "Tipos de actividad",
	domain.CatalogDeliveryForm:      "Formas de entrega",
	domain.CatalogVerificationMeans: "Medios de verificación",
	domain.CatalogPDIAction:         "Acciones PDI",
	domain.CatalogImprovementAction: "Acciones de mejoramiento",
}

// catalogMenuView is the submenu behind the "Catálogos" section. The first
// three entries are the academic hierarchy, the rest the simple catalogs.
type catalogMenuView struct {
	state  *SharedState
	cursor int
}

func newCatalogMenuView(state *SharedState) *catalogMenuView {
	return &catalogMenuView{state: state}
}

func (v *catalogMenuView) ID() ViewID    { return ViewCatalogMenu }
func (v *catalogMenuView) Title() string { return "Catálogos" }

func (v *catalogMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
	}
}

func (v *catalogMenuView) entries() []string {
	entries := []string{"Facultades", "Programas", "Asignaturas"}
	for _, kind := range domain.CatalogKinds {
		entries = append(entries, catalogKindLabels[kind])
	}
	return entries
}

func (v *catalogMenuView) Init() tea.Cmd { return nil }

func (v *catalogMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		entries := v.entries()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(entries)-1 {
				v.cursor++
			}
		case "enter":
			switch v.cursor {
			case 0:
				return v, pushView(newCatalogListView(v.state, facultyCatalogSpec()))
			case 1:
				return v, pushView(newCatalogListView(v.state, programCatalogSpec()))
			case 2:
				return v, pushView(newCatalogListView(v.state, subjectCatalogSpec()))
			default:
				kind := domain.CatalogKinds[v.cursor-3]
				return v, pushView(newCatalogListView(v.state, itemCatalogSpec(kind)))
			}
		}
	}
	return v, nil
}

func (v *catalogMenuView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Catálogos") + "\n\n")
	for i, entry := range v.entries() {
		if i == 3 {
			b.WriteString("\n")
		}
		if i == v.cursor {
			b.WriteString("  " + formatter.StyleGreen.Render("▸ ") + formatter.Bold(entry) + "\n")
		} else {
			b.WriteString("    " + entry + "\n")
		}
	}
	return b.String()
}

// catalogRow couples a table row with the commands that act on the loaded
// record, so the list view stays generic over the four catalog shapes.
type catalogRow struct {
	row    Row
	edit   func(state *SharedState) tea.Cmd
	remove func(ctx context.Context) error
}

type catalogSpec struct {
	title   string
	columns []Column
	load    func(ctx context.Context, state *SharedState) ([]catalogRow, error)
	create  func(state *SharedState) tea.Cmd
}

func facultyCatalogSpec() catalogSpec {
	return catalogSpec{
		title:   "Facultades",
		columns: []Column{{Title: "Nombre", Width: 40}},
		load: func(ctx context.Context, state *SharedState) ([]catalogRow, error) {
			app := state.App
			faculties, err := app.Catalogs.ListFaculties(ctx)
			if err != nil {
				return nil, err
			}
			state.App.Store.ReplaceFaculties(faculties)
			rows := make([]catalogRow, 0, len(faculties))
			for _, f := range faculties {
				f := f
				rows = append(rows, catalogRow{
					row: Row{ID: f.ID, Cells: []string{f.Name}},
					edit: func(state *SharedState) tea.Cmd {
						return facultyFormCmd(state, f)
					},
					remove: func(ctx context.Context) error {
						return app.Catalogs.DeleteFaculty(ctx, f.ID)
					},
				})
			}
			return rows, nil
		},
		create: func(state *SharedState) tea.Cmd {
			return facultyFormCmd(state, nil)
		},
	}
}

func programCatalogSpec() catalogSpec {
	return catalogSpec{
		title: "Programas",
		columns: []Column{
			{Title: "Nombre", Width: 36},
			{Title: "Facultad", Width: 28},
		},
		load: func(ctx context.Context, state *SharedState) ([]catalogRow, error) {
			app := state.App
			faculties, err := app.Catalogs.ListFaculties(ctx)
			if err != nil {
				return nil, err
			}
			state.App.Store.ReplaceFaculties(faculties)
			facultyNames := make(map[string]string, len(faculties))
			for _, f := range faculties {
				facultyNames[f.ID] = f.Name
			}
			programs, err := app.Catalogs.ListPrograms(ctx)
			if err != nil {
				return nil, err
			}
			state.App.Store.ReplacePrograms(programs)
			rows := make([]catalogRow, 0, len(programs))
			for _, p := range programs {
				p := p
				faculty := facultyNames[p.FacultyID]
				if faculty == "" {
					faculty = "No asignado"
				}
				rows = append(rows, catalogRow{
					row: Row{ID: p.ID, Cells: []string{p.Name, faculty}},
					edit: func(state *SharedState) tea.Cmd {
						return programFormCmd(state, p)
					},
					remove: func(ctx context.Context) error {
						return app.Catalogs.DeleteProgram(ctx, p.ID)
					},
				})
			}
			return rows, nil
		},
		create: func(state *SharedState) tea.Cmd {
			return programFormCmd(state, nil)
		},
	}
}

func subjectCatalogSpec() catalogSpec {
	return catalogSpec{
		title: "Asignaturas",
		columns: []Column{
			{Title: "Nombre", Width: 36},
			{Title: "Programa", Width: 28},
		},
		load: func(ctx context.Context, state *SharedState) ([]catalogRow, error) {
			app := state.App
			programs, err := app.Catalogs.ListPrograms(ctx)
			if err != nil {
				return nil, err
			}
			state.App.Store.ReplacePrograms(programs)
			programNames := make(map[string]string, len(programs))
			for _, p := range programs {
				programNames[p.ID] = p.Name
			}
			subjects, err := app.Catalogs.ListSubjects(ctx)
			if err != nil {
				return nil, err
			}
			state.App.Store.ReplaceSubjects(subjects)
			rows := make([]catalogRow, 0, len(subjects))
			for _, s := range subjects {
				s := s
				program := programNames[s.ProgramID]
				if program == "" {
					program = "No asignado"
				}
				rows = append(rows, catalogRow{
					row: Row{ID: s.ID, Cells: []string{s.Name, program}},
					edit: func(state *SharedState) tea.Cmd {
						return subjectFormCmd(state, s)
					},
					remove: func(ctx context.Context) error {
						return app.Catalogs.DeleteSubject(ctx, s.ID)
					},
				})
			}
			return rows, nil
		},
		create: func(state *SharedState) tea.Cmd {
			return subjectFormCmd(state, nil)
		},
	}
}

func itemCatalogSpec(kind domain.CatalogKind) catalogSpec {
	return catalogSpec{
		title:   catalogKindLabels[kind],
		columns: []Column{{Title: "Nombre", Width: 48}},
		load: func(ctx context.Context, state *SharedState) ([]catalogRow, error) {
			app := state.App
			items, err := app.Catalogs.ListItems(ctx, kind)
			if err != nil {
				return nil, err
			}
			rows := make([]catalogRow, 0, len(items))
			for _, item := range items {
				item := item
				rows = append(rows, catalogRow{
					row: Row{ID: item.ID, Cells: []string{item.Name}},
					edit: func(state *SharedState) tea.Cmd {
						return catalogItemFormCmd(state, kind, item)
					},
					remove: func(ctx context.Context) error {
						return app.Catalogs.DeleteItem(ctx, item.ID)
					},
				})
			}
			return rows, nil
		},
		create: func(state *SharedState) tea.Cmd {
			return catalogItemFormCmd(state, kind, nil)
		},
	}
}

// catalogLoadedMsg delivers the rows of one catalog list.
type catalogLoadedMsg struct {
	title string
	rows  []catalogRow
	err   error
}

// catalogListView is a searchable, paginated list over one catalog.
type catalogListView struct {
	state     *SharedState
	spec      catalogSpec
	table     tableModel
	records   []catalogRow
	loading   bool
	err       error
	searching bool

	// Pending delete confirmation, nil unless waiting for s/n.
	confirm *catalogRow
}

func newCatalogListView(state *SharedState, spec catalogSpec) *catalogListView {
	return &catalogListView{
		state:   state,
		spec:    spec,
		table:   newTableModel(spec.columns),
		loading: true,
	}
}

func (v *catalogListView) ID() ViewID    { return ViewCatalogMenu }
func (v *catalogListView) Title() string { return v.spec.title }

func (v *catalogListView) capturingInput() bool { return v.searching || v.confirm != nil }

func (v *catalogListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nuevo")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "eliminar")),
	}
}

func (v *catalogListView) Init() tea.Cmd {
	return v.load()
}

func (v *catalogListView) load() tea.Cmd {
	state := v.state
	spec := v.spec
	return func() tea.Msg {
		rows, err := spec.load(context.Background(), state)
		return catalogLoadedMsg{title: spec.title, rows: rows, err: err}
	}
}

func (v *catalogListView) selected() *catalogRow {
	row := v.table.SelectedRow()
	if row == nil {
		return nil
	}
	for i := range v.records {
		if v.records[i].row.ID == row.ID {
			return &v.records[i]
		}
	}
	return nil
}

func (v *catalogListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.title != v.spec.title {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.records = msg.rows
		rows := make([]Row, len(msg.rows))
		for i, r := range msg.rows {
			rows[i] = r.row
		}
		v.table.UpdateData(rows)
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.confirm != nil {
			rec := v.confirm
			v.confirm = nil
			if msg.String() == "s" {
				remove := rec.remove
				return v, tea.Sequence(
					func() tea.Msg {
						return saveResult(remove(context.Background()), "Registro eliminado.")
					},
					refreshViews(),
				)
			}
			return v, nil
		}
		if v.searching {
			switch msg.Type {
			case tea.KeyEsc:
				v.searching = false
				v.table.SetSearch("")
			case tea.KeyEnter:
				v.searching = false
			case tea.KeyBackspace:
				q := v.table.Search()
				if q != "" {
					v.table.SetSearch(q[:len(q)-1])
				}
			case tea.KeyRunes:
				v.table.SetSearch(v.table.Search() + string(msg.Runes))
			}
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			v.table.CursorUp()
		case "down", "j":
			v.table.CursorDown()
		case "left", "h", "pgup":
			v.table.PrevPage()
		case "right", "l", "pgdown":
			v.table.NextPage()
		case "/":
			v.searching = true
		case "n":
			return v, v.spec.create(v.state)
		case "e":
			if rec := v.selected(); rec != nil {
				return v, rec.edit(v.state)
			}
		case "d":
			if rec := v.selected(); rec != nil {
				v.confirm = rec
			}
		}
	}
	return v, nil
}

func (v *catalogListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(v.spec.title) + "\n\n")
	b.WriteString(v.table.View())
	if v.searching {
		b.WriteString("\n  " + formatter.StyleYellow.Render(fmt.Sprintf("Buscar: %s▌", v.table.Search())))
	}
	if v.confirm != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("¿Eliminar el registro seleccionado? (s/n)"))
	}
	return b.String()
}
