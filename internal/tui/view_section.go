package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfrestrepo/claustro/internal/export"
	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// sectionView is the generic list screen every section shares: a
// paginated table over the section's store collection, incremental
// search, and keys for the section's forms.
type sectionView struct {
	state   *SharedState
	spec    *sectionSpec
	table   tableModel
	loading bool
	err     error

	// Search entry mode
	searching   bool
	searchInput string

	// Pending delete confirmation; set to the row id while waiting for s/n.
	confirmID string
}

func newSectionView(state *SharedState, spec *sectionSpec) *sectionView {
	return &sectionView{
		state:   state,
		spec:    spec,
		table:   newTableModel(spec.columns),
		loading: true,
	}
}

func (v *sectionView) ID() ViewID    { return ViewSection }
func (v *sectionView) Title() string { return v.spec.title }

func (v *sectionView) capturingInput() bool { return v.searching || v.confirmID != "" }

func (v *sectionView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nuevo")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "eliminar")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exportar")),
	}
	if v.spec.open != nil {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")))
	}
	return bindings
}

func (v *sectionView) Init() tea.Cmd {
	return v.spec.load(v.state.App)
}

func (v *sectionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionLoadedMsg:
		if msg.name != v.spec.name {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.table.UpdateData(v.spec.rows(v.state.App))
		}
		return v, nil

	case refreshViewMsg:
		return v, v.spec.load(v.state.App)

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		if v.confirmID != "" {
			return v.updateConfirm(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

// updateConfirm handles the blocking delete confirmation: s deletes, any
// other key cancels.
func (v *sectionView) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := v.confirmID
	v.confirmID = ""
	if msg.String() == "s" && v.spec.remove != nil {
		return v, tea.Sequence(v.spec.remove(v.state.App, id), refreshViews())
	}
	return v, nil
}

func (v *sectionView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		v.searchInput = v.table.Search()
	case "n":
		if v.spec.create != nil {
			return v, v.spec.create(v.state)
		}
	case "e":
		if row := v.table.SelectedRow(); row != nil && v.spec.edit != nil {
			return v, v.spec.edit(v.state, row.ID)
		}
	case "d":
		if row := v.table.SelectedRow(); row != nil && v.spec.remove != nil {
			v.confirmID = row.ID
		}
	case "x":
		return v, v.exportCmd()
	case "enter":
		if row := v.table.SelectedRow(); row != nil && v.spec.open != nil {
			return v, v.spec.open(v.state, row.ID)
		}
	}
	return v, nil
}

func (v *sectionView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.searchInput = ""
		v.table.SetSearch("")
	case tea.KeyEnter:
		v.searching = false
	case tea.KeyBackspace:
		if len(v.searchInput) > 0 {
			v.searchInput = v.searchInput[:len(v.searchInput)-1]
			v.table.SetSearch(v.searchInput)
		}
	default:
		if msg.Type == tea.KeyRunes {
			v.searchInput += string(msg.Runes)
			v.table.SetSearch(v.searchInput)
		}
	}
	return v, nil
}

// exportCmd writes the filtered rows to a spreadsheet. Export failures
// never take the section down: the error is logged and shown as a toast.
func (v *sectionView) exportCmd() tea.Cmd {
	app := v.state.App
	if len(v.table.VisibleRows()) == 0 {
		return toast("Nada que exportar.")
	}
	header := v.table.Header()
	rows := make([][]string, 0, len(v.table.VisibleRows()))
	for _, r := range v.table.VisibleRows() {
		rows = append(rows, r.Cells)
	}
	name := v.spec.name
	title := v.spec.title
	return func() tea.Msg {
		dir := os.Getenv("CLAUSTRO_EXPORT_DIR")
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir,
			fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102-150405")))
		if err := export.WriteXLSX(path, title, header, rows); err != nil {
			app.logger().WithError(err).WithField("section", name).Warn("export failed")
			return toastMsg{text: "No se pudo exportar: " + err.Error(), isErr: true}
		}
		return toastMsg{text: "Exportado a " + path}
	}
}

func (v *sectionView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.searching {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.searchInput + "█\n\n")
	}
	b.WriteString(v.table.View())
	if v.confirmID != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render("¿Eliminar el registro seleccionado? (s/n)"))
	}
	return b.String()
}
