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

// workPlanLoadedMsg delivers a freshly fetched plan to the detail view.
type workPlanLoadedMsg struct {
	plan *domain.WorkPlan
	err  error
}

// blockLabels maps plan blocks to their display names.
var blockLabels = map[domain.PlanBlock]string{
	domain.BlockDocencia:      "Docencia",
	domain.BlockApoyoDocencia: "Apoyo a la docencia",
	domain.BlockTrabajosGrado: "Trabajos de grado",
	domain.BlockInvestigacion: "Investigación",
	domain.BlockPDI:           "PDI",
	domain.BlockGestion:       "Gestión",
}

// workPlanDetailView shows one plan's blocks with their entries and the
// derived hour totals, and lets the user grow the plan block by block.
type workPlanDetailView struct {
	state   *SharedState
	planID  string
	plan    *domain.WorkPlan
	cursor  int // selected block, indexing domain.PlanBlocks
	loading bool
	err     error
}

func newWorkPlanDetailView(state *SharedState, planID string) *workPlanDetailView {
	return &workPlanDetailView{state: state, planID: planID, loading: true}
}

func (v *workPlanDetailView) ID() ViewID    { return ViewWorkPlanDetail }
func (v *workPlanDetailView) Title() string { return "Plan de trabajo" }

func (v *workPlanDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "agregar actividad")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cambiar estado")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
	}
}

func (v *workPlanDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *workPlanDetailView) load() tea.Cmd {
	app := v.state.App
	id := v.planID
	return func() tea.Msg {
		plan, err := app.WorkPlans.GetByID(context.Background(), id)
		return workPlanLoadedMsg{plan: plan, err: err}
	}
}

func (v *workPlanDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workPlanLoadedMsg:
		v.loading = false
		v.plan = msg.plan
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.plan == nil {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(domain.PlanBlocks)-1 {
				v.cursor++
			}
		case "a":
			if !v.plan.Editable() {
				return v, toastErr("El plan está firmado y no admite cambios.")
			}
			return v, planEntryFormCmd(v.state, v.plan, domain.PlanBlocks[v.cursor])
		case "t":
			return v, v.statusCmd()
		}
	}
	return v, nil
}

// statusCmd advances the plan along its lifecycle: draft to approved,
// approved to signed.
func (v *workPlanDetailView) statusCmd() tea.Cmd {
	app := v.state.App
	plan := v.plan
	var next domain.WorkPlanStatus
	switch plan.Status {
	case domain.PlanDraft:
		next = domain.PlanApproved
	case domain.PlanApproved:
		next = domain.PlanSigned
	default:
		return toastErr("El plan ya está firmado.")
	}
	return tea.Sequence(
		func() tea.Msg {
			err := app.WorkPlans.SetStatus(context.Background(), plan.ID, next)
			return saveResult(err, "Estado actualizado.")
		},
		refreshViews(),
	)
}

func (v *workPlanDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	plan := v.plan

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Plan de trabajo") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n\n",
		formatter.Bold(v.state.App.Store.ProfessorName(plan.ProfessorID)),
		formatter.Dim(plan.Period),
		formatter.StatusPill(string(plan.Status))))

	hours := plan.ComputeHours()
	perBlock := map[domain.PlanBlock]int{
		domain.BlockDocencia:      hours.Docencia,
		domain.BlockApoyoDocencia: hours.ApoyoDocencia,
		domain.BlockTrabajosGrado: hours.TrabajosGrado,
		domain.BlockInvestigacion: hours.Investigacion,
		domain.BlockPDI:           hours.PDI,
		domain.BlockGestion:       hours.Gestion,
	}

	for i, block := range domain.PlanBlocks {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			style.Render(formatter.PadRight(blockLabels[block], 24)),
			formatter.Dim(fmt.Sprintf("%d h", perBlock[block]))))

		for _, e := range plan.EntriesIn(block) {
			label := e.Description
			if block == domain.BlockDocencia {
				label = fmt.Sprintf("%s · grupo %s · %d h",
					v.subjectName(e.SubjectID), e.GroupName, e.Hours)
			}
			b.WriteString("      " + formatter.Dim("· "+label) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n",
		formatter.Bold("Total:"),
		formatter.StyleGreen.Render(fmt.Sprintf("%d horas", hours.Total))))
	return b.String()
}

func (v *workPlanDetailView) subjectName(id string) string {
	for _, s := range v.state.App.Store.Subjects() {
		if s.ID == id {
			return s.Name
		}
	}
	return "Sin asignatura"
}
