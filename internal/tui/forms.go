package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/upload"
)

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("este campo es obligatorio")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use el formato YYYY-MM-DD")
	}
	return nil
}

// validateOptionalInt accepts empty or a non-negative integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("ingrese un número no negativo")
	}
	return nil
}

func parseDateField(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func dateField(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// saveResult turns a service error into a toast.
func saveResult(err error, okText string) tea.Msg {
	if err != nil {
		return toastMsg{text: "Error: " + err.Error(), isErr: true}
	}
	return toastMsg{text: okText}
}

// advisorOptions builds the professor selector options for weak advisor
// references. The empty option keeps the reference unset.
func advisorOptions(state *SharedState) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("No asignado", "")}
	for _, p := range state.App.Store.Professors() {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}
	return options
}

func professorFormCmd(state *SharedState, existing *domain.Professor) tea.Cmd {
	p := &domain.Professor{}
	title := "Nuevo profesor"
	if existing != nil {
		copied := *existing
		p = &copied
		title = "Editar profesor"
	}

	var photoPath, cvPath string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nombre").Value(&p.Name).Validate(validateRequired),
		huh.NewInput().Title("Identificación").Value(&p.Identification).Validate(validateRequired),
		huh.NewInput().Title("Correo").Value(&p.Email),
		huh.NewInput().Title("Teléfono").Value(&p.Phone),
		huh.NewInput().Title("Rol").Value(&p.Role),
		huh.NewInput().Title("Especialidad").Value(&p.Specialty),
		huh.NewText().Title("Perfil").Value(&p.Profile).Lines(3),
		huh.NewInput().Title("Foto (ruta, opcional)").Value(&photoPath),
		huh.NewInput().Title("CV (ruta, opcional)").Value(&cvPath),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			if photoPath != "" {
				data, err := upload.DataURL(photoPath)
				if err != nil {
					return saveResult(fmt.Errorf("foto: %w", err), "")
				}
				p.Photo = data
			}
			if cvPath != "" {
				data, err := upload.DataURL(cvPath)
				if err != nil {
					return saveResult(fmt.Errorf("cv: %w", err), "")
				}
				p.CV = data
			}
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Professors.Create(ctx, p)
			} else {
				err = app.Professors.Update(ctx, p)
			}
			return saveResult(err, "Profesor guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func groupFormCmd(state *SharedState, existing *domain.Group) tea.Cmd {
	g := &domain.Group{}
	title := "Nuevo grupo"
	if existing != nil {
		copied := *existing
		g = &copied
		title = "Editar grupo"
	}
	date := dateField(g.Date)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nombre").Value(&g.Name).Validate(validateRequired),
		huh.NewInput().Title("Fecha (YYYY-MM-DD)").Value(&date).Validate(validateOptionalDate),
		huh.NewText().Title("Descripción").Value(&g.Description).Lines(2),
		huh.NewText().Title("Características").Value(&g.Features).Lines(2),
		huh.NewSelect[string]().Title("Asesor").
			Options(advisorOptions(state)...).
			Value(&g.AdvisorID),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			g.Date = parseDateField(date)
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Groups.Create(ctx, g)
			} else {
				err = app.Groups.Update(ctx, g)
			}
			return saveResult(err, "Grupo guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func documentoFormCmd(state *SharedState, existing *domain.Documento) tea.Cmd {
	d := &domain.Documento{}
	title := "Nuevo documento"
	if existing != nil {
		copied := *existing
		d = &copied
		title = "Editar documento"
	}
	date := dateField(d.Date)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Título").Value(&d.Title).Validate(validateRequired),
		huh.NewInput().Title("Tipo").Value(&d.Type),
		huh.NewInput().Title("Fecha (YYYY-MM-DD)").Value(&date).Validate(validateOptionalDate),
		huh.NewText().Title("Propósito").Value(&d.Purpose).Lines(2),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			d.Date = parseDateField(date)
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Documentos.Create(ctx, d)
			} else {
				err = app.Documentos.Update(ctx, d)
			}
			return saveResult(err, "Documento guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func actaFormCmd(state *SharedState, existing *domain.Acta) tea.Cmd {
	a := &domain.Acta{}
	title := "Nueva acta"
	if existing != nil {
		copied := *existing
		a = &copied
		title = "Editar acta"
	}
	date := dateField(a.Date)

	docOptions := []huh.Option[string]{huh.NewOption("N/A", "")}
	for _, d := range state.App.Store.Documentos() {
		docOptions = append(docOptions, huh.NewOption(d.Title, d.ID))
	}

	var photo1Path, photo2Path string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Grupo").Value(&a.Group).Validate(validateRequired),
		huh.NewInput().Title("Asesor").Value(&a.AdvisorName),
		huh.NewInput().Title("Fecha (YYYY-MM-DD)").Value(&date).Validate(validateOptionalDate),
		huh.NewInput().Title("Tipo").Value(&a.Type),
		huh.NewSelect[string]().Title("Documento vinculado").
			Options(docOptions...).
			Value(&a.LinkedDocID),
		huh.NewText().Title("Logros").Value(&a.Logros).Lines(2),
		huh.NewText().Title("Acuerdos").Value(&a.Acuerdos).Lines(2),
		huh.NewText().Title("Síntesis").Value(&a.Sintesis).Lines(2),
		huh.NewInput().Title("Enlace PDF").Value(&a.PDFUrl),
		huh.NewInput().Title("Evidencia 1 (ruta, opcional)").Value(&photo1Path),
		huh.NewInput().Title("Evidencia 2 (ruta, opcional)").Value(&photo2Path),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			a.Date = parseDateField(date)
			if photo1Path != "" {
				data, err := upload.DataURL(photo1Path)
				if err != nil {
					return saveResult(fmt.Errorf("evidencia 1: %w", err), "")
				}
				a.Photo1 = data
			}
			if photo2Path != "" {
				data, err := upload.DataURL(photo2Path)
				if err != nil {
					return saveResult(fmt.Errorf("evidencia 2: %w", err), "")
				}
				a.Photo2 = data
			}
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Actas.Create(ctx, a)
			} else {
				err = app.Actas.Update(ctx, a)
			}
			return saveResult(err, "Acta guardada.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func siteFormCmd(state *SharedState, existing *domain.PracticumSite) tea.Cmd {
	s := &domain.PracticumSite{}
	title := "Nuevo escenario de práctica"
	if existing != nil {
		copied := *existing
		s = &copied
		title = "Editar escenario de práctica"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Empresa").Value(&s.CompanyName).Validate(validateRequired),
		huh.NewInput().Title("Dependencia").Value(&s.Department),
		huh.NewInput().Title("Contacto").Value(&s.ContactName),
		huh.NewSelect[string]().Title("Docente responsable").
			Options(advisorOptions(state)...).
			Value(&s.ProfessorID),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Sites.Create(ctx, s)
			} else {
				err = app.Sites.Update(ctx, s)
			}
			return saveResult(err, "Escenario guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func improvementPlanFormCmd(state *SharedState, existing *domain.ImprovementPlan) tea.Cmd {
	p := &domain.ImprovementPlan{}
	title := "Nuevo plan de mejoramiento"
	if existing != nil {
		copied := *existing
		p = &copied
		title = "Editar plan de mejoramiento"
	}
	year := ""
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nombre").Value(&p.Name).Validate(validateRequired),
		huh.NewInput().Title("Año").Value(&year).Validate(validateOptionalInt),
		huh.NewInput().Title("Responsable").Value(&p.Responsible),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			p.Year, _ = strconv.Atoi(year)
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Improvement.CreatePlan(ctx, p)
			} else {
				err = app.Improvement.UpdatePlan(ctx, p)
			}
			return saveResult(err, "Plan de mejoramiento guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func factorFormCmd(state *SharedState, planID string, existing *domain.ImprovementFactor) tea.Cmd {
	f := &domain.ImprovementFactor{PlanID: planID}
	title := "Nuevo factor"
	if existing != nil {
		copied := *existing
		f = &copied
		title = "Editar factor"
	}
	number := ""
	if f.Number != 0 {
		number = strconv.Itoa(f.Number)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Número").Value(&number).Validate(validateOptionalInt),
		huh.NewInput().Title("Nombre").Value(&f.Name).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			f.Number, _ = strconv.Atoi(number)
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Improvement.CreateFactor(ctx, f)
			} else {
				err = app.Improvement.UpdateFactor(ctx, f)
			}
			return saveResult(err, "Factor guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func activityFormCmd(state *SharedState, factorID string, existing *domain.ImprovementActivity) tea.Cmd {
	a := &domain.ImprovementActivity{FactorID: factorID}
	title := "Nueva actividad"
	if existing != nil {
		copied := *existing
		a = &copied
		title = "Editar actividad"
	}
	deadline := ""
	if a.Deadline != nil {
		deadline = a.Deadline.Format("2006-01-02")
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewText().Title("Descripción").Value(&a.Description).Lines(2).Validate(validateRequired),
		huh.NewInput().Title("Responsable").Value(&a.Responsible),
		huh.NewInput().Title("Fecha límite (YYYY-MM-DD)").Value(&deadline).Validate(validateOptionalDate),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			if deadline == "" {
				a.Deadline = nil
			} else {
				d := parseDateField(deadline)
				a.Deadline = &d
			}
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Improvement.CreateActivity(ctx, a)
			} else {
				err = app.Improvement.UpdateActivity(ctx, a)
			}
			return saveResult(err, "Actividad guardada.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func workPlanFormCmd(state *SharedState, existing *domain.WorkPlan) tea.Cmd {
	p := &domain.WorkPlan{}
	title := "Nuevo plan de trabajo"
	if existing != nil {
		copied := *existing
		p = &copied
		title = "Editar plan de trabajo"
	}
	year := ""
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}
	vinculation := string(p.GeneralInfo.VinculationType)
	if vinculation == "" {
		vinculation = string(domain.VinculationPlanta)
	}

	profOptions := make([]huh.Option[string], 0)
	for _, prof := range state.App.Store.Professors() {
		profOptions = append(profOptions, huh.NewOption(prof.Name, prof.ID))
	}

	facOptions := []huh.Option[string]{huh.NewOption("Sin facultad", "")}
	for _, f := range state.App.Store.Faculties() {
		facOptions = append(facOptions, huh.NewOption(f.Name, f.ID))
	}
	progOptions := []huh.Option[string]{huh.NewOption("Sin programa", "")}
	for _, pr := range state.App.Store.Programs() {
		progOptions = append(progOptions, huh.NewOption(pr.Name, pr.ID))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Profesor").
			Options(profOptions...).
			Value(&p.ProfessorID),
		huh.NewInput().Title("Período (p. ej. 2024-2)").Value(&p.Period).Validate(validateRequired),
		huh.NewInput().Title("Año").Value(&year).Validate(validateOptionalInt),
		huh.NewSelect[string]().Title("Facultad").
			Options(facOptions...).
			Value(&p.GeneralInfo.FacultyID),
		huh.NewSelect[string]().Title("Programa").
			Options(progOptions...).
			Value(&p.GeneralInfo.ProgramID),
		huh.NewSelect[string]().Title("Vinculación").
			Options(
				huh.NewOption("Planta", string(domain.VinculationPlanta)),
				huh.NewOption("Ocasional", string(domain.VinculationOcasional)),
				huh.NewOption("Cátedra", string(domain.VinculationCatedra)),
			).
			Value(&vinculation),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			p.Year, _ = strconv.Atoi(year)
			p.GeneralInfo.VinculationType = domain.VinculationType(vinculation)
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.WorkPlans.Create(ctx, p)
			} else {
				err = app.WorkPlans.Update(ctx, p)
			}
			return saveResult(err, "Plan de trabajo guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

// planEntryFormCmd edits one activity entry inside a work plan block and
// saves the whole plan, which recomputes the derived hours.
func planEntryFormCmd(state *SharedState, plan *domain.WorkPlan, block domain.PlanBlock) tea.Cmd {
	entry := domain.PlanEntry{Block: block}
	hours := ""

	subjOptions := []huh.Option[string]{huh.NewOption("Sin asignatura", "")}
	for _, s := range state.App.Store.Subjects() {
		subjOptions = append(subjOptions, huh.NewOption(s.Name, s.ID))
	}

	fields := []huh.Field{}
	if block == domain.BlockDocencia {
		fields = append(fields,
			huh.NewSelect[string]().Title("Asignatura").
				Options(subjOptions...).
				Value(&entry.SubjectID),
			huh.NewInput().Title("Grupo").Value(&entry.GroupName),
			huh.NewInput().Title("Horas semanales").Value(&hours).Validate(validateOptionalInt),
		)
	} else {
		fields = append(fields,
			huh.NewText().Title("Descripción").Value(&entry.Description).Lines(2).Validate(validateRequired),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			entry.Hours, _ = strconv.Atoi(hours)
			updated := *plan
			updated.Entries = append(append([]domain.PlanEntry{}, plan.Entries...), entry)
			err := app.WorkPlans.Update(context.Background(), &updated)
			return saveResult(err, "Actividad agregada.")
		}
	}
	return startFormCmd(state, "Agregar actividad", form, done)
}

func facultyFormCmd(state *SharedState, existing *domain.Faculty) tea.Cmd {
	f := &domain.Faculty{}
	title := "Nueva facultad"
	if existing != nil {
		copied := *existing
		f = &copied
		title = "Editar facultad"
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nombre").Value(&f.Name).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Catalogs.CreateFaculty(ctx, f)
			} else {
				err = app.Catalogs.UpdateFaculty(ctx, f)
			}
			return saveResult(err, "Facultad guardada.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func programFormCmd(state *SharedState, existing *domain.Program) tea.Cmd {
	p := &domain.Program{}
	title := "Nuevo programa"
	if existing != nil {
		copied := *existing
		p = &copied
		title = "Editar programa"
	}

	facOptions := make([]huh.Option[string], 0)
	for _, f := range state.App.Store.Faculties() {
		facOptions = append(facOptions, huh.NewOption(f.Name, f.ID))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Facultad").
			Options(facOptions...).
			Value(&p.FacultyID),
		huh.NewInput().Title("Nombre").Value(&p.Name).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Catalogs.CreateProgram(ctx, p)
			} else {
				err = app.Catalogs.UpdateProgram(ctx, p)
			}
			return saveResult(err, "Programa guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func subjectFormCmd(state *SharedState, existing *domain.Subject) tea.Cmd {
	s := &domain.Subject{}
	title := "Nueva asignatura"
	if existing != nil {
		copied := *existing
		s = &copied
		title = "Editar asignatura"
	}

	progOptions := make([]huh.Option[string], 0)
	for _, p := range state.App.Store.Programs() {
		progOptions = append(progOptions, huh.NewOption(p.Name, p.ID))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Programa").
			Options(progOptions...).
			Value(&s.ProgramID),
		huh.NewInput().Title("Nombre").Value(&s.Name).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Catalogs.CreateSubject(ctx, s)
			} else {
				err = app.Catalogs.UpdateSubject(ctx, s)
			}
			return saveResult(err, "Asignatura guardada.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func catalogItemFormCmd(state *SharedState, kind domain.CatalogKind, existing *domain.CatalogItem) tea.Cmd {
	c := &domain.CatalogItem{Kind: kind}
	title := "Nuevo elemento"
	if existing != nil {
		copied := *existing
		c = &copied
		title = "Editar elemento"
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nombre").Value(&c.Name).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Catalogs.CreateItem(ctx, c)
			} else {
				err = app.Catalogs.UpdateItem(ctx, c)
			}
			return saveResult(err, "Elemento guardado.")
		}
	}
	return startFormCmd(state, title, form, done)
}

func changePasswordFormCmd(state *SharedState) tea.Cmd {
	var oldPass, newPass string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Contraseña actual").EchoMode(huh.EchoModePassword).Value(&oldPass),
		huh.NewInput().Title("Contraseña nueva").EchoMode(huh.EchoModePassword).Value(&newPass).Validate(validateRequired),
	)).WithTheme(claustroHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			user := app.Store.CurrentUser()
			if user == nil {
				return toastMsg{text: "Error: sesión no iniciada", isErr: true}
			}
			err := app.Auth.ChangePassword(context.Background(), user.Username, oldPass, newPass)
			return saveResult(err, "Contraseña actualizada.")
		}
	}
	return startFormCmd(state, "Cambiar contraseña", form, done)
}
