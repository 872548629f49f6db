package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Section route names.
const (
	SectionDocumentos   = "documentos"
	SectionGrupos       = "grupos"
	SectionProfesores   = "profesores"
	SectionEscenarios   = "escenarios"
	SectionActas        = "actas"
	SectionMejoramiento = "mejoramiento"
	SectionPlanes       = "planes"
	SectionCatalogos    = "catalogos"
)

// sectionLoadedMsg signals that a section finished (re)loading its data
// into the store.
type sectionLoadedMsg struct {
	name string
	err  error
}

// sectionSpec is the per-section configuration the generic section view
// is driven by: how to load data into the store, how to project it into
// table rows, and which forms and detail views its keys open.
type sectionSpec struct {
	name    string
	title   string
	columns []Column

	load   func(app *App) tea.Cmd
	rows   func(app *App) []Row
	create func(state *SharedState) tea.Cmd
	edit   func(state *SharedState, id string) tea.Cmd
	remove func(app *App, id string) tea.Cmd
	// open pushes a detail view for the selected row; nil when the
	// section has no drill-down.
	open func(state *SharedState, id string) tea.Cmd
}

func dateCell(t time.Time) string {
	return t.Format("2006-01-02")
}

var sectionSpecs = map[string]*sectionSpec{

	SectionDocumentos: {
		name:  SectionDocumentos,
		title: "Documentos",
		columns: []Column{
			{Title: "Título", Width: 30},
			{Title: "Tipo", Width: 14},
			{Title: "Fecha", Width: 10},
			{Title: "Propósito", Width: 26},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				docs, err := app.Documentos.List(context.Background())
				if err == nil {
					app.Store.ReplaceDocumentos(docs)
				}
				return sectionLoadedMsg{name: SectionDocumentos, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, d := range app.Store.Documentos() {
				date := ""
				if !d.Date.IsZero() {
					date = dateCell(d.Date)
				}
				rows = append(rows, Row{ID: d.ID, Cells: []string{d.Title, d.Type, date, d.Purpose}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return documentoFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, d := range state.App.Store.Documentos() {
				if d.ID == id {
					return documentoFormCmd(state, d)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Documentos.Delete(context.Background(), id), "Documento eliminado.")
			}
		},
	},

	SectionGrupos: {
		name:  SectionGrupos,
		title: "Grupos",
		columns: []Column{
			{Title: "Nombre", Width: 24},
			{Title: "Fecha", Width: 10},
			{Title: "Asesor", Width: 20},
			{Title: "Descripción", Width: 26},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				ctx := context.Background()
				professors, err := app.Professors.List(ctx)
				if err != nil {
					return sectionLoadedMsg{name: SectionGrupos, err: err}
				}
				app.Store.ReplaceProfessors(professors)
				groups, err := app.Groups.List(ctx)
				if err == nil {
					app.Store.ReplaceGroups(groups)
				}
				return sectionLoadedMsg{name: SectionGrupos, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, g := range app.Store.Groups() {
				date := ""
				if !g.Date.IsZero() {
					date = dateCell(g.Date)
				}
				rows = append(rows, Row{ID: g.ID, Cells: []string{
					g.Name, date, app.Store.ProfessorName(g.AdvisorID), g.Description,
				}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return groupFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, g := range state.App.Store.Groups() {
				if g.ID == id {
					return groupFormCmd(state, g)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Groups.Delete(context.Background(), id), "Grupo eliminado.")
			}
		},
	},

	SectionProfesores: {
		name:  SectionProfesores,
		title: "Profesores",
		columns: []Column{
			{Title: "Nombre", Width: 24},
			{Title: "Identificación", Width: 14},
			{Title: "Correo", Width: 24},
			{Title: "Especialidad", Width: 18},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				professors, err := app.Professors.List(context.Background())
				if err == nil {
					app.Store.ReplaceProfessors(professors)
				}
				return sectionLoadedMsg{name: SectionProfesores, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, p := range app.Store.Professors() {
				rows = append(rows, Row{ID: p.ID, Cells: []string{
					p.Name, p.Identification, p.Email, p.Specialty,
				}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return professorFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, p := range state.App.Store.Professors() {
				if p.ID == id {
					return professorFormCmd(state, p)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Professors.Delete(context.Background(), id), "Profesor eliminado.")
			}
		},
	},

	SectionEscenarios: {
		name:  SectionEscenarios,
		title: "Escenarios de práctica",
		columns: []Column{
			{Title: "Empresa", Width: 26},
			{Title: "Dependencia", Width: 18},
			{Title: "Contacto", Width: 18},
			{Title: "Docente", Width: 20},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				ctx := context.Background()
				professors, err := app.Professors.List(ctx)
				if err != nil {
					return sectionLoadedMsg{name: SectionEscenarios, err: err}
				}
				app.Store.ReplaceProfessors(professors)
				sites, err := app.Sites.List(ctx)
				if err == nil {
					app.Store.ReplaceSites(sites)
				}
				return sectionLoadedMsg{name: SectionEscenarios, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, s := range app.Store.Sites() {
				rows = append(rows, Row{ID: s.ID, Cells: []string{
					s.CompanyName, s.Department, s.ContactName,
					app.Store.ProfessorName(s.ProfessorID),
				}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return siteFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, s := range state.App.Store.Sites() {
				if s.ID == id {
					return siteFormCmd(state, s)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Sites.Delete(context.Background(), id), "Escenario eliminado.")
			}
		},
	},

	SectionActas: {
		name:  SectionActas,
		title: "Actas",
		columns: []Column{
			{Title: "Grupo", Width: 20},
			{Title: "Asesor", Width: 18},
			{Title: "Fecha", Width: 10},
			{Title: "Tipo", Width: 12},
			{Title: "Documento", Width: 20},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				ctx := context.Background()
				docs, err := app.Documentos.List(ctx)
				if err != nil {
					return sectionLoadedMsg{name: SectionActas, err: err}
				}
				app.Store.ReplaceDocumentos(docs)
				actas, err := app.Actas.List(ctx)
				if err == nil {
					app.Store.ReplaceActas(actas)
				}
				return sectionLoadedMsg{name: SectionActas, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, a := range app.Store.Actas() {
				date := ""
				if !a.Date.IsZero() {
					date = dateCell(a.Date)
				}
				rows = append(rows, Row{ID: a.ID, Cells: []string{
					a.Group, a.AdvisorName, date, a.Type,
					app.Store.DocumentoTitle(a.LinkedDocID),
				}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return actaFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, a := range state.App.Store.Actas() {
				if a.ID == id {
					return actaFormCmd(state, a)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Actas.Delete(context.Background(), id), "Acta eliminada.")
			}
		},
	},

	SectionMejoramiento: {
		name:  SectionMejoramiento,
		title: "Planes de mejoramiento",
		columns: []Column{
			{Title: "Nombre", Width: 30},
			{Title: "Año", Width: 6},
			{Title: "Responsable", Width: 22},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				plans, err := app.Improvement.ListPlans(context.Background())
				if err == nil {
					app.Store.ReplaceImprovements(plans)
				}
				return sectionLoadedMsg{name: SectionMejoramiento, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, p := range app.Store.Improvements() {
				year := ""
				if p.Year != 0 {
					year = strconv.Itoa(p.Year)
				}
				rows = append(rows, Row{ID: p.ID, Cells: []string{p.Name, year, p.Responsible}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return improvementPlanFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, p := range state.App.Store.Improvements() {
				if p.ID == id {
					return improvementPlanFormCmd(state, p)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.Improvement.DeletePlan(context.Background(), id),
					"Plan de mejoramiento eliminado.")
			}
		},
		open: func(state *SharedState, id string) tea.Cmd {
			for _, p := range state.App.Store.Improvements() {
				if p.ID == id {
					return pushView(newFactorListView(state, p))
				}
			}
			return nil
		},
	},

	SectionPlanes: {
		name:  SectionPlanes,
		title: "Planes de trabajo",
		columns: []Column{
			{Title: "Profesor", Width: 24},
			{Title: "Período", Width: 8},
			{Title: "Estado", Width: 12},
			{Title: "Horas", Width: 6},
		},
		load: func(app *App) tea.Cmd {
			return func() tea.Msg {
				ctx := context.Background()
				professors, err := app.Professors.List(ctx)
				if err != nil {
					return sectionLoadedMsg{name: SectionPlanes, err: err}
				}
				app.Store.ReplaceProfessors(professors)
				if faculties, err := app.Catalogs.ListFaculties(ctx); err == nil {
					app.Store.ReplaceFaculties(faculties)
				}
				if programs, err := app.Catalogs.ListPrograms(ctx); err == nil {
					app.Store.ReplacePrograms(programs)
				}
				if subjects, err := app.Catalogs.ListSubjects(ctx); err == nil {
					app.Store.ReplaceSubjects(subjects)
				}
				plans, err := app.WorkPlans.List(ctx)
				if err == nil {
					app.Store.ReplaceWorkPlans(plans)
				}
				return sectionLoadedMsg{name: SectionPlanes, err: err}
			}
		},
		rows: func(app *App) []Row {
			var rows []Row
			for _, p := range app.Store.WorkPlans() {
				rows = append(rows, Row{ID: p.ID, Cells: []string{
					app.Store.ProfessorName(p.ProfessorID),
					p.Period,
					string(p.Status),
					fmt.Sprintf("%d", p.CalculatedHours.Total),
				}})
			}
			return rows
		},
		create: func(state *SharedState) tea.Cmd { return workPlanFormCmd(state, nil) },
		edit: func(state *SharedState, id string) tea.Cmd {
			for _, p := range state.App.Store.WorkPlans() {
				if p.ID == id {
					return workPlanFormCmd(state, p)
				}
			}
			return nil
		},
		remove: func(app *App, id string) tea.Cmd {
			return func() tea.Msg {
				return saveResult(app.WorkPlans.Delete(context.Background(), id),
					"Plan de trabajo eliminado.")
			}
		},
		open: func(state *SharedState, id string) tea.Cmd {
			for _, p := range state.App.Store.WorkPlans() {
				if p.ID == id {
					return pushView(newWorkPlanDetailView(state, p.ID))
				}
			}
			return nil
		},
	},
}

// sectionOrder lists the sections the dashboard offers, in menu order.
var sectionOrder = []string{
	SectionDocumentos,
	SectionGrupos,
	SectionProfesores,
	SectionEscenarios,
	SectionActas,
	SectionMejoramiento,
	SectionPlanes,
	SectionCatalogos,
}

// sectionTitle resolves a route name for breadcrumbs and menus.
func sectionTitle(name string) string {
	if name == SectionCatalogos {
		return "Catálogos"
	}
	if spec, ok := sectionSpecs[name]; ok {
		return spec.title
	}
	return name
}
