package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/export"
)

// NewRootCmd creates the top-level "claustro" command. Running it with no
// subcommand starts the interactive interface; seed and export cover the
// scripting paths.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "claustro",
		Short: "Academic administration dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(app)
		},
	}

	root.AddCommand(
		newSeedCmd(app),
		newExportCmd(app),
	)

	return root
}

// runProgram starts the full-screen interface. It refuses to start when
// stdin is not a terminal so piping into the binary fails loudly instead
// of hanging.
func runProgram(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errors.New("claustro requires an interactive terminal (use the seed or export subcommands in scripts)")
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo catalogs and professors into a fresh database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), app, cmd)
		},
	}
}

func runSeed(ctx context.Context, app *App, cmd *cobra.Command) error {
	faculties, err := app.Catalogs.ListFaculties(ctx)
	if err != nil {
		return err
	}
	if len(faculties) > 0 {
		return errors.New("database already has data; seed only runs against a fresh database")
	}

	faculty := &domain.Faculty{Name: "Facultad de Ciencias de la Salud"}
	if err := app.Catalogs.CreateFaculty(ctx, faculty); err != nil {
		return err
	}
	program := &domain.Program{FacultyID: faculty.ID, Name: "Enfermería"}
	if err := app.Catalogs.CreateProgram(ctx, program); err != nil {
		return err
	}
	for _, name := range []string{"Fundamentos de cuidado", "Farmacología", "Salud pública"} {
		subject := &domain.Subject{ProgramID: program.ID, Name: name}
		if err := app.Catalogs.CreateSubject(ctx, subject); err != nil {
			return err
		}
	}

	seedItems := map[domain.CatalogKind][]string{
		domain.CatalogActivityType:      {"Asesoría", "Comité curricular", "Investigación"},
		domain.CatalogDeliveryForm:      {"Informe escrito", "Presentación"},
		domain.CatalogVerificationMeans: {"Acta", "Lista de asistencia"},
		domain.CatalogPDIAction:         {"Fortalecer investigación formativa"},
		domain.CatalogImprovementAction: {"Actualización curricular"},
	}
	for _, kind := range domain.CatalogKinds {
		for _, name := range seedItems[kind] {
			item := &domain.CatalogItem{Kind: kind, Name: name}
			if err := app.Catalogs.CreateItem(ctx, item); err != nil {
				return err
			}
		}
	}

	professors := []*domain.Professor{
		{Name: "María Rodríguez", Identification: "1045678901", Email: "maria.rodriguez@example.edu", Specialty: "Cuidado crítico"},
		{Name: "Carlos Gómez", Identification: "1098765432", Email: "carlos.gomez@example.edu", Specialty: "Salud pública"},
	}
	for _, p := range professors {
		if err := app.Professors.Create(ctx, p); err != nil {
			return err
		}
	}

	cmd.Println("Seeded demo faculty, program, subjects, catalogs and professors.")
	return nil
}

func newExportCmd(app *App) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export <section>",
		Short: "Write a section's records to a spreadsheet without entering the interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(app, cmd, args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory the spreadsheet is written to")
	return cmd
}

func runExport(app *App, cmd *cobra.Command, name, outDir string) error {
	spec, ok := sectionSpecs[name]
	if !ok {
		return fmt.Errorf("unknown section %q", name)
	}

	// The section loaders populate the store as a side effect, which is
	// exactly what rows() projects from.
	loaded := spec.load(app)().(sectionLoadedMsg)
	if loaded.err != nil {
		return fmt.Errorf("loading %s: %w", name, loaded.err)
	}

	rows := spec.rows(app)
	if len(rows) == 0 {
		return fmt.Errorf("section %s has no records", name)
	}
	header := make([]string, len(spec.columns))
	for i, c := range spec.columns {
		header[i] = c.Title
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells
	}

	path := filepath.Join(outDir,
		fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102-150405")))
	if err := export.WriteXLSX(path, spec.title, header, cells); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	cmd.Println("Exportado a " + path)
	return nil
}
