package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/repository"
	"github.com/dfrestrepo/claustro/internal/service"
	"github.com/dfrestrepo/claustro/internal/store"
	"github.com/dfrestrepo/claustro/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; a missing file is not an error.
	_ = godotenv.Load()

	log, err := newLogger()
	if err != nil {
		return err
	}

	// Determine DB path: env var or default ~/.claustro/claustro.db
	dbPath := os.Getenv("CLAUSTRO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".claustro", "claustro.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	professorRepo := repository.NewSQLiteProfessorRepo(database)
	groupRepo := repository.NewSQLiteGroupRepo(database)
	actaRepo := repository.NewSQLiteActaRepo(database)
	documentoRepo := repository.NewSQLiteDocumentoRepo(database)
	siteRepo := repository.NewSQLiteSiteRepo(database)
	workPlanRepo := repository.NewSQLiteWorkPlanRepo(database)
	planRepo := repository.NewSQLiteImprovementPlanRepo(database)
	factorRepo := repository.NewSQLiteFactorRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	facultyRepo := repository.NewSQLiteFacultyRepo(database)
	programRepo := repository.NewSQLiteProgramRepo(database)
	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	itemRepo := repository.NewSQLiteCatalogItemRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Wire unit of work for transactional plan saves
	uow := db.NewSQLiteUnitOfWork(database)

	app := &tui.App{
		Auth:        service.NewAuthService(userRepo),
		Professors:  service.NewProfessorService(professorRepo),
		Groups:      service.NewGroupService(groupRepo),
		Actas:       service.NewActaService(actaRepo),
		Documentos:  service.NewDocumentoService(documentoRepo),
		Sites:       service.NewSiteService(siteRepo),
		WorkPlans:   service.NewWorkPlanService(workPlanRepo, uow),
		Improvement: service.NewImprovementService(planRepo, factorRepo, activityRepo),
		Catalogs:    service.NewCatalogService(facultyRepo, programRepo, subjectRepo, itemRepo),

		Store: store.New(),
		Log:   log,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := tui.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger writes structured logs to $CLAUSTRO_LOG when set; otherwise
// logging is discarded so it never bleeds into the alt-screen interface.
func newLogger() (*logrus.Logger, error) {
	log := logrus.New()
	path := os.Getenv("CLAUSTRO_LOG")
	if path == "" {
		log.SetOutput(io.Discard)
		return log, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, nil
}
