package tui

import (
	"github.com/dfrestrepo/claustro/internal/service"
	"github.com/dfrestrepo/claustro/internal/store"
	"github.com/sirupsen/logrus"
)

// App holds references to all service interfaces used by the interface,
// plus the shared in-memory store the views read from.
type App struct {
	Auth        service.AuthService
	Professors  service.ProfessorService
	Groups      service.GroupService
	Actas       service.ActaService
	Documentos  service.DocumentoService
	Sites       service.SiteService
	WorkPlans   service.WorkPlanService
	Improvement service.ImprovementService
	Catalogs    service.CatalogService

	Store *store.Store
	Log   *logrus.Logger

	// IsInteractive reports whether stdin is a terminal; the TUI refuses
	// to start when it is not.
	IsInteractive func() bool
}

// logger returns the app logger, falling back to the logrus default so
// views never have to nil-check.
func (a *App) logger() *logrus.Logger {
	if a.Log != nil {
		return a.Log
	}
	return logrus.StandardLogger()
}
