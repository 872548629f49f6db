package store

import (
	"sync"

	"github.com/dfrestrepo/claustro/internal/domain"
)

// Collection names, used by views to ask for data generically and by the
// dashboard to label its counters.
const (
	ColProfessors  = "professors"
	ColGroups      = "groups"
	ColActas       = "actas"
	ColDocumentos  = "documentos"
	ColSites       = "sites"
	ColWorkPlans   = "workplans"
	ColImprovement = "improvement"
	ColFaculties   = "faculties"
	ColPrograms    = "programs"
	ColSubjects    = "subjects"
)

// Store is the in-memory snapshot of the catalog data the interface works
// against. Views read from it; after any write the owning controller
// refetches the whole collection and replaces it here, so the store never
// drifts from the database by partial mutation.
//
// Loads run in background commands, so access is guarded.
type Store struct {
	mu sync.RWMutex

	currentUser   *domain.User
	activeSection string

	professors   []*domain.Professor
	groups       []*domain.Group
	actas        []*domain.Acta
	documentos   []*domain.Documento
	sites        []*domain.PracticumSite
	workPlans    []*domain.WorkPlan
	improvements []*domain.ImprovementPlan
	faculties    []*domain.Faculty
	programs     []*domain.Program
	subjects     []*domain.Subject
}

func New() *Store {
	return &Store{}
}

// SetCurrentUser records the authenticated user. Passing nil logs out;
// logging out twice is harmless.
func (s *Store) SetCurrentUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = u
}

func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

func (s *Store) SetActiveSection(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSection = name
}

func (s *Store) ActiveSection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSection
}

func (s *Store) ReplaceProfessors(list []*domain.Professor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.professors = list
}

func (s *Store) Professors() []*domain.Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.professors
}

// ProfessorName resolves a weak professor reference for display.
// Unknown or empty ids render the unassigned placeholder.
func (s *Store) ProfessorName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "" {
		return "No asignado"
	}
	for _, p := range s.professors {
		if p.ID == id {
			return p.Name
		}
	}
	return "No asignado"
}

func (s *Store) ReplaceGroups(list []*domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = list
}

func (s *Store) Groups() []*domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups
}

func (s *Store) ReplaceActas(list []*domain.Acta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actas = list
}

func (s *Store) Actas() []*domain.Acta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actas
}

func (s *Store) ReplaceDocumentos(list []*domain.Documento) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentos = list
}

func (s *Store) Documentos() []*domain.Documento {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentos
}

// DocumentoTitle resolves a weak documento reference for display.
func (s *Store) DocumentoTitle(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "" {
		return "N/A"
	}
	for _, d := range s.documentos {
		if d.ID == id {
			return d.Title
		}
	}
	return "N/A"
}

func (s *Store) ReplaceSites(list []*domain.PracticumSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites = list
}

func (s *Store) Sites() []*domain.PracticumSite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sites
}

func (s *Store) ReplaceWorkPlans(list []*domain.WorkPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workPlans = list
}

func (s *Store) WorkPlans() []*domain.WorkPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workPlans
}

func (s *Store) ReplaceImprovements(list []*domain.ImprovementPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.improvements = list
}

func (s *Store) Improvements() []*domain.ImprovementPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.improvements
}

func (s *Store) ReplaceFaculties(list []*domain.Faculty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faculties = list
}

func (s *Store) Faculties() []*domain.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.faculties
}

func (s *Store) ReplacePrograms(list []*domain.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = list
}

func (s *Store) Programs() []*domain.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs
}

func (s *Store) ReplaceSubjects(list []*domain.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = list
}

func (s *Store) Subjects() []*domain.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subjects
}

// Count returns the size of a named collection, or zero for names the
// store does not track.
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch name {
	case ColProfessors:
		return len(s.professors)
	case ColGroups:
		return len(s.groups)
	case ColActas:
		return len(s.actas)
	case ColDocumentos:
		return len(s.documentos)
	case ColSites:
		return len(s.sites)
	case ColWorkPlans:
		return len(s.workPlans)
	case ColImprovement:
		return len(s.improvements)
	case ColFaculties:
		return len(s.faculties)
	case ColPrograms:
		return len(s.programs)
	case ColSubjects:
		return len(s.subjects)
	default:
		return 0
	}
}
