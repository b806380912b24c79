package assignment_test

import (
	"errors"
	"strings"

	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// memStore fakes en memoria de los puertos que consume el caso de uso.
// El fake de Create emula el índice único parcial del store: segundo activo
// para el mismo par (candidateId, assignedTo) → ErrConflict.
type memStore struct {
	users       map[string]*entity.User
	candidates  map[string]*entity.Candidate
	jobs        map[string]*entity.Job
	agentActive map[string]*entity.AgentAssignment
	assignments map[string]*entity.CandidateAssignment

	listCalls  int
	countCalls int
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*entity.User{},
		candidates:  map[string]*entity.Candidate{},
		jobs:        map[string]*entity.Job{},
		agentActive: map[string]*entity.AgentAssignment{},
		assignments: map[string]*entity.CandidateAssignment{},
	}
}

// ── UserRepository ────────────────────────────────────────────────────────────

type fakeUserRepo struct{ s *memStore }

func (f fakeUserRepo) Create(u *entity.User) error { f.s.users[u.ID] = u; return nil }
func (f fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.s.users[id], nil
}
func (f fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (f fakeUserRepo) Update(*entity.User) error               { return nil }
func (f fakeUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (f fakeUserRepo) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.User, error) {
	return nil, nil
}

// ── CandidateRepository ───────────────────────────────────────────────────────

type fakeCandidateRepo struct{ s *memStore }

func (f fakeCandidateRepo) Create(c *entity.Candidate) error { f.s.candidates[c.ID] = c; return nil }
func (f fakeCandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	return f.s.candidates[id], nil
}
func (f fakeCandidateRepo) GetByUserID(userID string) (*entity.Candidate, error) {
	for _, c := range f.s.candidates {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}
func (f fakeCandidateRepo) Update(*entity.Candidate) error             { return nil }
func (f fakeCandidateRepo) List(int, int) ([]*entity.Candidate, error) { return nil, nil }
func (f fakeCandidateRepo) ListByFilter(repository.IDFilter, int) ([]*entity.Candidate, error) {
	return nil, nil
}
func (f fakeCandidateRepo) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.Candidate, error) {
	return nil, nil
}

// ── JobRepository ─────────────────────────────────────────────────────────────

type fakeJobRepo struct{ s *memStore }

func (f fakeJobRepo) Create(j *entity.Job) error { f.s.jobs[j.ID] = j; return nil }
func (f fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	return f.s.jobs[id], nil
}
func (f fakeJobRepo) Update(*entity.Job) error { return nil }
func (f fakeJobRepo) List(repository.JobFilter, int, int) ([]*entity.Job, error) {
	return nil, nil
}
func (f fakeJobRepo) CompanyIDs(repository.JobFilter) ([]string, error) { return nil, nil }
func (f fakeJobRepo) Search(repository.SearchQuery, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}

// ── AgentAssignmentRepository ─────────────────────────────────────────────────

type fakeAgentRepo struct{ s *memStore }

func (f fakeAgentRepo) Create(a *entity.AgentAssignment) error { f.s.agentActive[a.AgentID] = a; return nil }
func (f fakeAgentRepo) GetByID(string) (*entity.AgentAssignment, error) { return nil, nil }
func (f fakeAgentRepo) GetActiveByAgent(agentID string) (*entity.AgentAssignment, error) {
	return f.s.agentActive[agentID], nil
}
func (f fakeAgentRepo) Update(*entity.AgentAssignment) error { return nil }
func (f fakeAgentRepo) List(int, int) ([]*entity.AgentAssignment, error) {
	return nil, nil
}

// ── CandidateAssignmentRepository ─────────────────────────────────────────────

type fakeAssignmentRepo struct{ s *memStore }

func (f fakeAssignmentRepo) Create(a *entity.CandidateAssignment) error {
	for _, ex := range f.s.assignments {
		if ex.CandidateID == a.CandidateID && ex.AssignedTo == a.AssignedTo &&
			ex.Status == entity.AssignmentStatusActive {
			return domain.ErrConflict
		}
	}
	cp := *a
	f.s.assignments[a.ID] = &cp
	return nil
}

func (f fakeAssignmentRepo) GetByID(id string) (*entity.CandidateAssignment, error) {
	if a, ok := f.s.assignments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f fakeAssignmentRepo) Update(a *entity.CandidateAssignment) error {
	cp := *a
	f.s.assignments[a.ID] = &cp
	return nil
}

func (f fakeAssignmentRepo) Delete(id string) error {
	delete(f.s.assignments, id)
	return nil
}

func matches(a *entity.CandidateAssignment, flt repository.AssignmentFilter) bool {
	if flt.AssignedTo != "" && a.AssignedTo != flt.AssignedTo {
		return false
	}
	if flt.AssignedBy != "" && a.AssignedBy != flt.AssignedBy {
		return false
	}
	if flt.CandidateID != "" && a.CandidateID != flt.CandidateID {
		return false
	}
	if flt.Status != "" && a.Status != flt.Status {
		return false
	}
	if flt.CandidateStatus != "" && a.CandidateStatus != flt.CandidateStatus {
		return false
	}
	if flt.Priority != "" && a.Priority != flt.Priority {
		return false
	}
	return true
}

func (f fakeAssignmentRepo) List(flt repository.AssignmentFilter, limit, offset int) ([]*entity.CandidateAssignment, error) {
	f.s.listCalls++
	var out []*entity.CandidateAssignment
	for _, a := range f.s.assignments {
		if matches(a, flt) {
			cp := *a
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f fakeAssignmentRepo) Count(flt repository.AssignmentFilter) (int, error) {
	f.s.countCalls++
	n := 0
	for _, a := range f.s.assignments {
		if matches(a, flt) {
			n++
		}
	}
	return n, nil
}

func (f fakeAssignmentRepo) DistinctCandidatesByHR(hr string) ([]string, error) {
	var out []string
	for _, a := range f.s.assignments {
		if a.AssignedTo == hr {
			out = append(out, a.CandidateID)
		}
	}
	return out, nil
}

func (f fakeAssignmentRepo) DistinctHRsByCandidate(c string) ([]string, error) {
	var out []string
	for _, a := range f.s.assignments {
		if a.CandidateID == c {
			out = append(out, a.AssignedTo)
		}
	}
	return out, nil
}

// ── AuditSink ─────────────────────────────────────────────────────────────────

// recordingSink guarda las entradas; puede forzarse a fallar para verificar
// que la operación principal no se ve afectada.
type recordingSink struct {
	entries []ports.AuditEntry
	fail    bool
}

func (r *recordingSink) Record(e ports.AuditEntry) error {
	if r.fail {
		return errors.New("sink caído")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingSink) actions() string {
	var parts []string
	for _, e := range r.entries {
		parts = append(parts, e.Action)
	}
	return strings.Join(parts, ",")
}
