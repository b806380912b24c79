package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAgentRepo struct {
	active map[string]*entity.AgentAssignment // agentID → registro activo
}

func (f *fakeAgentRepo) Create(*entity.AgentAssignment) error          { return nil }
func (f *fakeAgentRepo) GetByID(string) (*entity.AgentAssignment, error) { return nil, nil }
func (f *fakeAgentRepo) Update(*entity.AgentAssignment) error          { return nil }
func (f *fakeAgentRepo) List(int, int) ([]*entity.AgentAssignment, error) {
	return nil, nil
}
func (f *fakeAgentRepo) GetActiveByAgent(agentID string) (*entity.AgentAssignment, error) {
	return f.active[agentID], nil
}

type fakeAssignRepo struct {
	candidatesByHR  map[string][]string
	hrsByCandidate  map[string][]string
}

func (f *fakeAssignRepo) Create(*entity.CandidateAssignment) error            { return nil }
func (f *fakeAssignRepo) GetByID(string) (*entity.CandidateAssignment, error) { return nil, nil }
func (f *fakeAssignRepo) Update(*entity.CandidateAssignment) error            { return nil }
func (f *fakeAssignRepo) Delete(string) error                                 { return nil }
func (f *fakeAssignRepo) List(repository.AssignmentFilter, int, int) ([]*entity.CandidateAssignment, error) {
	return nil, nil
}
func (f *fakeAssignRepo) Count(repository.AssignmentFilter) (int, error) { return 0, nil }
func (f *fakeAssignRepo) DistinctCandidatesByHR(hr string) ([]string, error) {
	return f.candidatesByHR[hr], nil
}
func (f *fakeAssignRepo) DistinctHRsByCandidate(c string) ([]string, error) {
	return f.hrsByCandidate[c], nil
}

type fakeJobRepo struct {
	companyIDs []string
	lastFilter repository.JobFilter
}

func (f *fakeJobRepo) Create(*entity.Job) error            { return nil }
func (f *fakeJobRepo) GetByID(string) (*entity.Job, error) { return nil, nil }
func (f *fakeJobRepo) Update(*entity.Job) error            { return nil }
func (f *fakeJobRepo) List(repository.JobFilter, int, int) ([]*entity.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) CompanyIDs(flt repository.JobFilter) ([]string, error) {
	f.lastFilter = flt
	return f.companyIDs, nil
}
func (f *fakeJobRepo) Search(repository.SearchQuery, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}

type fakeCandRepo struct {
	byUserID map[string]*entity.Candidate
}

func (f *fakeCandRepo) Create(*entity.Candidate) error            { return nil }
func (f *fakeCandRepo) GetByID(string) (*entity.Candidate, error) { return nil, nil }
func (f *fakeCandRepo) GetByUserID(u string) (*entity.Candidate, error) {
	return f.byUserID[u], nil
}
func (f *fakeCandRepo) Update(*entity.Candidate) error               { return nil }
func (f *fakeCandRepo) List(int, int) ([]*entity.Candidate, error)   { return nil, nil }
func (f *fakeCandRepo) ListByFilter(repository.IDFilter, int) ([]*entity.Candidate, error) {
	return nil, nil
}
func (f *fakeCandRepo) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.Candidate, error) {
	return nil, nil
}

func newGate(agents *fakeAgentRepo, assigns *fakeAssignRepo, jobs *fakeJobRepo, cands *fakeCandRepo) *access.Gate {
	if agents == nil {
		agents = &fakeAgentRepo{active: map[string]*entity.AgentAssignment{}}
	}
	if assigns == nil {
		assigns = &fakeAssignRepo{}
	}
	if jobs == nil {
		jobs = &fakeJobRepo{}
	}
	if cands == nil {
		cands = &fakeCandRepo{byUserID: map[string]*entity.Candidate{}}
	}
	return access.NewGate(agents, assigns, jobs, cands)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance de agente: unión exacta de su registro activo, ∅ si no existe.
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleHRsForAgent_UnionDelRegistroActivo(t *testing.T) {
	gate := newGate(&fakeAgentRepo{active: map[string]*entity.AgentAssignment{
		"agent-1": {
			AgentID:            "agent-1",
			AssignedHRs:        []string{"hr-1", "hr-2", "hr-1"},
			AssignedCandidates: []string{"cand-1"},
			Status:             entity.AgentAssignmentStatusActive,
		},
	}}, nil, nil, nil)

	hrs, err := gate.VisibleHRsForAgent("agent-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hr-1", "hr-2"}, hrs.Slice(), "la unión no debe duplicar ids")

	cands, err := gate.VisibleCandidatesForAgent("agent-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cand-1"}, cands.Slice())
}

// Un agente sin AgentAssignment es un estado legítimo (recién incorporado):
// conjunto vacío, nunca error.
func TestVisibleHRsForAgent_SinRegistroEsVacioNoError(t *testing.T) {
	gate := newGate(nil, nil, nil, nil)

	hrs, err := gate.VisibleHRsForAgent("agent-nuevo")
	require.NoError(t, err, "alcance vacío es válido, no unauthorized")
	assert.Empty(t, hrs.Slice())

	cands, err := gate.VisibleCandidatesForAgent("agent-nuevo")
	require.NoError(t, err)
	assert.Empty(t, cands.Slice())
}

func TestVisibleCandidatesForHR_VisibilidadHistorica(t *testing.T) {
	gate := newGate(nil, &fakeAssignRepo{candidatesByHR: map[string][]string{
		"hr-1": {"cand-1", "cand-2"},
	}}, nil, nil)

	set, err := gate.VisibleCandidatesForHR("hr-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cand-1", "cand-2"}, set.Slice())

	vacio, err := gate.VisibleCandidatesForHR("hr-sin-historia")
	require.NoError(t, err)
	assert.Empty(t, vacio.Slice())
}

// ──────────────────────────────────────────────────────────────────────────────
// VisibleJobsScope por rol.
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleJobsScope_PorRol(t *testing.T) {
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{
		"agent-1": {AgentID: "agent-1", AssignedHRs: []string{"hr-1"}, Status: entity.AgentAssignmentStatusActive},
	}}
	gate := newGate(agents, nil, nil, nil)

	sa, err := gate.VisibleJobsScope(domain.Actor{ID: "root", Role: domain.RoleSuperadmin})
	require.NoError(t, err)
	assert.True(t, sa.All, "superadmin ve todas las vacantes, canceladas incluidas")

	adm, err := gate.VisibleJobsScope(domain.Actor{ID: "adm", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, adm.All)
	assert.True(t, adm.ExcludeCancelled)
	assert.Nil(t, adm.CreatedBy, "admin no restringe por dueño")

	hr, err := gate.VisibleJobsScope(domain.Actor{ID: "hr-1", Role: domain.RoleHR})
	require.NoError(t, err)
	assert.Equal(t, []string{"hr-1"}, hr.CreatedBy, "hr solo ve sus propias vacantes")

	ag, err := gate.VisibleJobsScope(domain.Actor{ID: "agent-1", Role: domain.RoleAgent})
	require.NoError(t, err)
	assert.Equal(t, []string{"hr-1"}, ag.CreatedBy)

	agVacio, err := gate.VisibleJobsScope(domain.Actor{ID: "agent-nuevo", Role: domain.RoleAgent})
	require.NoError(t, err)
	assert.True(t, agVacio.Empty(), "agente sin asignación → alcance estructuralmente vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcances derivados: empresas (vía vacantes) y usuarios.
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleCompaniesScope_TransitivaPorVacantes(t *testing.T) {
	jobs := &fakeJobRepo{companyIDs: []string{"com-1", "com-2"}}
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{
		"agent-1": {AgentID: "agent-1", AssignedHRs: []string{"hr-1"}, Status: entity.AgentAssignmentStatusActive},
	}}
	gate := newGate(agents, nil, jobs, nil)

	f, err := gate.VisibleCompaniesScope(domain.Actor{ID: "agent-1", Role: domain.RoleAgent})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"com-1", "com-2"}, f.IDs)
	assert.Equal(t, []string{"hr-1"}, jobs.lastFilter.CreatedBy,
		"las empresas visibles derivan del filtro de vacantes del actor")

	// Agente sin alcance: no se consulta el repo de vacantes.
	jobs.companyIDs = []string{"no-debe-aparecer"}
	vacio, err := gate.VisibleCompaniesScope(domain.Actor{ID: "agent-nuevo", Role: domain.RoleAgent})
	require.NoError(t, err)
	assert.True(t, vacio.Empty())
}

func TestVisibleUsersScope_PorRol(t *testing.T) {
	cands := &fakeCandRepo{byUserID: map[string]*entity.Candidate{
		"user-cand": {ID: "cand-9", UserID: "user-cand"},
	}}
	assigns := &fakeAssignRepo{hrsByCandidate: map[string][]string{
		"cand-9": {"hr-3"},
	}}
	gate := newGate(nil, assigns, nil, cands)

	adm, err := gate.VisibleUsersScope(domain.Actor{ID: "a", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, adm.All)

	cand, err := gate.VisibleUsersScope(domain.Actor{ID: "user-cand", Role: domain.RoleCandidate})
	require.NoError(t, err)
	assert.Equal(t, []string{"hr-3"}, cand.IDs, "candidato ve solo los HR con asignaciones sobre él")

	sinPerfil, err := gate.VisibleUsersScope(domain.Actor{ID: "user-x", Role: domain.RoleCandidate})
	require.NoError(t, err)
	assert.True(t, sinPerfil.Empty())
}

func TestAssignmentScope_PorRol(t *testing.T) {
	cands := &fakeCandRepo{byUserID: map[string]*entity.Candidate{
		"user-cand": {ID: "cand-9", UserID: "user-cand"},
	}}
	gate := newGate(nil, nil, nil, cands)

	f, empty, err := gate.AssignmentScope(domain.Actor{ID: "hr-1", Role: domain.RoleHR})
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, "hr-1", f.AssignedTo)

	f, empty, err = gate.AssignmentScope(domain.Actor{ID: "agent-1", Role: domain.RoleAgent})
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, "agent-1", f.AssignedBy)

	f, empty, err = gate.AssignmentScope(domain.Actor{ID: "user-cand", Role: domain.RoleCandidate})
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, "cand-9", f.CandidateID)

	_, empty, err = gate.AssignmentScope(domain.Actor{ID: "user-sin-perfil", Role: domain.RoleCandidate})
	require.NoError(t, err)
	assert.True(t, empty, "candidato sin perfil → alcance vacío, no error")
}
