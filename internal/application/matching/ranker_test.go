package matching_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/matching"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes.
// ──────────────────────────────────────────────────────────────────────────────

type stubScorer struct {
	raw   []dto.RawMatch
	err   error
	calls int

	lastJobs  []dto.JobDescriptor
	lastCands []dto.CandidateDescriptor
}

func (s *stubScorer) Score(_ context.Context, jobs []dto.JobDescriptor, cands []dto.CandidateDescriptor) ([]dto.RawMatch, error) {
	s.calls++
	s.lastJobs = jobs
	s.lastCands = cands
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

type fakeJobRepo struct {
	jobs []*entity.Job
}

func (f *fakeJobRepo) Create(*entity.Job) error { return nil }
func (f *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}
func (f *fakeJobRepo) Update(*entity.Job) error { return nil }
func (f *fakeJobRepo) List(flt repository.JobFilter, limit, _ int) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range f.jobs {
		if flt.All {
			out = append(out, j)
			continue
		}
		if flt.ExcludeCancelled && j.Status == entity.JobStatusCancelled {
			continue
		}
		if flt.CreatedBy != nil {
			ok := false
			for _, id := range flt.CreatedBy {
				if id == j.CreatedBy {
					ok = true
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, j)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (f *fakeJobRepo) CompanyIDs(repository.JobFilter) ([]string, error) { return nil, nil }
func (f *fakeJobRepo) Search(repository.SearchQuery, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}

type fakeCandRepo struct {
	cands     []*entity.Candidate
	listCalls int
}

func (f *fakeCandRepo) Create(*entity.Candidate) error { return nil }
func (f *fakeCandRepo) GetByID(id string) (*entity.Candidate, error) {
	for _, c := range f.cands {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCandRepo) GetByUserID(string) (*entity.Candidate, error) { return nil, nil }
func (f *fakeCandRepo) Update(*entity.Candidate) error                { return nil }
func (f *fakeCandRepo) List(int, int) ([]*entity.Candidate, error)    { return nil, nil }
func (f *fakeCandRepo) ListByFilter(flt repository.IDFilter, limit int) ([]*entity.Candidate, error) {
	f.listCalls++
	var out []*entity.Candidate
	for _, c := range f.cands {
		if flt.All {
			out = append(out, c)
			continue
		}
		for _, id := range flt.IDs {
			if id == c.ID {
				out = append(out, c)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (f *fakeCandRepo) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.Candidate, error) {
	return nil, nil
}

type fakeAgentRepo struct {
	active map[string]*entity.AgentAssignment
}

func (f *fakeAgentRepo) Create(*entity.AgentAssignment) error            { return nil }
func (f *fakeAgentRepo) GetByID(string) (*entity.AgentAssignment, error) { return nil, nil }
func (f *fakeAgentRepo) GetActiveByAgent(id string) (*entity.AgentAssignment, error) {
	return f.active[id], nil
}
func (f *fakeAgentRepo) Update(*entity.AgentAssignment) error             { return nil }
func (f *fakeAgentRepo) List(int, int) ([]*entity.AgentAssignment, error) { return nil, nil }

type nopAssignRepo struct{}

func (nopAssignRepo) Create(*entity.CandidateAssignment) error            { return nil }
func (nopAssignRepo) GetByID(string) (*entity.CandidateAssignment, error) { return nil, nil }
func (nopAssignRepo) Update(*entity.CandidateAssignment) error            { return nil }
func (nopAssignRepo) Delete(string) error                                 { return nil }
func (nopAssignRepo) List(repository.AssignmentFilter, int, int) ([]*entity.CandidateAssignment, error) {
	return nil, nil
}
func (nopAssignRepo) Count(repository.AssignmentFilter) (int, error)  { return 0, nil }
func (nopAssignRepo) DistinctCandidatesByHR(string) ([]string, error) { return nil, nil }
func (nopAssignRepo) DistinctHRsByCandidate(string) ([]string, error) { return nil, nil }

// Escenario: vacante de hr-1 y tres candidatos visibles para el admin.
func buildRanker(scorer *stubScorer) (*matching.Ranker, *fakeJobRepo, *fakeCandRepo) {
	jobs := &fakeJobRepo{jobs: []*entity.Job{
		{ID: "job-1", Title: "Backend Go", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	cands := &fakeCandRepo{cands: []*entity.Candidate{
		{ID: "c1", Status: entity.CandidateStatusActive},
		{ID: "c2", Status: entity.CandidateStatusActive},
		{ID: "c3", Status: entity.CandidateStatusActive},
	}}
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{}}
	gate := access.NewGate(agents, nopAssignRepo{}, jobs, cands)
	return matching.NewRanker(gate, jobs, cands, scorer, 0), jobs, cands
}

var admin = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}

func rawMatch(cand string, score any) dto.RawMatch {
	return dto.RawMatch{CandidateID: cand, JobID: "job-1", Score: score}
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden y estabilidad.
// ──────────────────────────────────────────────────────────────────────────────

// Con pool [c1,c2,c3] y scores [90,95,90], el orden es [c2,c1,c3]: los empates
// conservan el orden de entrada del pool, sin clave secundaria.
func TestMatchJob_EmpatesEstablesPorOrdenDeEntrada(t *testing.T) {
	scorer := &stubScorer{raw: []dto.RawMatch{
		rawMatch("c1", float64(90)),
		rawMatch("c2", float64(95)),
		rawMatch("c3", float64(90)),
	}}
	ranker, _, _ := buildRanker(scorer)

	out, err := ranker.MatchJob(context.Background(), admin, dto.MatchJobRequest{JobID: "job-1"})
	require.NoError(t, err)
	require.Len(t, out.Matches, 3)
	assert.Equal(t, "c2", out.Matches[0].CandidateID)
	assert.Equal(t, 95, out.Matches[0].MatchScore)
	assert.Equal(t, "c1", out.Matches[1].CandidateID, "empate: c1 entró antes que c3 en el pool")
	assert.Equal(t, "c3", out.Matches[2].CandidateID)
	assert.Equal(t, 1, scorer.calls, "una sola llamada por lote, no una por par")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y normalización de entradas crudas.
// ──────────────────────────────────────────────────────────────────────────────

func TestMatchJob_DescartaMalformadasYNormaliza(t *testing.T) {
	scorer := &stubScorer{raw: []dto.RawMatch{
		{CandidateID: "", JobID: "job-1", Score: float64(80)},     // sin candidato → fuera
		rawMatch("c1", float64(150)),                              // fuera de rango → fuera
		rawMatch("c2", "87.6"),                                    // string numérica → 88
		{CandidateID: "c3", JobID: "job-1", Score: float64(70.4), // arrays no-array → []
			Reasons: "no soy un array", Strengths: []any{"go", 42, "sql"}},
		rawMatch("fantasma", float64(99)), // fuera del pool → fuera
	}}
	ranker, _, _ := buildRanker(scorer)

	out, err := ranker.MatchJob(context.Background(), admin, dto.MatchJobRequest{JobID: "job-1"})
	require.NoError(t, err, "las entradas malformadas se descartan, no son error parcial")
	require.Len(t, out.Matches, 2)

	assert.Equal(t, "c2", out.Matches[0].CandidateID)
	assert.Equal(t, 88, out.Matches[0].MatchScore, "score redondeado al entero más cercano")
	assert.Equal(t, "c3", out.Matches[1].CandidateID)
	assert.Equal(t, 70, out.Matches[1].MatchScore)
	assert.Equal(t, []string{}, out.Matches[1].Reasons, "no-array se coerciona a vacío, no null")
	assert.Equal(t, []string{"go", "sql"}, out.Matches[1].Strengths)

	for _, m := range out.Matches {
		assert.GreaterOrEqual(t, m.MatchScore, 0)
		assert.LessOrEqual(t, m.MatchScore, 100)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Caminos rápidos y fallos.
// ──────────────────────────────────────────────────────────────────────────────

// Agente sin alcance: pool estructuralmente vacío → [] sin llamar al oráculo.
func TestMatchJob_PoolVacioNoLlamaAlOraculo(t *testing.T) {
	scorer := &stubScorer{}
	jobs := &fakeJobRepo{jobs: []*entity.Job{
		{ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	cands := &fakeCandRepo{}
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{
		"agent-1": {AgentID: "agent-1", AssignedHRs: []string{"hr-1"}, Status: entity.AgentAssignmentStatusActive},
	}}
	gate := access.NewGate(agents, nopAssignRepo{}, jobs, cands)
	ranker := matching.NewRanker(gate, jobs, cands, scorer, 0)

	out, err := ranker.MatchJob(context.Background(),
		domain.Actor{ID: "agent-1", Role: domain.RoleAgent}, dto.MatchJobRequest{JobID: "job-1"})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
	assert.Zero(t, scorer.calls, "pool vacío es camino rápido definido, sin llamada externa")
	assert.Zero(t, cands.listCalls, "alcance estructuralmente vacío ni consulta el store")
}

func TestMatchJob_FalloDelOraculoEsUpstream(t *testing.T) {
	scorer := &stubScorer{err: fmt.Errorf("timeout del modelo: %w", domain.ErrUpstream)}
	ranker, _, _ := buildRanker(scorer)

	_, err := ranker.MatchJob(context.Background(), admin, dto.MatchJobRequest{JobID: "job-1"})
	assert.ErrorIs(t, err, domain.ErrUpstream, "el lote falla entero, sin resultados parciales")
	assert.Equal(t, 1, scorer.calls, "sin reintentos dentro del ranker")
}

func TestMatchJob_VacanteFueraDeAlcanceEsNotFound(t *testing.T) {
	scorer := &stubScorer{}
	jobs := &fakeJobRepo{jobs: []*entity.Job{
		{ID: "job-ajena", CreatedBy: "hr-2", Status: entity.JobStatusOpen},
	}}
	cands := &fakeCandRepo{}
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{
		"agent-1": {AgentID: "agent-1", AssignedHRs: []string{"hr-1"}, Status: entity.AgentAssignmentStatusActive},
	}}
	gate := access.NewGate(agents, nopAssignRepo{}, jobs, cands)
	ranker := matching.NewRanker(gate, jobs, cands, scorer, 0)

	_, err := ranker.MatchJob(context.Background(),
		domain.Actor{ID: "agent-1", Role: domain.RoleAgent}, dto.MatchJobRequest{JobID: "job-ajena"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "fuera de alcance no se distingue de inexistente")
	assert.Zero(t, scorer.calls)
}

func TestMatchJob_LimiteRecortaElRanking(t *testing.T) {
	scorer := &stubScorer{raw: []dto.RawMatch{
		rawMatch("c1", float64(70)),
		rawMatch("c2", float64(95)),
		rawMatch("c3", float64(80)),
	}}
	ranker, _, _ := buildRanker(scorer)

	out, err := ranker.MatchJob(context.Background(), admin, dto.MatchJobRequest{JobID: "job-1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Matches, 2)
	assert.Equal(t, "c2", out.Matches[0].CandidateID)
	assert.Equal(t, "c3", out.Matches[1].CandidateID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dirección inversa: vacantes para un candidato.
// ──────────────────────────────────────────────────────────────────────────────

func TestMatchCandidate_RankeaVacantesVisibles(t *testing.T) {
	scorer := &stubScorer{raw: []dto.RawMatch{
		{CandidateID: "c1", JobID: "job-1", Score: float64(60)},
		{CandidateID: "c1", JobID: "job-2", Score: float64(90)},
	}}
	jobs := &fakeJobRepo{jobs: []*entity.Job{
		{ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
		{ID: "job-2", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
		{ID: "job-cancelada", CreatedBy: "hr-1", Status: entity.JobStatusCancelled},
	}}
	cands := &fakeCandRepo{cands: []*entity.Candidate{{ID: "c1"}}}
	agents := &fakeAgentRepo{active: map[string]*entity.AgentAssignment{}}
	gate := access.NewGate(agents, nopAssignRepo{}, jobs, cands)
	ranker := matching.NewRanker(gate, jobs, cands, scorer, 0)

	out, err := ranker.MatchCandidate(context.Background(), admin, dto.MatchCandidateRequest{CandidateID: "c1"})
	require.NoError(t, err)
	require.Len(t, out.Matches, 2)
	assert.Equal(t, "job-2", out.Matches[0].JobID)
	assert.Equal(t, "job-1", out.Matches[1].JobID)
	require.Len(t, scorer.lastJobs, 2, "la vacante cancelada no entra al pool del admin")
	require.Len(t, scorer.lastCands, 1)
	assert.Equal(t, "c1", scorer.lastCands[0].CandidateID)
}
