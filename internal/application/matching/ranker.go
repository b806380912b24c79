// Package matching implementa el ranker de matching candidato↔vacante sobre
// el oráculo de scoring externo: arma el pool ya filtrado por el AccessGate,
// hace una única llamada por lote, valida y normaliza la respuesta y produce
// un orden total determinista.
package matching

import (
	"context"
	"time"

	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// scoringTimeout tope por llamada al oráculo; la llamada completa o falla
// entera, sin resultados parciales por timeout.
const scoringTimeout = 30 * time.Second

// defaultMaxPool tope de perfiles por llamada si la configuración no lo fija.
const defaultMaxPool = 25

// Ranker orquesta el matching. El pool llega siempre pre-filtrado por el
// AccessGate; el ranker no aplica autorización propia.
type Ranker struct {
	gate     *access.Gate
	jobRepo  repository.JobRepository
	candRepo repository.CandidateRepository
	scorer   ports.ScoringService
	maxPool  int
}

// NewRanker construye el ranker. maxPool ≤ 0 usa el default.
func NewRanker(
	gate *access.Gate,
	jobRepo repository.JobRepository,
	candRepo repository.CandidateRepository,
	scorer ports.ScoringService,
	maxPool int,
) *Ranker {
	if maxPool <= 0 {
		maxPool = defaultMaxPool
	}
	return &Ranker{gate: gate, jobRepo: jobRepo, candRepo: candRepo, scorer: scorer, maxPool: maxPool}
}

// jobInScope evalúa si una vacante cae dentro del filtro de visibilidad.
func jobInScope(f repository.JobFilter, job *entity.Job) bool {
	if f.All {
		return true
	}
	if f.ExcludeCancelled && job.Status == entity.JobStatusCancelled {
		return false
	}
	if f.CreatedBy != nil {
		for _, id := range f.CreatedBy {
			if id == job.CreatedBy {
				return true
			}
		}
		return false
	}
	return true
}

// MatchJob rankea los candidatos visibles del actor contra una vacante.
// Pool vacío → lista vacía sin llamar al oráculo (camino rápido, no error).
func (r *Ranker) MatchJob(ctx context.Context, actor domain.Actor, in dto.MatchJobRequest) (*dto.MatchListResponse, error) {
	job, err := r.loadVisibleJob(actor, in.JobID)
	if err != nil {
		return nil, err
	}

	scope, err := r.gate.VisibleCandidatesScope(actor)
	if err != nil {
		return nil, err
	}
	if scope.Empty() {
		return &dto.MatchListResponse{Matches: []dto.MatchResult{}}, nil
	}
	pool, err := r.candRepo.ListByFilter(scope, r.maxPool)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return &dto.MatchListResponse{Matches: []dto.MatchResult{}}, nil
	}

	candDescs := make([]dto.CandidateDescriptor, 0, len(pool))
	poolOrder := make([]string, 0, len(pool))
	for _, c := range pool {
		candDescs = append(candDescs, candidateDescriptor(c))
		poolOrder = append(poolOrder, c.ID)
	}

	raw, err := r.score(ctx, []dto.JobDescriptor{jobDescriptor(job)}, candDescs)
	if err != nil {
		return nil, err
	}

	results := rank(raw, poolOrder, func(m dto.MatchResult) string { return m.CandidateID })
	return &dto.MatchListResponse{Matches: capped(results, in.Limit)}, nil
}

// MatchCandidate rankea las vacantes visibles del actor para un candidato.
func (r *Ranker) MatchCandidate(ctx context.Context, actor domain.Actor, in dto.MatchCandidateRequest) (*dto.MatchListResponse, error) {
	cand, err := r.loadVisibleCandidate(actor, in.CandidateID)
	if err != nil {
		return nil, err
	}

	jobScope, err := r.gate.VisibleJobsScope(actor)
	if err != nil {
		return nil, err
	}
	if jobScope.Empty() {
		return &dto.MatchListResponse{Matches: []dto.MatchResult{}}, nil
	}
	pool, err := r.jobRepo.List(jobScope, r.maxPool, 0)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return &dto.MatchListResponse{Matches: []dto.MatchResult{}}, nil
	}

	jobDescs := make([]dto.JobDescriptor, 0, len(pool))
	poolOrder := make([]string, 0, len(pool))
	for _, j := range pool {
		jobDescs = append(jobDescs, jobDescriptor(j))
		poolOrder = append(poolOrder, j.ID)
	}

	raw, err := r.score(ctx, jobDescs, []dto.CandidateDescriptor{candidateDescriptor(cand)})
	if err != nil {
		return nil, err
	}

	results := rank(raw, poolOrder, func(m dto.MatchResult) string { return m.JobID })
	return &dto.MatchListResponse{Matches: capped(results, in.Limit)}, nil
}

func (r *Ranker) loadVisibleJob(actor domain.Actor, jobID string) (*entity.Job, error) {
	job, err := r.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	scope, err := r.gate.VisibleJobsScope(actor)
	if err != nil {
		return nil, err
	}
	// Fuera de alcance = NotFound: no se filtra existencia.
	if !jobInScope(scope, job) {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func (r *Ranker) loadVisibleCandidate(actor domain.Actor, candidateID string) (*entity.Candidate, error) {
	cand, err := r.candRepo.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}
	scope, err := r.gate.VisibleCandidatesScope(actor)
	if err != nil {
		return nil, err
	}
	if !scope.All {
		ok := false
		for _, id := range scope.IDs {
			if id == cand.ID {
				ok = true
				break
			}
		}
		if !ok {
			return nil, domain.ErrNotFound
		}
	}
	return cand, nil
}

// score hace la única llamada por lote al oráculo, con timeout propio.
// No hay reintentos por sub-pool: el lote completa o falla entero.
func (r *Ranker) score(ctx context.Context, jobs []dto.JobDescriptor, cands []dto.CandidateDescriptor) ([]dto.RawMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, scoringTimeout)
	defer cancel()
	return r.scorer.Score(ctx, jobs, cands)
}

func jobDescriptor(j *entity.Job) dto.JobDescriptor {
	return dto.JobDescriptor{
		JobID:           j.ID,
		Title:           j.Title,
		Skills:          j.Requirements.Skills,
		ExperienceLevel: j.Requirements.ExperienceLevel,
		Education:       j.Requirements.Education,
		Languages:       j.Requirements.Languages,
		Location:        j.Location,
		SalaryMin:       j.SalaryMin.String(),
		SalaryMax:       j.SalaryMax.String(),
	}
}

func candidateDescriptor(c *entity.Candidate) dto.CandidateDescriptor {
	return dto.CandidateDescriptor{
		CandidateID:       c.ID,
		Skills:            c.Profile.Skills,
		ExperienceYears:   c.Profile.ExperienceYears,
		Education:         c.Profile.Education,
		Languages:         c.Profile.Languages,
		Certifications:    c.Profile.Certifications,
		Location:          c.Profile.Location,
		SalaryExpectation: c.Profile.SalaryExpectation.String(),
		Availability:      c.Profile.Availability,
	}
}

func capped(results []dto.MatchResult, limit int) []dto.MatchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
