package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type jobStoreFake struct {
	byID      map[string]*entity.Job
	listCalls int
	created   *entity.Job
}

func (f *jobStoreFake) Create(j *entity.Job) error {
	f.created = j
	return nil
}
func (f *jobStoreFake) GetByID(id string) (*entity.Job, error) { return f.byID[id], nil }
func (f *jobStoreFake) Update(j *entity.Job) error {
	f.byID[j.ID] = j
	return nil
}
func (f *jobStoreFake) List(flt repository.JobFilter, limit, offset int) ([]*entity.Job, error) {
	f.listCalls++
	var out []*entity.Job
	for _, j := range f.byID {
		out = append(out, j)
	}
	return out, nil
}
func (f *jobStoreFake) CompanyIDs(repository.JobFilter) ([]string, error) { return nil, nil }
func (f *jobStoreFake) Search(repository.SearchQuery, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}

type companyStoreFake struct {
	byID map[string]*entity.Company
}

func (f *companyStoreFake) Create(*entity.Company) error { return nil }
func (f *companyStoreFake) GetByID(id string) (*entity.Company, error) {
	return f.byID[id], nil
}
func (f *companyStoreFake) Update(*entity.Company) error              { return nil }
func (f *companyStoreFake) List(int, int) ([]*entity.Company, error)  { return nil, nil }
func (f *companyStoreFake) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.Company, error) {
	return nil, nil
}

type agentStoreFake struct {
	active map[string]*entity.AgentAssignment
}

func (f *agentStoreFake) Create(*entity.AgentAssignment) error            { return nil }
func (f *agentStoreFake) GetByID(string) (*entity.AgentAssignment, error) { return nil, nil }
func (f *agentStoreFake) Update(*entity.AgentAssignment) error            { return nil }
func (f *agentStoreFake) List(int, int) ([]*entity.AgentAssignment, error) {
	return nil, nil
}
func (f *agentStoreFake) GetActiveByAgent(agentID string) (*entity.AgentAssignment, error) {
	return f.active[agentID], nil
}

type assignStoreFake struct{}

func (assignStoreFake) Create(*entity.CandidateAssignment) error            { return nil }
func (assignStoreFake) GetByID(string) (*entity.CandidateAssignment, error) { return nil, nil }
func (assignStoreFake) Update(*entity.CandidateAssignment) error            { return nil }
func (assignStoreFake) Delete(string) error                                 { return nil }
func (assignStoreFake) List(repository.AssignmentFilter, int, int) ([]*entity.CandidateAssignment, error) {
	return nil, nil
}
func (assignStoreFake) Count(repository.AssignmentFilter) (int, error)     { return 0, nil }
func (assignStoreFake) DistinctCandidatesByHR(string) ([]string, error)    { return nil, nil }
func (assignStoreFake) DistinctHRsByCandidate(string) ([]string, error)    { return nil, nil }

type candStoreFake struct{}

func (candStoreFake) Create(*entity.Candidate) error               { return nil }
func (candStoreFake) GetByID(string) (*entity.Candidate, error)    { return nil, nil }
func (candStoreFake) GetByUserID(string) (*entity.Candidate, error) { return nil, nil }
func (candStoreFake) Update(*entity.Candidate) error               { return nil }
func (candStoreFake) List(int, int) ([]*entity.Candidate, error)   { return nil, nil }
func (candStoreFake) ListByFilter(repository.IDFilter, int) ([]*entity.Candidate, error) {
	return nil, nil
}
func (candStoreFake) Search(repository.SearchQuery, repository.IDFilter) ([]*entity.Candidate, error) {
	return nil, nil
}

func buildJobUC(jobs *jobStoreFake, agents *agentStoreFake) *usecase.JobUseCase {
	if agents == nil {
		agents = &agentStoreFake{active: map[string]*entity.AgentAssignment{}}
	}
	companies := &companyStoreFake{byID: map[string]*entity.Company{
		"com-1": {ID: "com-1", Name: "Acme"},
	}}
	gate := access.NewGate(agents, assignStoreFake{}, jobs, candStoreFake{})
	return usecase.NewJobUseCase(gate, jobs, companies)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestJobCreate_SoloHRPuedePublicar(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{}}
	uc := buildJobUC(jobs, nil)

	_, err := uc.Create(domain.Actor{ID: "cand-user", Role: domain.RoleCandidate}, dto.CreateJobRequest{
		Title: "Backend Go", CompanyID: "com-1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "candidate no puede publicar vacantes")

	out, err := uc.Create(domain.Actor{ID: "hr-1", Role: domain.RoleHR}, dto.CreateJobRequest{
		Title: "Backend Go", CompanyID: "com-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "hr-1", out.CreatedBy, "el HR creador queda como dueño")
	assert.Equal(t, entity.JobStatusOpen, out.Status, "toda vacante nace open")
}

func TestJobCreate_EmpresaInexistenteEsNotFound(t *testing.T) {
	uc := buildJobUC(&jobStoreFake{byID: map[string]*entity.Job{}}, nil)

	_, err := uc.Create(domain.Actor{ID: "hr-1", Role: domain.RoleHR}, dto.CreateJobRequest{
		Title: "Backend Go", CompanyID: "com-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobCreate_RangoSalarialInvertidoEsInvalido(t *testing.T) {
	uc := buildJobUC(&jobStoreFake{byID: map[string]*entity.Job{}}, nil)

	_, err := uc.Create(domain.Actor{ID: "hr-1", Role: domain.RoleHR}, dto.CreateJobRequest{
		Title:     "Backend Go",
		CompanyID: "com-1",
		SalaryMin: decimal.NewFromInt(9000),
		SalaryMax: decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "min > max debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad: fuera de alcance responde como inexistente
// ──────────────────────────────────────────────────────────────────────────────

func TestJobGetByID_FueraDeAlcanceEsNotFound(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{
		"job-1": {ID: "job-1", Title: "Backend Go", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	uc := buildJobUC(jobs, nil)

	// El dueño la ve.
	out, err := uc.GetByID(domain.Actor{ID: "hr-1", Role: domain.RoleHR}, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", out.ID)

	// Otro HR recibe exactamente el mismo error que si no existiera.
	_, errOther := uc.GetByID(domain.Actor{ID: "hr-2", Role: domain.RoleHR}, "job-1")
	_, errMissing := uc.GetByID(domain.Actor{ID: "hr-2", Role: domain.RoleHR}, "job-inexistente")
	assert.ErrorIs(t, errOther, domain.ErrNotFound)
	assert.Equal(t, errMissing, errOther, "fuera de alcance e inexistente son indistinguibles")
}

func TestJobGetByID_CanceladaInvisibleParaNoAdmin(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{
		"job-1": {ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusCancelled},
	}}
	uc := buildJobUC(jobs, nil)

	_, err := uc.GetByID(domain.Actor{ID: "hr-1", Role: domain.RoleHR}, "job-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "cancelada queda fuera del alcance de hr")

	// superadmin mantiene visibilidad total.
	out, err := uc.GetByID(domain.Actor{ID: "root", Role: domain.RoleSuperadmin}, "job-1")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCancelled, out.Status)
}

func TestJobUpdate_NoDuenoRecibeNotFound(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{
		"job-1": {ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	uc := buildJobUC(jobs, nil)

	title := "Otro título"
	_, err := uc.Update(domain.Actor{ID: "hr-2", Role: domain.RoleHR}, "job-1", dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound, "editar ajeno no debe filtrar existencia")

	out, err := uc.Update(domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}, "job-1", dto.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Otro título", out.Title, "admin puede editar cualquier vacante")
}

// ──────────────────────────────────────────────────────────────────────────────
// List: alcance estructuralmente vacío no toca el store
// ──────────────────────────────────────────────────────────────────────────────

func TestJobList_AgenteSinAsignacionNoConsultaElStore(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{
		"job-1": {ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	uc := buildJobUC(jobs, &agentStoreFake{active: map[string]*entity.AgentAssignment{}})

	out, err := uc.List(domain.Actor{ID: "agent-1", Role: domain.RoleAgent}, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items, "items debe serializar como [] y no null")
	assert.Zero(t, jobs.listCalls, "alcance vacío no debe ejecutar la query")
}

func TestJobList_AgenteConAlcanceFiltraPorSusHRs(t *testing.T) {
	jobs := &jobStoreFake{byID: map[string]*entity.Job{
		"job-1": {ID: "job-1", CreatedBy: "hr-1", Status: entity.JobStatusOpen},
	}}
	agents := &agentStoreFake{active: map[string]*entity.AgentAssignment{
		"agent-1": {AgentID: "agent-1", AssignedHRs: []string{"hr-1"}, Status: entity.AgentAssignmentStatusActive},
	}}
	uc := buildJobUC(jobs, agents)

	out, err := uc.List(domain.Actor{ID: "agent-1", Role: domain.RoleAgent}, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, jobs.listCalls)
}
