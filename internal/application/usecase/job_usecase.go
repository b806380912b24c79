package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// JobUseCase aplica reglas de negocio para vacantes. Los listados y lecturas
// pasan por el alcance de visibilidad del AccessGate.
type JobUseCase struct {
	gate        *access.Gate
	repo        repository.JobRepository
	companyRepo repository.CompanyRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(gate *access.Gate, repo repository.JobRepository, companyRepo repository.CompanyRepository) *JobUseCase {
	return &JobUseCase{gate: gate, repo: repo, companyRepo: companyRepo}
}

// Create publica una vacante. Solo hr: el usuario HR queda como dueño (ancla
// de visibilidad para agentes). La empresa debe existir.
func (uc *JobUseCase) Create(actor domain.Actor, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if actor.Role != domain.RoleHR {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.SalaryMin.GreaterThan(in.SalaryMax) && !in.SalaryMax.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	job := &entity.Job{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		CompanyID:   in.CompanyID,
		CreatedBy:   actor.ID,
		Status:      entity.JobStatusOpen,
		Location:    in.Location,
		Requirements: entity.JobRequirements{
			Skills:          in.Skills,
			ExperienceLevel: in.ExperienceLevel,
			Education:       in.Education,
			Languages:       in.Languages,
		},
		SalaryMin: in.SalaryMin,
		SalaryMax: in.SalaryMax,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(job); err != nil {
		return nil, err
	}
	return entityToJobResponse(job), nil
}

// GetByID obtiene una vacante visible para el actor. Fuera de alcance no se
// distingue de inexistente.
func (uc *JobUseCase) GetByID(actor domain.Actor, id string) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	scope, err := uc.gate.VisibleJobsScope(actor)
	if err != nil {
		return nil, err
	}
	if !jobInScope(scope, job) {
		return nil, domain.ErrNotFound
	}
	return entityToJobResponse(job), nil
}

// Update actualiza una vacante. Solo el HR dueño o un admin.
func (uc *JobUseCase) Update(actor domain.Actor, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, domain.ErrNotFound // mismo cuerpo que inexistente: no filtrar existencia
	}
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Status != nil {
		job.Status = *in.Status
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Skills != nil {
		job.Requirements.Skills = in.Skills
	}
	if in.ExperienceLevel != nil {
		job.Requirements.ExperienceLevel = *in.ExperienceLevel
	}
	if in.Education != nil {
		job.Requirements.Education = *in.Education
	}
	if in.Languages != nil {
		job.Requirements.Languages = in.Languages
	}
	if in.SalaryMin != nil {
		job.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		job.SalaryMax = *in.SalaryMax
	}
	if job.SalaryMin.GreaterThan(job.SalaryMax) && !job.SalaryMax.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	job.UpdatedAt = time.Now()
	if err := uc.repo.Update(job); err != nil {
		return nil, err
	}
	return entityToJobResponse(job), nil
}

// List lista las vacantes visibles para el actor. Un alcance estructuralmente
// vacío devuelve lista vacía sin consultar el store.
func (uc *JobUseCase) List(actor domain.Actor, status string, page dto.PageRequest) (*dto.JobListResponse, error) {
	page.DefaultPage()
	scope, err := uc.gate.VisibleJobsScope(actor)
	if err != nil {
		return nil, err
	}
	resp := &dto.JobListResponse{
		Items: []dto.JobResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	if scope.Empty() {
		return resp, nil
	}
	scope.Status = status
	list, err := uc.repo.List(scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, j := range list {
		resp.Items = append(resp.Items, *entityToJobResponse(j))
	}
	return resp, nil
}

// jobInScope evalúa el filtro de visibilidad sobre una vacante concreta.
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

func entityToJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	return &dto.JobResponse{
		ID:              j.ID,
		Code:            j.Code,
		Title:           j.Title,
		Description:     j.Description,
		CompanyID:       j.CompanyID,
		CreatedBy:       j.CreatedBy,
		Status:          j.Status,
		Location:        j.Location,
		Skills:          j.Requirements.Skills,
		ExperienceLevel: j.Requirements.ExperienceLevel,
		Education:       j.Requirements.Education,
		Languages:       j.Requirements.Languages,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}
