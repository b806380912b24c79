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

// CandidateUseCase aplica reglas de negocio para perfiles de candidato.
type CandidateUseCase struct {
	gate     *access.Gate
	repo     repository.CandidateRepository
	userRepo repository.UserRepository
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(gate *access.Gate, repo repository.CandidateRepository, userRepo repository.UserRepository) *CandidateUseCase {
	return &CandidateUseCase{gate: gate, repo: repo, userRepo: userRepo}
}

// Create registra un perfil de candidato (1:1 con un usuario de rol candidate).
// Un candidato solo puede registrar su propio perfil; un admin, cualquiera.
// Devuelve ErrDuplicate si el usuario ya tiene perfil.
func (uc *CandidateUseCase) Create(actor domain.Actor, in dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	switch {
	case actor.IsAdmin():
	case actor.Role == domain.RoleCandidate && actor.ID == in.UserID:
	default:
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != domain.RoleCandidate {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cand := &entity.Candidate{
		ID:     uuid.New().String(),
		UserID: in.UserID,
		Name:   in.Name,
		Profile: entity.CandidateProfile{
			Skills:            in.Skills,
			Summary:           in.Summary,
			Location:          in.Location,
			ExperienceYears:   in.ExperienceYears,
			Education:         in.Education,
			Languages:         in.Languages,
			Certifications:    in.Certifications,
			SalaryExpectation: in.SalaryExpectation,
			Availability:      in.Availability,
		},
		Status:    entity.CandidateStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cand); err != nil {
		return nil, err
	}
	return entityToCandidateResponse(cand), nil
}

// GetByID obtiene un candidato visible para el actor.
func (uc *CandidateUseCase) GetByID(actor domain.Actor, id string) (*dto.CandidateResponse, error) {
	cand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}
	scope, err := uc.gate.VisibleCandidatesScope(actor)
	if err != nil {
		return nil, err
	}
	if !idInScope(scope, cand.ID) {
		return nil, domain.ErrNotFound
	}
	return entityToCandidateResponse(cand), nil
}

// Update actualiza un perfil. Solo el propio candidato o un admin; el campo
// status (blacklist) es exclusivo de admins.
func (uc *CandidateUseCase) Update(actor domain.Actor, id string, in dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	cand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}
	owner := actor.Role == domain.RoleCandidate && cand.UserID == actor.ID
	if !owner && !actor.IsAdmin() {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		cand.Status = *in.Status
	}
	if in.Name != nil {
		cand.Name = *in.Name
	}
	if in.Skills != nil {
		cand.Profile.Skills = in.Skills
	}
	if in.Summary != nil {
		cand.Profile.Summary = *in.Summary
	}
	if in.Location != nil {
		cand.Profile.Location = *in.Location
	}
	if in.ExperienceYears != nil {
		cand.Profile.ExperienceYears = *in.ExperienceYears
	}
	if in.Education != nil {
		cand.Profile.Education = *in.Education
	}
	if in.Languages != nil {
		cand.Profile.Languages = in.Languages
	}
	if in.Certifications != nil {
		cand.Profile.Certifications = in.Certifications
	}
	if in.SalaryExpectation != nil {
		cand.Profile.SalaryExpectation = *in.SalaryExpectation
	}
	if in.Availability != nil {
		cand.Profile.Availability = *in.Availability
	}
	cand.UpdatedAt = time.Now()
	if err := uc.repo.Update(cand); err != nil {
		return nil, err
	}
	return entityToCandidateResponse(cand), nil
}

// List lista candidatos dentro del alcance del actor. Alcance estructuralmente
// vacío devuelve lista vacía sin consultar el store.
func (uc *CandidateUseCase) List(actor domain.Actor, page dto.PageRequest) (*dto.CandidateListResponse, error) {
	page.DefaultPage()
	scope, err := uc.gate.VisibleCandidatesScope(actor)
	if err != nil {
		return nil, err
	}
	resp := &dto.CandidateListResponse{
		Items: []dto.CandidateResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	if scope.Empty() {
		return resp, nil
	}
	list, err := uc.repo.ListByFilter(scope, page.Limit)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		resp.Items = append(resp.Items, *entityToCandidateResponse(c))
	}
	return resp, nil
}

// idInScope evalúa un IDFilter sobre un id concreto.
func idInScope(f repository.IDFilter, id string) bool {
	if f.All {
		return true
	}
	for _, v := range f.IDs {
		if v == id {
			return true
		}
	}
	return false
}

func entityToCandidateResponse(c *entity.Candidate) *dto.CandidateResponse {
	if c == nil {
		return nil
	}
	return &dto.CandidateResponse{
		ID:                c.ID,
		Code:              c.Code,
		UserID:            c.UserID,
		Name:              c.Name,
		Skills:            c.Profile.Skills,
		Summary:           c.Profile.Summary,
		Location:          c.Profile.Location,
		ExperienceYears:   c.Profile.ExperienceYears,
		Education:         c.Profile.Education,
		Languages:         c.Profile.Languages,
		Certifications:    c.Profile.Certifications,
		SalaryExpectation: c.Profile.SalaryExpectation,
		Availability:      c.Profile.Availability,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
