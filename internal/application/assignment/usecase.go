// Package assignment implementa la máquina de estados de CandidateAssignment:
// creación con derivación del HR destino, verificación de alcance del agente,
// transiciones, borrado y listados con el alcance del actor.
package assignment

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/audit"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	domassign "github.com/tu-usuario/talento-pro/internal/domain/assignment"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// UseCase orquesta el ciclo de vida de las asignaciones de candidatos.
type UseCase struct {
	gate       *access.Gate
	assignRepo repository.CandidateAssignmentRepository
	userRepo   repository.UserRepository
	jobRepo    repository.JobRepository
	candRepo   repository.CandidateRepository
	audit      *audit.Recorder
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	gate *access.Gate,
	assignRepo repository.CandidateAssignmentRepository,
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
	candRepo repository.CandidateRepository,
	rec *audit.Recorder,
) *UseCase {
	return &UseCase{
		gate:       gate,
		assignRepo: assignRepo,
		userRepo:   userRepo,
		jobRepo:    jobRepo,
		candRepo:   candRepo,
		audit:      rec,
	}
}

// resolveTargetHR deriva el HR destino de la petición: de jobId (dueño de la
// vacante) o de assignedTo. Si vienen ambos y no coinciden, el destino es
// ambiguo y la petición se rechaza.
func (uc *UseCase) resolveTargetHR(in dto.CreateAssignmentRequest) (hrID string, jobID *string, err error) {
	if in.JobID != "" {
		job, err := uc.jobRepo.GetByID(in.JobID)
		if err != nil {
			return "", nil, err
		}
		if job == nil {
			return "", nil, domain.ErrNotFound
		}
		if in.AssignedTo != "" && in.AssignedTo != job.CreatedBy {
			return "", nil, domain.ErrAmbiguousTarget
		}
		id := job.ID
		return job.CreatedBy, &id, nil
	}
	if in.AssignedTo != "" {
		return in.AssignedTo, nil, nil
	}
	return "", nil, domain.ErrInvalidInput
}

// Create crea una asignación con status=active y etapa new.
// Un agente solo puede crear si tanto el HR destino como el candidato están
// dentro de su alcance activo. La unicidad de (candidateId, assignedTo) activa
// la resuelve el store: el índice único parcial convierte la carrera en un
// ErrConflict del repositorio.
func (uc *UseCase) Create(actor domain.Actor, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if !actor.IsAdmin() && !actor.IsAgent() {
		return nil, domain.ErrForbidden
	}

	hrID, jobID, err := uc.resolveTargetHR(in)
	if err != nil {
		return nil, err
	}

	hrUser, err := uc.userRepo.GetByID(hrID)
	if err != nil {
		return nil, err
	}
	if hrUser == nil || hrUser.Role != domain.RoleHR || hrUser.Status != entity.UserStatusActive {
		return nil, domain.ErrInvalidInput
	}

	cand, err := uc.candRepo.GetByID(in.CandidateID)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}

	if actor.IsAgent() {
		hrs, err := uc.gate.VisibleHRsForAgent(actor.ID)
		if err != nil {
			return nil, err
		}
		cands, err := uc.gate.VisibleCandidatesForAgent(actor.ID)
		if err != nil {
			return nil, err
		}
		if !hrs.Has(hrID) || !cands.Has(in.CandidateID) {
			return nil, domain.ErrForbidden
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	a := &entity.CandidateAssignment{
		ID:              uuid.New().String(),
		CandidateID:     in.CandidateID,
		JobID:           jobID,
		AssignedTo:      hrID,
		AssignedBy:      actor.ID,
		Priority:        priority,
		Status:          entity.AssignmentStatusActive,
		CandidateStatus: entity.CandidateStageNew,
		DueDate:         in.DueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Notes != "" {
		a.Notes = []entity.AssignmentNote{{AuthorID: actor.ID, Text: in.Notes, CreatedAt: now}}
	}

	if err := uc.assignRepo.Create(a); err != nil {
		return nil, err
	}

	uc.audit.Record(actor, "assignment.create", "candidate_assignment", a.ID, nil, a)
	return dto.ToAssignmentResponse(a), nil
}

// load carga el registro aplicando la regla de visibilidad: fuera del alcance
// del actor se responde NotFound, indistinguible de inexistente (no filtrar
// existencia).
func (uc *UseCase) load(actor domain.Actor, id string) (*entity.CandidateAssignment, error) {
	a, err := uc.assignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	visible, err := uc.gate.CanSeeAssignment(actor, a)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// canMutate regla de mutación: admins, el HR dueño o el agente creador.
func canMutate(actor domain.Actor, a *entity.CandidateAssignment) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.IsHR() && a.AssignedTo == actor.ID {
		return true
	}
	if actor.IsAgent() && a.AssignedBy == actor.ID {
		return true
	}
	return false
}

// Get devuelve una asignación visible para el actor.
func (uc *UseCase) Get(actor domain.Actor, id string) (*dto.AssignmentResponse, error) {
	a, err := uc.load(actor, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAssignmentResponse(a), nil
}

// Transition aplica una mutación parcial vía las funciones puras de transición
// y persiste el resultado, auditando el delta antes/después.
func (uc *UseCase) Transition(actor domain.Actor, id string, in dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	a, err := uc.load(actor, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, a) {
		// Visible pero sin permiso de escritura (ej. el propio candidato).
		return nil, domain.ErrForbidden
	}

	ch := domassign.Change{
		Status:          in.Status,
		CandidateStatus: in.CandidateStatus,
		Priority:        in.Priority,
		Feedback:        in.Feedback,
		DueDate:         in.DueDate,
	}
	if in.Notes != nil && *in.Notes != "" {
		ch.Note = &entity.AssignmentNote{AuthorID: actor.ID, Text: *in.Notes}
	}

	next, delta, err := domassign.Apply(*a, ch, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.assignRepo.Update(&next); err != nil {
		return nil, err
	}

	uc.audit.Record(actor, "assignment.transition", "candidate_assignment", a.ID, delta.Before, delta.After)
	return dto.ToAssignmentResponse(&next), nil
}

// Delete elimina una asignación: solo admins o el agente creador, y solo
// mientras sigue activa (los terminales se retienen para auditoría).
func (uc *UseCase) Delete(actor domain.Actor, id string) error {
	a, err := uc.load(actor, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !(actor.IsAgent() && a.AssignedBy == actor.ID) {
		return domain.ErrForbidden
	}
	if !domassign.CanDelete(*a) {
		return domain.ErrConflict
	}
	if err := uc.assignRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actor, "assignment.delete", "candidate_assignment", a.ID, a, nil)
	return nil
}

// List devuelve la página de asignaciones del actor. El total sale de un COUNT
// con el mismo predicado que la página: ambos responden siempre al mismo filtro.
func (uc *UseCase) List(actor domain.Actor, in dto.ListAssignmentsRequest) (*dto.AssignmentListResponse, error) {
	in.DefaultPage()

	scope, empty, err := uc.gate.AssignmentScope(actor)
	if err != nil {
		return nil, err
	}
	if empty {
		return &dto.AssignmentListResponse{
			Items: []dto.AssignmentResponse{},
			Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: 0},
		}, nil
	}

	// Los filtros del caller se componen sobre el alcance; el alcance manda.
	scope.Status = in.Status
	scope.CandidateStatus = in.CandidateStatus
	scope.Priority = in.Priority
	if scope.CandidateID == "" {
		scope.CandidateID = in.CandidateID
	}

	list, err := uc.assignRepo.List(scope, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.assignRepo.Count(scope)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.ToAssignmentResponse(a))
	}
	return &dto.AssignmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}
