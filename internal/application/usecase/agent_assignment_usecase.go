package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/talento-pro/internal/application/audit"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// AgentTxRunner ejecuta callbacks dentro de una transacción con el repositorio
// de alcances de agente atado a la tx. El reemplazo del registro activo
// (desactivar el vigente + insertar el nuevo) debe ser atómico.
type AgentTxRunner interface {
	Run(ctx context.Context, fn func(agentRepo repository.AgentAssignmentRepository) error) error
}

// AgentAssignmentUseCase administra el alcance de trabajo de los agentes.
// Operación exclusiva de admins; el registro activo es la frontera de
// visibilidad que el AccessGate consulta.
type AgentAssignmentUseCase struct {
	repo     repository.AgentAssignmentRepository
	userRepo repository.UserRepository
	tx       AgentTxRunner
	audit    *audit.Recorder
}

// NewAgentAssignmentUseCase construye el caso de uso.
func NewAgentAssignmentUseCase(
	repo repository.AgentAssignmentRepository,
	userRepo repository.UserRepository,
	tx AgentTxRunner,
	rec *audit.Recorder,
) *AgentAssignmentUseCase {
	return &AgentAssignmentUseCase{repo: repo, userRepo: userRepo, tx: tx, audit: rec}
}

// Create define el alcance de un agente. Si ya existe un registro activo, lo
// desactiva y crea el nuevo en la misma transacción: el alcance vigente se
// reemplaza, nunca coexisten dos activos (el índice único parcial respalda la
// regla frente a carreras).
func (uc *AgentAssignmentUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateAgentAssignmentRequest) (*dto.AgentAssignmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	agent, err := uc.userRepo.GetByID(in.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil || agent.Role != domain.RoleAgent {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	record := &entity.AgentAssignment{
		ID:                 uuid.New().String(),
		AgentID:            in.AgentID,
		AssignedHRs:        dedupe(in.AssignedHRs),
		AssignedCandidates: dedupe(in.AssignedCandidates),
		Status:             entity.AgentAssignmentStatusActive,
		CreatedBy:          actor.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var previous *entity.AgentAssignment
	err = uc.tx.Run(ctx, func(agentRepo repository.AgentAssignmentRepository) error {
		previous, err = agentRepo.GetActiveByAgent(in.AgentID)
		if err != nil {
			return err
		}
		if previous != nil {
			previous.Status = entity.AgentAssignmentStatusInactive
			previous.UpdatedAt = now
			if err := agentRepo.Update(previous); err != nil {
				return err
			}
		}
		return agentRepo.Create(record)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(actor, "agent_assignment.create", "agent_assignment", record.ID, previous, record)
	return entityToAgentAssignmentResponse(record), nil
}

// Update muta el alcance de un agente (sets de HR/candidatos, status).
func (uc *AgentAssignmentUseCase) Update(actor domain.Actor, id string, in dto.UpdateAgentAssignmentRequest) (*dto.AgentAssignmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	before := *record
	if in.AssignedHRs != nil {
		record.AssignedHRs = dedupe(in.AssignedHRs)
	}
	if in.AssignedCandidates != nil {
		record.AssignedCandidates = dedupe(in.AssignedCandidates)
	}
	if in.Status != nil {
		record.Status = *in.Status
	}
	record.UpdatedAt = time.Now()
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "agent_assignment.update", "agent_assignment", record.ID, &before, record)
	return entityToAgentAssignmentResponse(record), nil
}

// GetByID obtiene un registro. Solo admins.
func (uc *AgentAssignmentUseCase) GetByID(actor domain.Actor, id string) (*dto.AgentAssignmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return entityToAgentAssignmentResponse(record), nil
}

// List lista registros con paginación. Solo admins.
func (uc *AgentAssignmentUseCase) List(actor domain.Actor, page dto.PageRequest) ([]dto.AgentAssignmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgentAssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAgentAssignmentResponse(a))
	}
	return items, nil
}

// dedupe elimina duplicados y vacíos preservando el orden de entrada.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func entityToAgentAssignmentResponse(a *entity.AgentAssignment) *dto.AgentAssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AgentAssignmentResponse{
		ID:                 a.ID,
		AgentID:            a.AgentID,
		AssignedHRs:        a.AssignedHRs,
		AssignedCandidates: a.AssignedCandidates,
		Status:             a.Status,
		CreatedBy:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
