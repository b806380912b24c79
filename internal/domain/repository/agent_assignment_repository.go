package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// AgentAssignmentRepository define el puerto de persistencia para AgentAssignment.
type AgentAssignmentRepository interface {
	// Create persiste el registro; mapea la violación del índice único parcial
	// (un activo por agente) a domain.ErrConflict.
	Create(a *entity.AgentAssignment) error
	GetByID(id string) (*entity.AgentAssignment, error)
	// GetActiveByAgent devuelve el registro activo del agente, o nil si no existe
	// (estado legítimo: agente recién incorporado, no un error).
	GetActiveByAgent(agentID string) (*entity.AgentAssignment, error)
	Update(a *entity.AgentAssignment) error
	List(limit, offset int) ([]*entity.AgentAssignment, error)
}
