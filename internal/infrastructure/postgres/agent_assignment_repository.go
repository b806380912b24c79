package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

var _ repository.AgentAssignmentRepository = (*AgentAssignmentRepo)(nil)

// AgentAssignmentRepo implementación del puerto AgentAssignmentRepository.
// assigned_hrs y assigned_candidates como text[]. El índice único parcial
// sobre agent_id WHERE status='active' garantiza un solo registro activo.
type AgentAssignmentRepo struct {
	q Querier
}

// NewAgentAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgentAssignmentRepository(q Querier) *AgentAssignmentRepo {
	return &AgentAssignmentRepo{q: q}
}

const agentAssignmentColumns = `id, agent_id, assigned_hrs, assigned_candidates, status, created_by, created_at, updated_at`

// Create persiste el registro; una violación del índice único parcial (ya hay
// un activo para el agente) se mapea a domain.ErrConflict.
func (r *AgentAssignmentRepo) Create(a *entity.AgentAssignment) error {
	query := `
		INSERT INTO agent_assignments (id, agent_id, assigned_hrs, assigned_candidates, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.AgentID, a.AssignedHRs, a.AssignedCandidates, a.Status, a.CreatedBy,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert agent assignment: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID, o nil si no existe.
func (r *AgentAssignmentRepo) GetByID(id string) (*entity.AgentAssignment, error) {
	return r.getOne(`SELECT `+agentAssignmentColumns+` FROM agent_assignments WHERE id = $1`, id)
}

// GetActiveByAgent devuelve el registro activo del agente, o nil si no existe
// (estado legítimo: agente recién incorporado, no un error).
func (r *AgentAssignmentRepo) GetActiveByAgent(agentID string) (*entity.AgentAssignment, error) {
	return r.getOne(
		`SELECT `+agentAssignmentColumns+` FROM agent_assignments WHERE agent_id = $1 AND status = 'active'`,
		agentID,
	)
}

// Update persiste cambios de un registro existente.
func (r *AgentAssignmentRepo) Update(a *entity.AgentAssignment) error {
	query := `
		UPDATE agent_assignments
		SET assigned_hrs = $2, assigned_candidates = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.AssignedHRs, a.AssignedCandidates, a.Status, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update agent assignment: %w", err)
	}
	return nil
}

// List lista registros con paginación.
func (r *AgentAssignmentRepo) List(limit, offset int) ([]*entity.AgentAssignment, error) {
	query := `SELECT ` + agentAssignmentColumns + ` FROM agent_assignments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agent assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.AgentAssignment
	for rows.Next() {
		var a entity.AgentAssignment
		if err := rows.Scan(
			&a.ID, &a.AgentID, &a.AssignedHRs, &a.AssignedCandidates, &a.Status,
			&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agent assignment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *AgentAssignmentRepo) getOne(query string, arg any) (*entity.AgentAssignment, error) {
	var a entity.AgentAssignment
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.AgentID, &a.AssignedHRs, &a.AssignedCandidates, &a.Status,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent assignment: %w", err)
	}
	return &a, nil
}
