package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

var _ repository.CandidateAssignmentRepository = (*CandidateAssignmentRepo)(nil)

// CandidateAssignmentRepo implementación del puerto CandidateAssignmentRepository.
// Las notas se guardan como JSONB. El índice único parcial sobre
// (candidate_id, assigned_to) WHERE status='active' convierte la carrera
// check-then-insert en una violación 23505 mapeada a domain.ErrConflict.
type CandidateAssignmentRepo struct {
	q Querier
}

// NewCandidateAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCandidateAssignmentRepository(q Querier) *CandidateAssignmentRepo {
	return &CandidateAssignmentRepo{q: q}
}

const assignmentColumns = `id, candidate_id, job_id, assigned_to, assigned_by, priority, status,
		candidate_status, due_date, feedback, notes, created_at, updated_at`

// Create persiste la asignación.
func (r *CandidateAssignmentRepo) Create(a *entity.CandidateAssignment) error {
	notes, err := notesJSON(a.Notes)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO candidate_assignments (id, candidate_id, job_id, assigned_to, assigned_by,
			priority, status, candidate_status, due_date, feedback, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		a.ID, a.CandidateID, a.JobID, a.AssignedTo, a.AssignedBy, a.Priority, a.Status,
		a.CandidateStatus, a.DueDate, a.Feedback, notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert candidate assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID, o nil si no existe.
func (r *CandidateAssignmentRepo) GetByID(id string) (*entity.CandidateAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM candidate_assignments WHERE id = $1`
	a, err := scanAssignment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate assignment by id: %w", err)
	}
	return a, nil
}

// Update persiste cambios de una asignación existente.
func (r *CandidateAssignmentRepo) Update(a *entity.CandidateAssignment) error {
	notes, err := notesJSON(a.Notes)
	if err != nil {
		return err
	}
	query := `
		UPDATE candidate_assignments
		SET priority = $2, status = $3, candidate_status = $4, due_date = $5,
			feedback = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		a.ID, a.Priority, a.Status, a.CandidateStatus, a.DueDate, a.Feedback, notes, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update candidate assignment: %w", err)
	}
	return nil
}

// Delete elimina una asignación (solo admin o agente creador, mientras activa;
// la regla la aplica el caso de uso).
func (r *CandidateAssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM candidate_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate assignment: %w", err)
	}
	return nil
}

// List lista asignaciones según el predicado, ordenadas por creación descendente.
func (r *CandidateAssignmentRepo) List(f repository.AssignmentFilter, limit, offset int) ([]*entity.CandidateAssignment, error) {
	where, args := assignmentFilterSQL(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM candidate_assignments %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		assignmentColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidate assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.CandidateAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count evalúa el mismo predicado que List: total y página siempre responden
// al mismo filtro.
func (r *CandidateAssignmentRepo) Count(f repository.AssignmentFilter) (int, error) {
	where, args := assignmentFilterSQL(f)
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM candidate_assignments `+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count candidate assignments: %w", err)
	}
	return total, nil
}

// DistinctCandidatesByHR ids de candidatos con alguna asignación hacia el HR
// (cualquier status: visibilidad histórica).
func (r *CandidateAssignmentRepo) DistinctCandidatesByHR(hrUserID string) ([]string, error) {
	return r.distinct(`SELECT DISTINCT candidate_id FROM candidate_assignments WHERE assigned_to = $1`, hrUserID)
}

// DistinctHRsByCandidate ids de HR con alguna asignación sobre el candidato.
func (r *CandidateAssignmentRepo) DistinctHRsByCandidate(candidateID string) ([]string, error) {
	return r.distinct(`SELECT DISTINCT assigned_to FROM candidate_assignments WHERE candidate_id = $1`, candidateID)
}

func (r *CandidateAssignmentRepo) distinct(query, arg string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("distinct assignment ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assignment id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// assignmentFilterSQL traduce el AssignmentFilter a un WHERE parametrizado.
// Campos vacíos no restringen.
func assignmentFilterSQL(f repository.AssignmentFilter) (string, []any) {
	var preds []string
	var args []any
	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		preds = append(preds, fmt.Sprintf(`%s = $%d`, col, len(args)))
	}
	add("assigned_to", f.AssignedTo)
	add("assigned_by", f.AssignedBy)
	add("candidate_id", f.CandidateID)
	add("status", f.Status)
	add("candidate_status", f.CandidateStatus)
	add("priority", f.Priority)

	if len(preds) == 0 {
		return "", nil
	}
	where := "WHERE " + preds[0]
	for _, p := range preds[1:] {
		where += " AND " + p
	}
	return where, args
}

func notesJSON(notes []entity.AssignmentNote) ([]byte, error) {
	if notes == nil {
		notes = []entity.AssignmentNote{}
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("serializar notas: %w", err)
	}
	return b, nil
}

func scanAssignment(row rowScanner) (*entity.CandidateAssignment, error) {
	var a entity.CandidateAssignment
	var notes []byte
	err := row.Scan(
		&a.ID, &a.CandidateID, &a.JobID, &a.AssignedTo, &a.AssignedBy, &a.Priority, &a.Status,
		&a.CandidateStatus, &a.DueDate, &a.Feedback, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &a.Notes); err != nil {
			return nil, fmt.Errorf("deserializar notas: %w", err)
		}
	}
	return &a, nil
}
