package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// CandidateAssignmentRepository define el puerto de persistencia para CandidateAssignment.
type CandidateAssignmentRepository interface {
	// Create persiste la asignación. El índice único parcial sobre
	// (candidate_id, assigned_to) WHERE status='active' convierte la carrera
	// check-then-insert en una violación 23505 que el adaptador mapea a
	// domain.ErrConflict.
	Create(a *entity.CandidateAssignment) error
	GetByID(id string) (*entity.CandidateAssignment, error)
	Update(a *entity.CandidateAssignment) error
	Delete(id string) error
	List(f AssignmentFilter, limit, offset int) ([]*entity.CandidateAssignment, error)
	// Count evalúa el mismo predicado que List para que total y página coincidan.
	Count(f AssignmentFilter) (int, error)
	// DistinctCandidatesByHR ids de candidatos con alguna asignación hacia el HR
	// (cualquier status: el HR conserva visibilidad histórica).
	DistinctCandidatesByHR(hrUserID string) ([]string, error)
	// DistinctHRsByCandidate ids de HR con alguna asignación sobre el candidato.
	DistinctHRsByCandidate(candidateID string) ([]string, error)
}
