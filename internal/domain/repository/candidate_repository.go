package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// CandidateRepository define el puerto de persistencia para Candidate.
type CandidateRepository interface {
	Create(candidate *entity.Candidate) error
	GetByID(id string) (*entity.Candidate, error)
	GetByUserID(userID string) (*entity.Candidate, error)
	Update(candidate *entity.Candidate) error
	List(limit, offset int) ([]*entity.Candidate, error)
	// ListByFilter devuelve candidatos activos dentro del alcance (pool de matching).
	ListByFilter(f IDFilter, limit int) ([]*entity.Candidate, error)
	// Search busca por nombre/resumen/skills dentro del alcance.
	Search(q SearchQuery, f IDFilter) ([]*entity.Candidate, error)
}
