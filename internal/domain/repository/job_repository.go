package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	Update(job *entity.Job) error
	// List aplica el alcance de visibilidad calculado por el AccessGate.
	List(f JobFilter, limit, offset int) ([]*entity.Job, error)
	// CompanyIDs devuelve los distinct company_id de las vacantes visibles
	// (visibilidad transitiva de empresas para la búsqueda).
	CompanyIDs(f JobFilter) ([]string, error)
	// Search busca por título/descripción/ubicación dentro del alcance.
	Search(q SearchQuery, f JobFilter) ([]*entity.Job, error)
}
