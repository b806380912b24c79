package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	// Search busca por nombre/industria dentro del alcance de visibilidad.
	Search(q SearchQuery, f IDFilter) ([]*entity.Company, error)
}
