package repository

import "github.com/tu-usuario/talento-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// Search busca por nombre/email dentro del alcance de visibilidad.
	Search(q SearchQuery, f IDFilter) ([]*entity.User, error)
}
