package usecase

import (
	"github.com/tu-usuario/talento-pro/internal/application/auth"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. Solo admins.
func (uc *UserUseCase) GetByID(actor domain.Actor, id string) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación. Solo admins.
func (uc *UserUseCase) List(actor domain.Actor, page dto.PageRequest) (*dto.UserListResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
