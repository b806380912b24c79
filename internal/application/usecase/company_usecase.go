package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una empresa. Solo hr y admins.
func (uc *CompanyUseCase) Create(actor domain.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if actor.Role != domain.RoleHR && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Industry:  in.Industry,
		Location:  in.Location,
		Website:   in.Website,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// Update actualiza una empresa. Solo quien la registró o un admin.
func (uc *CompanyUseCase) Update(actor domain.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Industry != nil {
		company.Industry = *in.Industry
	}
	if in.Location != nil {
		company.Location = *in.Location
	}
	if in.Website != nil {
		company.Website = *in.Website
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Industry:  c.Industry,
		Location:  c.Location,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
