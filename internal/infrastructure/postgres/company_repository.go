package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, code, name, industry, location, website, created_by, created_at, updated_at`

// Create persiste una empresa. El code (COM0001) lo asigna la DB.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, industry, location, website, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING code`
	err := r.q.QueryRow(context.Background(), query,
		company.ID, company.Name, company.Industry, company.Location, company.Website,
		company.CreatedBy, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.Code)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID, o nil si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.Industry, &c.Location, &c.Website,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// Update persiste cambios de una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, industry = $3, location = $4, website = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Industry, company.Location, company.Website, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

// Search busca por nombre o industria (texto libre sin acentos) o por code,
// dentro del alcance de visibilidad transitiva del actor.
func (r *CompanyRepo) Search(q repository.SearchQuery, f repository.IDFilter) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE (lower(unaccent(name)) LIKE $1 OR lower(unaccent(industry)) LIKE $1`
	args := []any{"%" + q.Term + "%"}
	if q.CodePattern != "" {
		args = append(args, q.CodePattern)
		query += fmt.Sprintf(` OR code ~* $%d`, len(args))
	}
	query += `)`
	if !f.All {
		args = append(args, f.IDs)
		query += fmt.Sprintf(` AND id = ANY($%d)`, len(args))
	}
	args = append(args, q.Limit)
	query += fmt.Sprintf(` ORDER BY code LIMIT $%d`, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

func scanCompanies(rows pgx.Rows) ([]*entity.Company, error) {
	var out []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Industry, &c.Location, &c.Website,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
