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

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre PostgreSQL.
// skills, languages y certifications como text[]; salary_expectation NUMERIC.
type CandidateRepo struct {
	q Querier
}

// NewCandidateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCandidateRepository(q Querier) *CandidateRepo {
	return &CandidateRepo{q: q}
}

const candidateColumns = `id, code, user_id, name, skills, summary, location, experience_years,
		education, languages, certifications, salary_expectation, availability, status, created_at, updated_at`

// Create persiste un candidato. El code (CAN0001) lo asigna la DB. El unique
// sobre user_id respalda la relación 1:1 con el usuario.
func (r *CandidateRepo) Create(cand *entity.Candidate) error {
	query := `
		INSERT INTO candidates (id, user_id, name, skills, summary, location, experience_years,
			education, languages, certifications, salary_expectation, availability, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING code`
	err := r.q.QueryRow(context.Background(), query,
		cand.ID, cand.UserID, cand.Name, cand.Profile.Skills, cand.Profile.Summary,
		cand.Profile.Location, cand.Profile.ExperienceYears, cand.Profile.Education,
		cand.Profile.Languages, cand.Profile.Certifications, cand.Profile.SalaryExpectation,
		cand.Profile.Availability, cand.Status, cand.CreatedAt, cand.UpdatedAt,
	).Scan(&cand.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByID obtiene un candidato por ID, o nil si no existe.
func (r *CandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	return r.getOne(`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil asociado a un usuario, o nil si no tiene.
func (r *CandidateRepo) GetByUserID(userID string) (*entity.Candidate, error) {
	return r.getOne(`SELECT `+candidateColumns+` FROM candidates WHERE user_id = $1`, userID)
}

// Update persiste cambios de un candidato existente.
func (r *CandidateRepo) Update(cand *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $2, skills = $3, summary = $4, location = $5, experience_years = $6,
			education = $7, languages = $8, certifications = $9, salary_expectation = $10,
			availability = $11, status = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cand.ID, cand.Name, cand.Profile.Skills, cand.Profile.Summary, cand.Profile.Location,
		cand.Profile.ExperienceYears, cand.Profile.Education, cand.Profile.Languages,
		cand.Profile.Certifications, cand.Profile.SalaryExpectation, cand.Profile.Availability,
		cand.Status, cand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	return nil
}

// List lista candidatos con paginación, sin filtro de alcance.
func (r *CandidateRepo) List(limit, offset int) ([]*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

// ListByFilter devuelve candidatos activos dentro del alcance (pool de matching).
func (r *CandidateRepo) ListByFilter(f repository.IDFilter, limit int) ([]*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE status = 'active'`
	var args []any
	if !f.All {
		args = append(args, f.IDs)
		query += fmt.Sprintf(` AND id = ANY($%d)`, len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at LIMIT $%d`, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates by filter: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

// Search busca por nombre, resumen o skills (texto libre sin acentos) o por
// code, dentro del alcance de visibilidad.
func (r *CandidateRepo) Search(q repository.SearchQuery, f repository.IDFilter) ([]*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates
		WHERE (lower(unaccent(name)) LIKE $1 OR lower(unaccent(summary)) LIKE $1
			OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE lower(unaccent(s)) LIKE $1)`
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
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (r *CandidateRepo) getOne(query string, arg any) (*entity.Candidate, error) {
	var c entity.Candidate
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Code, &c.UserID, &c.Name, &c.Profile.Skills, &c.Profile.Summary,
		&c.Profile.Location, &c.Profile.ExperienceYears, &c.Profile.Education,
		&c.Profile.Languages, &c.Profile.Certifications, &c.Profile.SalaryExpectation,
		&c.Profile.Availability, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return &c, nil
}

func scanCandidates(rows pgx.Rows) ([]*entity.Candidate, error) {
	var out []*entity.Candidate
	for rows.Next() {
		var c entity.Candidate
		if err := rows.Scan(
			&c.ID, &c.Code, &c.UserID, &c.Name, &c.Profile.Skills, &c.Profile.Summary,
			&c.Profile.Location, &c.Profile.ExperienceYears, &c.Profile.Education,
			&c.Profile.Languages, &c.Profile.Certifications, &c.Profile.SalaryExpectation,
			&c.Profile.Availability, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
