package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
// skills y languages se guardan como text[]; los filtros de visibilidad del
// AccessGate se traducen a predicados SQL en jobFilterSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, code, title, description, company_id, created_by, status, location,
		skills, experience_level, education, languages, salary_min, salary_max, created_at, updated_at`

// Create persiste una vacante. El code (JOB0001) lo asigna la DB.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, title, description, company_id, created_by, status, location,
			skills, experience_level, education, languages, salary_min, salary_max, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING code`
	err := r.q.QueryRow(context.Background(), query,
		job.ID, job.Title, job.Description, job.CompanyID, job.CreatedBy, job.Status, job.Location,
		job.Requirements.Skills, job.Requirements.ExperienceLevel, job.Requirements.Education,
		job.Requirements.Languages, job.SalaryMin, job.SalaryMax, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.Code)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una vacante por ID, o nil si no existe.
func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	return job, nil
}

// Update persiste cambios de una vacante existente.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, status = $4, location = $5, skills = $6,
			experience_level = $7, education = $8, languages = $9,
			salary_min = $10, salary_max = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.Title, job.Description, job.Status, job.Location, job.Requirements.Skills,
		job.Requirements.ExperienceLevel, job.Requirements.Education, job.Requirements.Languages,
		job.SalaryMin, job.SalaryMax, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// List lista vacantes dentro del alcance de visibilidad.
func (r *JobRepo) List(f repository.JobFilter, limit, offset int) ([]*entity.Job, error) {
	where, args := jobFilterSQL(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// CompanyIDs devuelve los distinct company_id de las vacantes visibles.
func (r *JobRepo) CompanyIDs(f repository.JobFilter) ([]string, error) {
	where, args := jobFilterSQL(f)
	query := `SELECT DISTINCT company_id FROM jobs ` + where
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("job company ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan company id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Search busca por título, descripción o ubicación (texto libre sin acentos) o
// por code, dentro del alcance de visibilidad.
func (r *JobRepo) Search(q repository.SearchQuery, f repository.JobFilter) ([]*entity.Job, error) {
	where, args := jobFilterSQL(f)
	if where == "" {
		where = "WHERE true"
	}

	args = append(args, "%"+q.Term+"%")
	textPred := fmt.Sprintf(
		`(lower(unaccent(title)) LIKE $%d OR lower(unaccent(description)) LIKE $%d OR lower(unaccent(location)) LIKE $%d`,
		len(args), len(args), len(args))
	if q.CodePattern != "" {
		args = append(args, q.CodePattern)
		textPred += fmt.Sprintf(` OR code ~* $%d`, len(args))
	}
	textPred += `)`

	args = append(args, q.Limit)
	query := fmt.Sprintf(`SELECT %s FROM jobs %s AND %s ORDER BY code LIMIT $%d`,
		jobColumns, where, textPred, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// jobFilterSQL traduce el JobFilter del AccessGate a un WHERE parametrizado.
// El caller ya descartó los alcances estructuralmente vacíos; aquí un
// CreatedBy vacío no nulo produce un predicado imposible por seguridad.
func jobFilterSQL(f repository.JobFilter) (string, []any) {
	if f.All {
		return "", nil
	}
	var preds []string
	var args []any
	if f.ExcludeCancelled {
		preds = append(preds, `status <> 'cancelled'`)
	}
	if f.CreatedBy != nil {
		args = append(args, f.CreatedBy)
		preds = append(preds, fmt.Sprintf(`created_by = ANY($%d)`, len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		preds = append(preds, fmt.Sprintf(`status = $%d`, len(args)))
	}
	if f.CompanyID != "" {
		args = append(args, f.CompanyID)
		preds = append(preds, fmt.Sprintf(`company_id = $%d`, len(args)))
	}
	if len(preds) == 0 {
		return "", nil
	}
	where := "WHERE " + preds[0]
	for _, p := range preds[1:] {
		where += " AND " + p
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*entity.Job, error) {
	var j entity.Job
	err := row.Scan(
		&j.ID, &j.Code, &j.Title, &j.Description, &j.CompanyID, &j.CreatedBy, &j.Status, &j.Location,
		&j.Requirements.Skills, &j.Requirements.ExperienceLevel, &j.Requirements.Education,
		&j.Requirements.Languages, &j.SalaryMin, &j.SalaryMax, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobs(rows pgx.Rows) ([]*entity.Job, error) {
	var out []*entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
