package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCandidateRequest entrada para crear un perfil de candidato.
type CreateCandidateRequest struct {
	UserID            string          `json:"user_id" validate:"required,uuid"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Skills            []string        `json:"skills"`
	Summary           string          `json:"summary"`
	Location          string          `json:"location"`
	ExperienceYears   int             `json:"experience_years" validate:"min=0,max=60"`
	Education         string          `json:"education"`
	Languages         []string        `json:"languages"`
	Certifications    []string        `json:"certifications"`
	SalaryExpectation decimal.Decimal `json:"salary_expectation"`
	Availability      string          `json:"availability" validate:"omitempty,oneof=immediate two_weeks one_month negotiable"`
}

// UpdateCandidateRequest entrada para actualizar un perfil (campos opcionales).
type UpdateCandidateRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Skills            []string         `json:"skills"`
	Summary           *string          `json:"summary"`
	Location          *string          `json:"location"`
	ExperienceYears   *int             `json:"experience_years" validate:"omitempty,min=0,max=60"`
	Education         *string          `json:"education"`
	Languages         []string         `json:"languages"`
	Certifications    []string         `json:"certifications"`
	SalaryExpectation *decimal.Decimal `json:"salary_expectation"`
	Availability      *string          `json:"availability"`
	Status            *string          `json:"status" validate:"omitempty,oneof=active inactive blacklisted"`
}

// CandidateResponse salida de un candidato.
type CandidateResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	UserID            string          `json:"user_id"`
	Name              string          `json:"name"`
	Skills            []string        `json:"skills"`
	Summary           string          `json:"summary"`
	Location          string          `json:"location"`
	ExperienceYears   int             `json:"experience_years"`
	Education         string          `json:"education"`
	Languages         []string        `json:"languages"`
	Certifications    []string        `json:"certifications"`
	SalaryExpectation decimal.Decimal `json:"salary_expectation"`
	Availability      string          `json:"availability"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CandidateListResponse lista paginada de candidatos.
type CandidateListResponse struct {
	Items []CandidateResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
