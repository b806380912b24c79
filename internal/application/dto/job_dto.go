package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest entrada para publicar una vacante.
type CreateJobRequest struct {
	Title           string          `json:"title" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	CompanyID       string          `json:"company_id" validate:"required,uuid"`
	Location        string          `json:"location"`
	Skills          []string        `json:"skills"`
	ExperienceLevel string          `json:"experience_level" validate:"omitempty,oneof=junior mid senior lead"`
	Education       string          `json:"education"`
	Languages       []string        `json:"languages"`
	SalaryMin       decimal.Decimal `json:"salary_min"`
	SalaryMax       decimal.Decimal `json:"salary_max"`
}

// UpdateJobRequest entrada para actualizar una vacante (campos opcionales).
type UpdateJobRequest struct {
	Title           *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Status          *string          `json:"status" validate:"omitempty,oneof=open assigned interview closed cancelled"`
	Location        *string          `json:"location"`
	Skills          []string         `json:"skills"`
	ExperienceLevel *string          `json:"experience_level"`
	Education       *string          `json:"education"`
	Languages       []string         `json:"languages"`
	SalaryMin       *decimal.Decimal `json:"salary_min"`
	SalaryMax       *decimal.Decimal `json:"salary_max"`
}

// JobResponse salida de una vacante.
type JobResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	CompanyID       string          `json:"company_id"`
	CreatedBy       string          `json:"created_by"`
	Status          string          `json:"status"`
	Location        string          `json:"location"`
	Skills          []string        `json:"skills"`
	ExperienceLevel string          `json:"experience_level"`
	Education       string          `json:"education"`
	Languages       []string        `json:"languages"`
	SalaryMin       decimal.Decimal `json:"salary_min"`
	SalaryMax       decimal.Decimal `json:"salary_max"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// JobListResponse lista paginada de vacantes.
type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
