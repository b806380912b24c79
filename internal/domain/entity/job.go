package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Job.
const (
	JobStatusOpen      = "open"
	JobStatusAssigned  = "assigned"
	JobStatusInterview = "interview"
	JobStatusClosed    = "closed"
	JobStatusCancelled = "cancelled"
)

// JobRequirements requisitos de la vacante usados por el matching.
type JobRequirements struct {
	Skills          []string
	ExperienceLevel string // junior, mid, senior, lead
	Education       string
	Languages       []string
}

// Job vacante publicada por un usuario HR para una Company.
// CreatedBy (el HR dueño) es el ancla de visibilidad para agentes.
type Job struct {
	ID           string
	Code         string // identificador legible, ej. JOB0001
	Title        string
	Description  string
	CompanyID    string
	CreatedBy    string // usuario HR dueño de la vacante
	Status       string // open, assigned, interview, closed, cancelled
	Location     string
	Requirements JobRequirements
	SalaryMin    decimal.Decimal
	SalaryMax    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
