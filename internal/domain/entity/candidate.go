package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Candidate.
const (
	CandidateStatusActive      = "active"
	CandidateStatusInactive    = "inactive"
	CandidateStatusBlacklisted = "blacklisted"
)

// CandidateProfile perfil profesional usado por búsqueda y matching.
type CandidateProfile struct {
	Skills            []string
	Summary           string
	Location          string
	ExperienceYears   int
	Education         string
	Languages         []string
	Certifications    []string
	SalaryExpectation decimal.Decimal
	Availability      string // immediate, two_weeks, one_month, negotiable
}

// Candidate perfil de candidato (1:1 con un User de rol candidate).
type Candidate struct {
	ID        string
	Code      string // identificador legible, ej. CAN0001
	UserID    string
	Name      string
	Profile   CandidateProfile
	Status    string // active, inactive, blacklisted
	CreatedAt time.Time
	UpdatedAt time.Time
}
