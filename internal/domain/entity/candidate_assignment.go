package entity

import "time"

// Estados del ciclo de vida de CandidateAssignment. Los tres últimos son terminales.
const (
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusRejected  = "rejected"
	AssignmentStatusWithdrawn = "withdrawn"
)

// Etapas del pipeline (candidateStatus). Avanzan solo hacia adelante.
const (
	CandidateStageNew                = "new"
	CandidateStageReviewed           = "reviewed"
	CandidateStageShortlisted        = "shortlisted"
	CandidateStageInterviewScheduled = "interview_scheduled"
	CandidateStageInterviewed        = "interviewed"
	CandidateStageOfferSent          = "offer_sent"
	CandidateStageHired              = "hired"
	CandidateStageRejected           = "rejected"
)

// Prioridades válidas.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// AssignmentNote nota de seguimiento adjunta a una asignación.
type AssignmentNote struct {
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateAssignment la unidad de trabajo del pipeline: un candidato asignado
// a un HR (directamente o derivado de una vacante). Invariante: a lo sumo un
// registro activo por par (candidateId, assignedTo), garantizado por índice
// único parcial en la DB.
type CandidateAssignment struct {
	ID              string
	CandidateID     string
	JobID           *string // opcional; si existe, AssignedTo se deriva del dueño del Job
	AssignedTo      string  // usuario HR dueño del trabajo
	AssignedBy      string  // actor que la creó (agente o admin)
	Priority        string  // low, medium, high, urgent
	Status          string  // active, completed, rejected, withdrawn
	CandidateStatus string  // etapa del pipeline, independiente de Status
	DueDate         *time.Time
	Feedback        string
	Notes           []AssignmentNote
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsTerminal indica si el ciclo de vida ya está cerrado.
func (a *CandidateAssignment) IsTerminal() bool {
	return a.Status == AssignmentStatusCompleted ||
		a.Status == AssignmentStatusRejected ||
		a.Status == AssignmentStatusWithdrawn
}

// ValidPriority valida una prioridad.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
