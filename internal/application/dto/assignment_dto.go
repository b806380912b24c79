package dto

import (
	"time"

	"github.com/tu-usuario/talento-pro/internal/domain/entity"
)

// CreateAssignmentRequest entrada para crear una asignación de candidato.
// Exactamente uno de job_id/assigned_to debe resolver al HR destino; si vienen
// ambos, el dueño del job debe coincidir con assigned_to.
type CreateAssignmentRequest struct {
	CandidateID string     `json:"candidate_id" validate:"required,uuid"`
	JobID       string     `json:"job_id" validate:"omitempty,uuid"`
	AssignedTo  string     `json:"assigned_to" validate:"omitempty,uuid"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Notes       string     `json:"notes"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateAssignmentRequest mutación parcial de una asignación.
type UpdateAssignmentRequest struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=completed rejected withdrawn"`
	CandidateStatus *string    `json:"candidate_status"`
	Priority        *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Notes           *string    `json:"notes"`
	Feedback        *string    `json:"feedback"`
	DueDate         *time.Time `json:"due_date"`
}

// ListAssignmentsRequest filtros de listado (se componen con el alcance del actor).
type ListAssignmentsRequest struct {
	Status          string `query:"status"`
	CandidateStatus string `query:"candidate_status"`
	Priority        string `query:"priority"`
	CandidateID     string `query:"candidate_id"`
	PageRequest
}

// AssignmentNoteDTO nota de seguimiento.
type AssignmentNoteDTO struct {
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignmentResponse salida de una asignación.
type AssignmentResponse struct {
	ID              string              `json:"id"`
	CandidateID     string              `json:"candidate_id"`
	JobID           *string             `json:"job_id,omitempty"`
	AssignedTo      string              `json:"assigned_to"`
	AssignedBy      string              `json:"assigned_by"`
	Priority        string              `json:"priority"`
	Status          string              `json:"status"`
	CandidateStatus string              `json:"candidate_status"`
	DueDate         *time.Time          `json:"due_date,omitempty"`
	Feedback        string              `json:"feedback,omitempty"`
	Notes           []AssignmentNoteDTO `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// AssignmentListResponse lista paginada; Total responde al mismo predicado que Items.
type AssignmentListResponse struct {
	Items []AssignmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ToAssignmentResponse mapea la entidad a su DTO de salida.
func ToAssignmentResponse(a *entity.CandidateAssignment) *AssignmentResponse {
	if a == nil {
		return nil
	}
	notes := make([]AssignmentNoteDTO, 0, len(a.Notes))
	for _, n := range a.Notes {
		notes = append(notes, AssignmentNoteDTO{AuthorID: n.AuthorID, Text: n.Text, CreatedAt: n.CreatedAt})
	}
	return &AssignmentResponse{
		ID:              a.ID,
		CandidateID:     a.CandidateID,
		JobID:           a.JobID,
		AssignedTo:      a.AssignedTo,
		AssignedBy:      a.AssignedBy,
		Priority:        a.Priority,
		Status:          a.Status,
		CandidateStatus: a.CandidateStatus,
		DueDate:         a.DueDate,
		Feedback:        a.Feedback,
		Notes:           notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// CreateAgentAssignmentRequest entrada (admin) para el alcance de un agente.
type CreateAgentAssignmentRequest struct {
	AgentID            string   `json:"agent_id" validate:"required,uuid"`
	AssignedHRs        []string `json:"assigned_hrs"`
	AssignedCandidates []string `json:"assigned_candidates"`
}

// UpdateAgentAssignmentRequest mutación parcial del alcance de un agente.
type UpdateAgentAssignmentRequest struct {
	AssignedHRs        []string `json:"assigned_hrs"`
	AssignedCandidates []string `json:"assigned_candidates"`
	Status             *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// AgentAssignmentResponse salida del alcance de un agente.
type AgentAssignmentResponse struct {
	ID                 string    `json:"id"`
	AgentID            string    `json:"agent_id"`
	AssignedHRs        []string  `json:"assigned_hrs"`
	AssignedCandidates []string  `json:"assigned_candidates"`
	Status             string    `json:"status"`
	CreatedBy          string    `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
