// Package assignment contiene la lógica pura de transición del ciclo de vida
// de CandidateAssignment, desacoplada de la persistencia: funciones que toman
// el registro actual y devuelven el siguiente, sin efectos secundarios.
package assignment

import (
	"time"

	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
)

// stageRank orden fijo del pipeline. hired y rejected comparten rango: son las
// dos ramas terminales después de interviewed/offer_sent y no se alcanzan entre sí.
var stageRank = map[string]int{
	entity.CandidateStageNew:                0,
	entity.CandidateStageReviewed:           1,
	entity.CandidateStageShortlisted:        2,
	entity.CandidateStageInterviewScheduled: 3,
	entity.CandidateStageInterviewed:        4,
	entity.CandidateStageOfferSent:          5,
	entity.CandidateStageHired:              6,
	entity.CandidateStageRejected:           6,
}

// Change mutación solicitada sobre una asignación. Campos nil = sin cambio.
type Change struct {
	Status          *string
	CandidateStatus *string
	Priority        *string
	Feedback        *string
	DueDate         *time.Time
	Note            *entity.AssignmentNote
}

// Delta par antes/después para el registro de auditoría.
type Delta struct {
	Before entity.CandidateAssignment
	After  entity.CandidateAssignment
}

// StageForward indica si to está estrictamente adelante de from en el pipeline.
func StageForward(from, to string) bool {
	rf, okf := stageRank[from]
	rt, okt := stageRank[to]
	if !okf || !okt {
		return false
	}
	return rt > rf
}

// ValidStage valida una etapa del pipeline.
func ValidStage(s string) bool {
	_, ok := stageRank[s]
	return ok
}

// validTerminalStatus estados de destino permitidos desde active.
func validTerminalStatus(s string) bool {
	switch s {
	case entity.AssignmentStatusCompleted, entity.AssignmentStatusRejected, entity.AssignmentStatusWithdrawn:
		return true
	}
	return false
}

// Apply calcula el siguiente estado del registro aplicando el cambio solicitado.
// Reglas:
//   - un registro terminal no admite cambios de status ni candidateStatus
//     (ErrConflict); notas, prioridad, feedback y dueDate siguen permitidos.
//   - status solo transiciona active → {completed, rejected, withdrawn}.
//   - candidateStatus solo avanza hacia adelante (ErrInvalidTransition si no).
//
// Devuelve el registro resultante y el delta para auditoría. No muta current.
func Apply(current entity.CandidateAssignment, ch Change, now time.Time) (entity.CandidateAssignment, Delta, error) {
	next := current
	// Copias propias de los slices para no compartir backing arrays.
	next.Notes = append([]entity.AssignmentNote(nil), current.Notes...)

	if ch.Status != nil && *ch.Status != current.Status {
		if current.IsTerminal() {
			return current, Delta{}, domain.ErrConflict
		}
		if current.Status != entity.AssignmentStatusActive || !validTerminalStatus(*ch.Status) {
			return current, Delta{}, domain.ErrInvalidTransition
		}
		next.Status = *ch.Status
	}

	if ch.CandidateStatus != nil && *ch.CandidateStatus != current.CandidateStatus {
		if current.IsTerminal() {
			return current, Delta{}, domain.ErrConflict
		}
		if !ValidStage(*ch.CandidateStatus) || !StageForward(current.CandidateStatus, *ch.CandidateStatus) {
			return current, Delta{}, domain.ErrInvalidTransition
		}
		next.CandidateStatus = *ch.CandidateStatus
	}

	if ch.Priority != nil {
		if !entity.ValidPriority(*ch.Priority) {
			return current, Delta{}, domain.ErrInvalidInput
		}
		next.Priority = *ch.Priority
	}
	if ch.Feedback != nil {
		next.Feedback = *ch.Feedback
	}
	if ch.DueDate != nil {
		d := *ch.DueDate
		next.DueDate = &d
	}
	if ch.Note != nil && ch.Note.Text != "" {
		note := *ch.Note
		if note.CreatedAt.IsZero() {
			note.CreatedAt = now
		}
		next.Notes = append(next.Notes, note)
	}

	next.UpdatedAt = now
	return next, Delta{Before: current, After: next}, nil
}

// CanDelete indica si el registro admite borrado: solo mientras sigue activo
// (los terminales se retienen para auditoría).
func CanDelete(a entity.CandidateAssignment) bool {
	return a.Status == entity.AssignmentStatusActive
}
