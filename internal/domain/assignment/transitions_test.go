package assignment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/assignment"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
)

var testNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func activeAssignment(stage string) entity.CandidateAssignment {
	return entity.CandidateAssignment{
		ID:              "as-1",
		CandidateID:     "cand-1",
		AssignedTo:      "hr-1",
		AssignedBy:      "agent-1",
		Priority:        entity.PriorityMedium,
		Status:          entity.AssignmentStatusActive,
		CandidateStatus: stage,
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Avance de etapa (candidateStatus): solo hacia adelante en el orden fijo.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EtapaAvanzaHaciaAdelante(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"new a reviewed", entity.CandidateStageNew, entity.CandidateStageReviewed, true},
		{"reviewed a shortlisted", entity.CandidateStageReviewed, entity.CandidateStageShortlisted, true},
		{"salto new a interviewed", entity.CandidateStageNew, entity.CandidateStageInterviewed, true},
		{"interviewed a offer_sent", entity.CandidateStageInterviewed, entity.CandidateStageOfferSent, true},
		{"offer_sent a hired", entity.CandidateStageOfferSent, entity.CandidateStageHired, true},
		{"offer_sent a rejected", entity.CandidateStageOfferSent, entity.CandidateStageRejected, true},
		{"retroceso reviewed a new", entity.CandidateStageReviewed, entity.CandidateStageNew, false},
		{"retroceso hired a reviewed", entity.CandidateStageHired, entity.CandidateStageReviewed, false},
		{"hired a rejected mismo rango", entity.CandidateStageHired, entity.CandidateStageRejected, false},
		{"rejected a hired mismo rango", entity.CandidateStageRejected, entity.CandidateStageHired, false},
		{"etapa desconocida", entity.CandidateStageNew, "phantom", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := activeAssignment(tc.from)
			next, delta, err := assignment.Apply(current, assignment.Change{CandidateStatus: strPtr(tc.to)}, testNow)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next.CandidateStatus)
				assert.Equal(t, tc.from, delta.Before.CandidateStatus,
					"el delta debe conservar el estado anterior para auditoría")
				assert.Equal(t, tc.to, delta.After.CandidateStatus)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition,
					"un retroceso o etapa inválida debe rechazarse con ErrInvalidTransition")
				assert.Equal(t, tc.from, current.CandidateStatus, "el registro actual no debe mutarse")
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida (status): active → terminal, sin salida de terminales.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_StatusActiveATerminal(t *testing.T) {
	for _, target := range []string{
		entity.AssignmentStatusCompleted,
		entity.AssignmentStatusRejected,
		entity.AssignmentStatusWithdrawn,
	} {
		current := activeAssignment(entity.CandidateStageReviewed)
		next, _, err := assignment.Apply(current, assignment.Change{Status: strPtr(target)}, testNow)
		require.NoError(t, err, "active debe poder cerrar en %s", target)
		assert.Equal(t, target, next.Status)
		assert.True(t, next.IsTerminal())
	}
}

func TestApply_TerminalRechazaStatusYEtapa(t *testing.T) {
	current := activeAssignment(entity.CandidateStageInterviewed)
	current.Status = entity.AssignmentStatusCompleted

	_, _, err := assignment.Apply(current, assignment.Change{Status: strPtr(entity.AssignmentStatusWithdrawn)}, testNow)
	assert.ErrorIs(t, err, domain.ErrConflict, "un registro cerrado no admite cambio de status")

	_, _, err = assignment.Apply(current, assignment.Change{CandidateStatus: strPtr(entity.CandidateStageOfferSent)}, testNow)
	assert.ErrorIs(t, err, domain.ErrConflict, "un registro cerrado no admite avance de etapa")
}

// Un registro terminal sigue aceptando notas, prioridad y feedback (record-keeping).
func TestApply_TerminalAdmiteNotasYFeedback(t *testing.T) {
	current := activeAssignment(entity.CandidateStageHired)
	current.Status = entity.AssignmentStatusCompleted

	fb := "excelente proceso"
	next, _, err := assignment.Apply(current, assignment.Change{
		Feedback: &fb,
		Priority: strPtr(entity.PriorityLow),
		Note:     &entity.AssignmentNote{AuthorID: "hr-1", Text: "cierre administrativo"},
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, fb, next.Feedback)
	assert.Equal(t, entity.PriorityLow, next.Priority)
	require.Len(t, next.Notes, 1)
	assert.Equal(t, testNow, next.Notes[0].CreatedAt, "la nota sin fecha toma el reloj de la transición")
	assert.Empty(t, current.Notes, "el registro original no debe ganar la nota")
}

func TestApply_StatusInvalido(t *testing.T) {
	current := activeAssignment(entity.CandidateStageNew)
	_, _, err := assignment.Apply(current, assignment.Change{Status: strPtr("paused")}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApply_PrioridadInvalida(t *testing.T) {
	current := activeAssignment(entity.CandidateStageNew)
	_, _, err := assignment.Apply(current, assignment.Change{Priority: strPtr("critical")}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_SinCambiosSoloActualizaTimestamp(t *testing.T) {
	current := activeAssignment(entity.CandidateStageNew)
	next, delta, err := assignment.Apply(current, assignment.Change{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, current.Status, next.Status)
	assert.Equal(t, current.CandidateStatus, next.CandidateStatus)
	assert.Equal(t, testNow, next.UpdatedAt)
	assert.Equal(t, current.ID, delta.Before.ID)
}

func TestCanDelete_SoloActivos(t *testing.T) {
	assert.True(t, assignment.CanDelete(activeAssignment(entity.CandidateStageNew)))

	closed := activeAssignment(entity.CandidateStageNew)
	closed.Status = entity.AssignmentStatusWithdrawn
	assert.False(t, assignment.CanDelete(closed), "los terminales se retienen para auditoría")
}
