package entity

import "time"

// Estados válidos para AgentAssignment.
const (
	AgentAssignmentStatusActive   = "active"
	AgentAssignmentStatusInactive = "inactive"
)

// AgentAssignment define el alcance de trabajo de un agente: los HR y candidatos
// sobre los que puede operar. Lo crea y mantiene un admin; a lo sumo un registro
// activo por agente (índice único parcial en la DB).
type AgentAssignment struct {
	ID                 string
	AgentID            string
	AssignedHRs        []string // ids de usuarios HR
	AssignedCandidates []string // ids de candidatos
	Status             string   // active, inactive
	CreatedBy          string   // admin que lo creó
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasHR indica si el HR está dentro del alcance del agente.
func (a *AgentAssignment) HasHR(hrID string) bool {
	for _, id := range a.AssignedHRs {
		if id == hrID {
			return true
		}
	}
	return false
}

// HasCandidate indica si el candidato está dentro del alcance del agente.
func (a *AgentAssignment) HasCandidate(candidateID string) bool {
	for _, id := range a.AssignedCandidates {
		if id == candidateID {
			return true
		}
	}
	return false
}
