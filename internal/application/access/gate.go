// Package access implementa el AccessGate: el cálculo, por actor, de los
// conjuntos de entidades visibles (HRs, candidatos, vacantes, empresas,
// usuarios). Es de solo lectura y nunca convierte un alcance vacío en error;
// esa decisión (Forbidden/NotFound) pertenece al componente que lo consume.
package access

import (
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// Gate calcula alcances de visibilidad leyendo asignaciones y vacantes.
// Las lecturas son snapshot: no se exige consistencia read-after-write más
// fuerte que la del store.
type Gate struct {
	agentRepo  repository.AgentAssignmentRepository
	assignRepo repository.CandidateAssignmentRepository
	jobRepo    repository.JobRepository
	candRepo   repository.CandidateRepository
}

// NewGate construye el gate.
func NewGate(
	agentRepo repository.AgentAssignmentRepository,
	assignRepo repository.CandidateAssignmentRepository,
	jobRepo repository.JobRepository,
	candRepo repository.CandidateRepository,
) *Gate {
	return &Gate{agentRepo: agentRepo, assignRepo: assignRepo, jobRepo: jobRepo, candRepo: candRepo}
}

// VisibleHRsForAgent HRs sobre los que el agente puede operar: unión de
// assignedHRs de su registro activo. Sin registro activo → conjunto vacío
// (agente recién incorporado: estado legítimo, no fallo).
func (g *Gate) VisibleHRsForAgent(agentID string) (IDSet, error) {
	aa, err := g.agentRepo.GetActiveByAgent(agentID)
	if err != nil {
		return nil, err
	}
	if aa == nil {
		return NewIDSet(), nil
	}
	return NewIDSet(aa.AssignedHRs), nil
}

// VisibleCandidatesForAgent candidatos dentro del alcance del agente.
func (g *Gate) VisibleCandidatesForAgent(agentID string) (IDSet, error) {
	aa, err := g.agentRepo.GetActiveByAgent(agentID)
	if err != nil {
		return nil, err
	}
	if aa == nil {
		return NewIDSet(), nil
	}
	return NewIDSet(aa.AssignedCandidates), nil
}

// VisibleCandidatesForHR candidatos con alguna asignación hacia el HR,
// cualquier status: el HR conserva visibilidad histórica.
func (g *Gate) VisibleCandidatesForHR(hrUserID string) (IDSet, error) {
	ids, err := g.assignRepo.DistinctCandidatesByHR(hrUserID)
	if err != nil {
		return nil, err
	}
	return NewIDSet(ids), nil
}

// VisibleJobsScope filtro de vacantes según rol:
//   - superadmin: todas.
//   - admin y candidate: todas las no canceladas.
//   - hr: sus propias vacantes, no canceladas.
//   - agent: vacantes cuyo dueño está en sus HRs asignados (no canceladas).
func (g *Gate) VisibleJobsScope(actor domain.Actor) (repository.JobFilter, error) {
	switch actor.Role {
	case domain.RoleSuperadmin:
		return repository.JobFilter{All: true}, nil
	case domain.RoleHR:
		return repository.JobFilter{ExcludeCancelled: true, CreatedBy: []string{actor.ID}}, nil
	case domain.RoleAgent:
		hrs, err := g.VisibleHRsForAgent(actor.ID)
		if err != nil {
			return repository.JobFilter{}, err
		}
		return repository.JobFilter{ExcludeCancelled: true, CreatedBy: hrs.Slice()}, nil
	default: // admin, candidate
		return repository.JobFilter{ExcludeCancelled: true}, nil
	}
}

// VisibleCandidatesScope filtro de candidatos según rol. Para un candidato,
// el alcance es su propio perfil (vacío si aún no tiene uno).
func (g *Gate) VisibleCandidatesScope(actor domain.Actor) (repository.IDFilter, error) {
	switch actor.Role {
	case domain.RoleSuperadmin, domain.RoleAdmin:
		return repository.IDFilter{All: true}, nil
	case domain.RoleHR:
		set, err := g.VisibleCandidatesForHR(actor.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		return repository.IDFilter{IDs: set.Slice()}, nil
	case domain.RoleAgent:
		set, err := g.VisibleCandidatesForAgent(actor.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		return repository.IDFilter{IDs: set.Slice()}, nil
	case domain.RoleCandidate:
		cand, err := g.candRepo.GetByUserID(actor.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		if cand == nil {
			return repository.IDFilter{IDs: []string{}}, nil
		}
		return repository.IDFilter{IDs: []string{cand.ID}}, nil
	}
	return repository.IDFilter{IDs: []string{}}, nil
}

// VisibleCompaniesScope visibilidad transitiva: las empresas de las vacantes
// que el actor puede ver.
func (g *Gate) VisibleCompaniesScope(actor domain.Actor) (repository.IDFilter, error) {
	if actor.Role == domain.RoleSuperadmin || actor.Role == domain.RoleAdmin {
		return repository.IDFilter{All: true}, nil
	}
	jobs, err := g.VisibleJobsScope(actor)
	if err != nil {
		return repository.IDFilter{}, err
	}
	if jobs.Empty() {
		return repository.IDFilter{IDs: []string{}}, nil
	}
	ids, err := g.jobRepo.CompanyIDs(jobs)
	if err != nil {
		return repository.IDFilter{}, err
	}
	return repository.IDFilter{IDs: NewIDSet(ids).Slice()}, nil
}

// VisibleUsersScope búsqueda de usuarios/HRs: admins ven todo; un agente ve
// sus HRs asignados; un candidato ve los HRs con asignaciones sobre él; un HR
// se ve solo a sí mismo.
func (g *Gate) VisibleUsersScope(actor domain.Actor) (repository.IDFilter, error) {
	switch actor.Role {
	case domain.RoleSuperadmin, domain.RoleAdmin:
		return repository.IDFilter{All: true}, nil
	case domain.RoleAgent:
		hrs, err := g.VisibleHRsForAgent(actor.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		return repository.IDFilter{IDs: hrs.Slice()}, nil
	case domain.RoleCandidate:
		cand, err := g.candRepo.GetByUserID(actor.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		if cand == nil {
			return repository.IDFilter{IDs: []string{}}, nil
		}
		hrs, err := g.assignRepo.DistinctHRsByCandidate(cand.ID)
		if err != nil {
			return repository.IDFilter{}, err
		}
		return repository.IDFilter{IDs: NewIDSet(hrs).Slice()}, nil
	case domain.RoleHR:
		return repository.IDFilter{IDs: []string{actor.ID}}, nil
	}
	return repository.IDFilter{IDs: []string{}}, nil
}

// AssignmentScope predicado base para listar CandidateAssignments del actor.
// empty=true indica alcance estructuralmente vacío (no ejecutar la query).
func (g *Gate) AssignmentScope(actor domain.Actor) (f repository.AssignmentFilter, empty bool, err error) {
	switch actor.Role {
	case domain.RoleSuperadmin, domain.RoleAdmin:
		return repository.AssignmentFilter{}, false, nil
	case domain.RoleHR:
		return repository.AssignmentFilter{AssignedTo: actor.ID}, false, nil
	case domain.RoleAgent:
		return repository.AssignmentFilter{AssignedBy: actor.ID}, false, nil
	case domain.RoleCandidate:
		cand, err := g.candRepo.GetByUserID(actor.ID)
		if err != nil {
			return repository.AssignmentFilter{}, false, err
		}
		if cand == nil {
			return repository.AssignmentFilter{}, true, nil
		}
		return repository.AssignmentFilter{CandidateID: cand.ID}, false, nil
	}
	return repository.AssignmentFilter{}, true, nil
}

// CanSeeAssignment regla de visibilidad de un registro puntual: HR dueño,
// agente creador, admins sin restricción, candidato sujeto del registro.
func (g *Gate) CanSeeAssignment(actor domain.Actor, a *entity.CandidateAssignment) (bool, error) {
	switch actor.Role {
	case domain.RoleSuperadmin, domain.RoleAdmin:
		return true, nil
	case domain.RoleHR:
		return a.AssignedTo == actor.ID, nil
	case domain.RoleAgent:
		return a.AssignedBy == actor.ID, nil
	case domain.RoleCandidate:
		cand, err := g.candRepo.GetByUserID(actor.ID)
		if err != nil {
			return false, err
		}
		return cand != nil && cand.ID == a.CandidateID, nil
	}
	return false, nil
}
