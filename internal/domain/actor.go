package domain

// Roles válidos para un actor del sistema.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleAgent      = "agent"
	RoleCandidate  = "candidate"
)

// Actor identifica quién ejecuta una operación: rol + id de usuario.
// Se construye una sola vez por request (a partir del JWT) y se pasa explícito
// a cada caso de uso; no existe estado global de "usuario actual".
type Actor struct {
	ID   string
	Role string
}

// IsAdmin indica si el actor tiene privilegios administrativos.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperadmin
}

// IsAgent indica si el actor es un agente de reclutamiento.
func (a Actor) IsAgent() bool { return a.Role == RoleAgent }

// IsHR indica si el actor es un usuario HR.
func (a Actor) IsHR() bool { return a.Role == RoleHR }
