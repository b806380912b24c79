package repository

// Filtros tipados producidos por el AccessGate y consumidos por los adaptadores
// de persistencia. Reemplazan la construcción ad hoc de filtros por rol en cada
// endpoint: el alcance se calcula una vez y viaja como valor.

// JobFilter alcance de visibilidad sobre vacantes.
// All=true ignora el resto de restricciones (superadmin).
type JobFilter struct {
	All              bool
	ExcludeCancelled bool
	CreatedBy        []string // nil = sin restricción por dueño; vacío no nulo = alcance estructuralmente vacío
	Status           string   // filtro opcional del caller, no de visibilidad
	CompanyID        string
}

// Empty indica un alcance estructuralmente vacío: el caller no debe ejecutar la query.
func (f JobFilter) Empty() bool {
	return !f.All && f.CreatedBy != nil && len(f.CreatedBy) == 0
}

// IDFilter alcance por conjunto de ids (candidatos, empresas, usuarios).
// All=true ignora IDs. IDs vacío no nulo = alcance estructuralmente vacío.
type IDFilter struct {
	All bool
	IDs []string
}

// Empty indica un alcance estructuralmente vacío.
func (f IDFilter) Empty() bool {
	return !f.All && len(f.IDs) == 0
}

// AssignmentFilter predicado de listado de CandidateAssignment. Campos vacíos
// no restringen. El mismo valor alimenta la página y el COUNT para que total
// y resultados respondan siempre al mismo predicado.
type AssignmentFilter struct {
	AssignedTo      string
	AssignedBy      string
	CandidateID     string
	Status          string
	CandidateStatus string
	Priority        string
}

// SearchQuery término de búsqueda ya preparado por el SearchRouter.
type SearchQuery struct {
	Term        string // texto libre normalizado (minúsculas, sin acentos)
	CodePattern string // regex POSIX para el code legible (ej. ^JOB0*12$), vacío si no aplica
	Limit       int
}
