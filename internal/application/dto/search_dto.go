package dto

// SearchRequest entrada de la búsqueda global multi-entidad.
type SearchRequest struct {
	Query string `query:"q"`
	Types string `query:"types"` // csv: jobs,candidates,companies,users (vacío = todos)
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

// SearchJobHit resultado compacto de vacante.
type SearchJobHit struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// SearchCandidateHit resultado compacto de candidato.
type SearchCandidateHit struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
}

// SearchCompanyHit resultado compacto de empresa.
type SearchCompanyHit struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// SearchUserHit resultado compacto de usuario.
type SearchUserHit struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SearchResponse resultados por tipo; cada array se llena o queda vacío de
// forma independiente según el alcance del actor.
type SearchResponse struct {
	Jobs       []SearchJobHit       `json:"jobs"`
	Candidates []SearchCandidateHit `json:"candidates"`
	Companies  []SearchCompanyHit   `json:"companies"`
	Users      []SearchUserHit      `json:"users"`
}
