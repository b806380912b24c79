package dto

// JobDescriptor descripción serializable de una vacante para el oráculo de scoring.
type JobDescriptor struct {
	JobID           string   `json:"job_id"`
	Title           string   `json:"title"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	Education       string   `json:"education"`
	Languages       []string `json:"languages"`
	Location        string   `json:"location"`
	SalaryMin       string   `json:"salary_min"`
	SalaryMax       string   `json:"salary_max"`
}

// CandidateDescriptor descripción serializable de un candidato para el oráculo.
type CandidateDescriptor struct {
	CandidateID       string   `json:"candidate_id"`
	Skills            []string `json:"skills"`
	ExperienceYears   int      `json:"experience_years"`
	Education         string   `json:"education"`
	Languages         []string `json:"languages"`
	Certifications    []string `json:"certifications"`
	Location          string   `json:"location"`
	SalaryExpectation string   `json:"salary_expectation"`
	Availability      string   `json:"availability"`
}

// RawMatch entrada cruda del oráculo, sin validar. Los campos laxos (any)
// reflejan que el modelo puede devolver tipos inesperados; el ranker valida,
// normaliza o descarta cada entrada.
type RawMatch struct {
	CandidateID string
	JobID       string
	Score       any // número esperado en [0,100]
	Reasons     any // array de strings esperado
	Strengths   any
	Concerns    any
}

// MatchResult resultado validado y normalizado de un par candidato↔vacante.
// Efímero: se calcula por request y no se persiste.
type MatchResult struct {
	CandidateID string   `json:"candidate_id"`
	JobID       string   `json:"job_id"`
	MatchScore  int      `json:"match_score"` // entero en [0,100]
	Reasons     []string `json:"reasons"`
	Strengths   []string `json:"strengths"`
	Concerns    []string `json:"concerns"`
}

// MatchJobRequest entrada para rankear candidatos contra una vacante.
type MatchJobRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// MatchCandidateRequest entrada para rankear vacantes para un candidato.
type MatchCandidateRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// MatchListResponse salida del ranking.
type MatchListResponse struct {
	Matches []MatchResult `json:"matches"`
}
