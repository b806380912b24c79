package ports

import (
	"context"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
)

// ScoringService define el puerto de salida hacia el oráculo de scoring.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// El contrato es por lote: una sola llamada recibe todos los pares a puntuar
// (1 vacante × N candidatos, o N vacantes × 1 candidato) para acotar el número
// de llamadas externas. El razonamiento interno del modelo no es parte del
// contrato; solo el esquema de respuesta:
//
//	{"matches": [{"candidate_id", "job_id", "match_score", "reasons", "strengths", "concerns"}]}
//
// Las entradas crudas pueden venir malformadas; el MatchRanker las valida.
// Un fallo de red, cuerpo no-JSON o contenido vacío debe reportarse envolviendo
// domain.ErrUpstream: la operación de ranking falla completa, sin reintentos.
type ScoringService interface {
	Score(ctx context.Context, jobs []dto.JobDescriptor, candidates []dto.CandidateDescriptor) ([]dto.RawMatch, error)
}
