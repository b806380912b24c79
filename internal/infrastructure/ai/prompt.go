package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
)

// Prompt y parseo compartidos por los adaptadores del oráculo de scoring
// (Anthropic y Gemini). El esquema de salida es el contrato del puerto
// ScoringService; cada adaptador solo cambia el transporte.

const scoringSystemPrompt = `Eres un reclutador técnico experto en matching candidato↔vacante.
Recibes una lista de vacantes y una lista de candidatos en JSON. Evalúa CADA par (candidato, vacante)
y devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "matches": [
    {
      "candidate_id": "<id del candidato, copiado literal de la entrada>",
      "job_id": "<id de la vacante, copiado literal de la entrada>",
      "match_score": <número entero entre 0 y 100>,
      "reasons": ["<razón principal del puntaje>", "..."],
      "strengths": ["<fortaleza del candidato frente a la vacante>", "..."],
      "concerns": ["<riesgo o brecha>", "..."]
    }
  ]
}

Reglas:
- match_score: 90–100 = encaje excelente, 70–89 = bueno, 50–69 = parcial, <50 = débil.
- Pondera skills, experiencia, idiomas, ubicación y expectativa salarial contra el rango de la vacante.
- reasons/strengths/concerns: máximo 3 entradas cada uno, frases cortas en español.
- Incluye una entrada por cada par; no omitas pares ni inventes ids.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown. Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// buildScoringInput serializa los pools como mensaje de usuario.
func buildScoringInput(jobs []dto.JobDescriptor, candidates []dto.CandidateDescriptor) (string, error) {
	payload := struct {
		Jobs       []dto.JobDescriptor       `json:"jobs"`
		Candidates []dto.CandidateDescriptor `json:"candidates"`
	}{Jobs: jobs, Candidates: candidates}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serializar pools de scoring: %w", err)
	}
	return "Evalúa estos pares:\n" + string(body), nil
}

// rawMatchPayload espejo laxo del esquema de respuesta. Los campos any se
// entregan tal cual al ranker, que valida o descarta cada entrada.
type rawMatchPayload struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Score       any    `json:"match_score"`
	Reasons     any    `json:"reasons"`
	Strengths   any    `json:"strengths"`
	Concerns    any    `json:"concerns"`
}

type scoringResponsePayload struct {
	Matches []rawMatchPayload `json:"matches"`
}

// parseMatches extrae y deserializa el bloque de matches de la respuesta del
// modelo. Un cuerpo sin JSON parseable es fallo del upstream completo.
func parseMatches(rawText string) ([]dto.RawMatch, error) {
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("%w: sin JSON en la respuesta del modelo", domain.ErrUpstream)
	}

	var payload scoringResponsePayload
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("%w: parsear respuesta del modelo: %v", domain.ErrUpstream, err)
	}

	out := make([]dto.RawMatch, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		out = append(out, dto.RawMatch{
			CandidateID: m.CandidateID,
			JobID:       m.JobID,
			Score:       m.Score,
			Reasons:     m.Reasons,
			Strengths:   m.Strengths,
			Concerns:    m.Concerns,
		})
	}
	return out, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
