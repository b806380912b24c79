package matching

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
)

// rank valida y normaliza las entradas crudas del oráculo y produce el orden
// total: descendente por score, empates estables en el orden del pool de
// entrada. El empate NO tiene clave secundaria semántica: refleja el orden de
// entrada y así debe documentarse a los callers.
//
// Entradas malformadas (id ausente, score no numérico o fuera de [0,100],
// id fuera del pool) se descartan en silencio; no invalidan el lote.
func rank(raw []dto.RawMatch, poolOrder []string, keyOf func(dto.MatchResult) string) []dto.MatchResult {
	byKey := make(map[string]dto.MatchResult, len(raw))
	for _, m := range raw {
		res, ok := normalize(m)
		if !ok {
			continue
		}
		key := keyOf(res)
		if _, dup := byKey[key]; dup {
			// Duplicado del oráculo: gana la primera entrada.
			continue
		}
		byKey[key] = res
	}

	// Materializar en el orden del pool: es la base estable de los empates.
	results := make([]dto.MatchResult, 0, len(byKey))
	for _, id := range poolOrder {
		if res, ok := byKey[id]; ok {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// normalize valida una entrada cruda: ids presentes, score numérico en
// [0,100] redondeado a entero, arrays coercionados a []string (vacíos si no
// son arrays).
func normalize(m dto.RawMatch) (dto.MatchResult, bool) {
	if m.CandidateID == "" || m.JobID == "" {
		return dto.MatchResult{}, false
	}
	score, ok := coerceFloat(m.Score)
	if !ok || math.IsNaN(score) || score < 0 || score > 100 {
		return dto.MatchResult{}, false
	}
	return dto.MatchResult{
		CandidateID: m.CandidateID,
		JobID:       m.JobID,
		MatchScore:  int(math.Round(score)),
		Reasons:     coerceStringSlice(m.Reasons),
		Strengths:   coerceStringSlice(m.Strengths),
		Concerns:    coerceStringSlice(m.Concerns),
	}, true
}

// coerceFloat acepta los tipos que los modelos suelen devolver para un número:
// float64, int, json.Number o string numérica.
func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceStringSlice coerciona a []string; cualquier cosa que no sea un array
// produce el slice vacío (nunca nil, para serializar como [] y no null).
func coerceStringSlice(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []string:
		return append(out, val...)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
