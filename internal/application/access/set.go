package access

import "sort"

// IDSet conjunto de ids de entidad. La ausencia de datos de asignación produce
// conjuntos vacíos, nunca errores: un alcance vacío es "válido pero vacío".
type IDSet map[string]struct{}

// NewIDSet construye el conjunto a partir de slices de ids.
func NewIDSet(ids ...[]string) IDSet {
	s := make(IDSet)
	for _, group := range ids {
		for _, id := range group {
			if id != "" {
				s[id] = struct{}{}
			}
		}
	}
	return s
}

// Has indica pertenencia.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Slice devuelve los ids ordenados (orden estable para queries y tests).
func (s IDSet) Slice() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
