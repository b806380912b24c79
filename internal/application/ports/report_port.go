package ports

import (
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
)

// ReportGenerator puerto de salida para renderizar reportes PDF.
type ReportGenerator interface {
	// JobMatchReport genera el PDF del ranking de candidatos para una vacante.
	JobMatchReport(job *entity.Job, matches []dto.MatchResult) ([]byte, error)
}
