package matching

import (
	"context"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
)

// ReportUseCase genera el reporte PDF del ranking de una vacante.
type ReportUseCase struct {
	ranker *Ranker
	gen    ports.ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(ranker *Ranker, gen ports.ReportGenerator) *ReportUseCase {
	return &ReportUseCase{ranker: ranker, gen: gen}
}

// JobMatchReport rankea y renderiza el PDF. Reutiliza las mismas reglas de
// visibilidad y validación del ranker.
func (uc *ReportUseCase) JobMatchReport(ctx context.Context, actor domain.Actor, in dto.MatchJobRequest) ([]byte, error) {
	job, err := uc.ranker.loadVisibleJob(actor, in.JobID)
	if err != nil {
		return nil, err
	}
	out, err := uc.ranker.MatchJob(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	return uc.gen.JobMatchReport(job, out.Matches)
}
