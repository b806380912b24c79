// Package pdf implementa la generación del reporte de matching de una vacante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la vacante + Code  │  Fecha del reporte  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VACANTE: Ubicación / Rango salarial / Skills requeridos    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: #  | Candidato | Score | Fortalezas | Riesgos       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda sobre el origen y vigencia del ranking     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain/entity"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorAmber   = &props.Color{Red: 180, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// JobMatchReport genera el PDF del ranking y devuelve sus bytes.
func (g *MarotoReportGenerator) JobMatchReport(job *entity.Job, matches []dto.MatchResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Matching", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(job))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(jobSummaryRow(job))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableMatchRows(matches) {
		m.AddRows(r)
	}
	if len(matches) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la vacante + code (izq) y fecha del reporte (der).
func headerRow(job *entity.Job) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(8).Add(
			text.New(job.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vacante: "+job.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE MATCHING", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// jobSummaryRow: ubicación, rango salarial y skills requeridos.
func jobSummaryRow(job *entity.Job) core.Row {
	salario := "—"
	if !job.SalaryMin.IsZero() || !job.SalaryMax.IsZero() {
		salario = fmt.Sprintf("$%s – $%s",
			formatMoney(job.SalaryMin.StringFixed(0)),
			formatMoney(job.SalaryMax.StringFixed(0)))
	}
	skills := nonEmpty(strings.Join(job.Requirements.Skills, ", "), "—")

	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE LA VACANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ubicación: %s   |   Salario: %s   |   Experiencia: %s",
				nonEmpty(job.Location, "—"),
				salario,
				nonEmpty(job.Requirements.ExperienceLevel, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New("Skills: "+skills, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de candidatos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Candidato", 3, align.Left),
		h("Score", 1, align.Center),
		h("Fortalezas", 4, align.Left),
		h("Riesgos", 3, align.Left),
	)
}

// tableMatchRows: una fila por candidato del ranking, en orden.
func tableMatchRows(matches []dto.MatchResult) []core.Row {
	result := make([]core.Row, 0, len(matches))
	for i, mr := range matches {
		result = append(result, row.New(9).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				mr.CandidateID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mr.MatchScore),
				props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Center,
					Top: 1, Color: scoreColor(mr.MatchScore),
				},
			)),
			col.New(4).Add(text.New(
				nonEmpty(strings.Join(mr.Strengths, "; "), "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(
				nonEmpty(strings.Join(mr.Concerns, "; "), "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Sin candidatos visibles para esta vacante.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// footerRow: leyenda sobre el origen del ranking.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Ranking generado automáticamente a partir de un modelo de lenguaje. "+
				"Los puntajes son orientativos y se calculan al momento de la solicitud; "+
				"no se almacenan ni constituyen una decisión de contratación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// scoreColor: verde para encaje fuerte, ámbar para parcial, gris para débil.
func scoreColor(score int) *props.Color {
	switch {
	case score >= 70:
		return colorGreen
	case score >= 50:
		return colorAmber
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
