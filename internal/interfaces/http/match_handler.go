package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/matching"
)

// MatchHandler expone el ranking candidato↔vacante. Los resultados son
// efímeros: cada petición vuelve a consultar al oráculo de scoring.
type MatchHandler struct {
	ranker *matching.Ranker
	report *matching.ReportUseCase
}

// NewMatchHandler construye el handler de matching.
func NewMatchHandler(ranker *matching.Ranker, report *matching.ReportUseCase) *MatchHandler {
	return &MatchHandler{ranker: ranker, report: report}
}

// MatchJob godoc
// @Summary      Rankear candidatos para una vacante
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MatchJobRequest  true  "Vacante y límite opcional"
// @Success      200   {object}  dto.MatchListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/match/job [post]
func (h *MatchHandler) MatchJob(c *fiber.Ctx) error {
	var in dto.MatchJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.JobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "job_id es requerido"})
	}
	out, err := h.ranker.MatchJob(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MatchCandidate godoc
// @Summary      Rankear vacantes para un candidato
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MatchCandidateRequest  true  "Candidato y límite opcional"
// @Success      200   {object}  dto.MatchListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/match/candidate [post]
func (h *MatchHandler) MatchCandidate(c *fiber.Ctx) error {
	var in dto.MatchCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CandidateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_id es requerido"})
	}
	out, err := h.ranker.MatchCandidate(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// JobReport godoc
// @Summary      Generar reporte PDF del ranking de una vacante
// @Tags         match
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.MatchJobRequest  true  "Vacante y límite opcional"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/match/job/report [post]
func (h *MatchHandler) JobReport(c *fiber.Ctx) error {
	var in dto.MatchJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.JobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "job_id es requerido"})
	}
	pdfBytes, err := h.report.JobMatchReport(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=match-report-%s.pdf", in.JobID))
	return c.Send(pdfBytes)
}
