package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
)

// CandidateHandler maneja las peticiones HTTP para el recurso Candidate.
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
}

// NewCandidateHandler construye el handler de candidatos.
func NewCandidateHandler(uc *usecase.CandidateUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear perfil de candidato
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCandidateRequest  true  "Datos del perfil"
// @Success      201   {object}  dto.CandidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y name son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener candidato por ID
// @Tags         candidates
// @Produce      json
// @Param        id   path  string  true  "ID del candidato"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetActor(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil de candidato
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del candidato"
// @Param        body  body  dto.UpdateCandidateRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CandidateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar candidatos visibles para el actor
// @Tags         candidates
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.CandidateListResponse
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetActor(c), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
