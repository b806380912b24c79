package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/assignment"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
)

// AssignmentHandler maneja las peticiones HTTP de asignaciones de candidatos.
type AssignmentHandler struct {
	uc *assignment.UseCase
}

// NewAssignmentHandler construye el handler de asignaciones.
func NewAssignmentHandler(uc *assignment.UseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar un candidato a un HR
// @Description  Exactamente uno de job_id/assigned_to resuelve el HR destino;
// @Description  si vienen ambos deben coincidir. Un candidato solo puede tener
// @Description  una asignación activa con el mismo HR.
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CandidateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_id es requerido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener asignación por ID
// @Tags         assignments
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [get]
func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(GetActor(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Transicionar o anotar una asignación
// @Description  Cambios de status validados por la máquina de estados; las
// @Description  transiciones inválidas responden 422.
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la asignación"
// @Param        body  body  dto.UpdateAssignmentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [put]
func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(GetActor(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Retirar una asignación
// @Tags         assignments
// @Param        id  path  string  true  "ID de la asignación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar asignaciones visibles para el actor
// @Tags         assignments
// @Produce      json
// @Param        status            query  string  false  "Filtrar por estado"
// @Param        candidate_status  query  string  false  "Filtrar por estado del candidato"
// @Param        priority          query  string  false  "Filtrar por prioridad"
// @Param        candidate_id      query  string  false  "Filtrar por candidato"
// @Param        limit             query  int     false  "Tamaño de página (default 20)"
// @Param        offset            query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.AssignmentListResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	var in dto.ListAssignmentsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
