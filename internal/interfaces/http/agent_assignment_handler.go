package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
)

// AgentAssignmentHandler maneja el alcance de los agentes (solo admin).
type AgentAssignmentHandler struct {
	uc *usecase.AgentAssignmentUseCase
}

// NewAgentAssignmentHandler construye el handler de alcances de agente.
func NewAgentAssignmentHandler(uc *usecase.AgentAssignmentUseCase) *AgentAssignmentHandler {
	return &AgentAssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar alcance a un agente
// @Description  Reemplaza de forma transaccional el alcance activo anterior:
// @Description  un agente tiene a lo sumo una asignación activa.
// @Tags         agent-assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgentAssignmentRequest  true  "HRs y candidatos del alcance"
// @Success      201   {object}  dto.AgentAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agent-assignments [post]
func (h *AgentAssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AgentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "agent_id es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar el alcance de un agente
// @Tags         agent-assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la asignación"
// @Param        body  body  dto.UpdateAgentAssignmentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AgentAssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agent-assignments/{id} [put]
func (h *AgentAssignmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAgentAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener asignación de agente por ID
// @Tags         agent-assignments
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.AgentAssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agent-assignments/{id} [get]
func (h *AgentAssignmentHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar asignaciones de agentes
// @Tags         agent-assignments
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.AgentAssignmentResponse
// @Router       /api/agent-assignments [get]
func (h *AgentAssignmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetActor(c), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
