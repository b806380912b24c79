package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
)

// JobHandler maneja las peticiones HTTP para el recurso Job. Todo el listado
// y la lectura pasan por el alcance del actor: un job fuera de alcance se
// responde 404.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler de vacantes.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar vacante
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Datos de la vacante"
// @Success      201   {object}  dto.JobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y company_id son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vacante por ID
// @Tags         jobs
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar vacante
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la vacante"
// @Param        body  body  dto.UpdateJobRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.JobResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateJobRequest
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
// @Summary      Listar vacantes visibles para el actor
// @Tags         jobs
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (open|paused|closed|cancelled)"
// @Param        limit   query  int     false  "Tamaño de página (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.JobListResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetActor(c), c.Query("status"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
