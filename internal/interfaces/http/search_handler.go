package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/search"
)

// SearchHandler expone la búsqueda global multi-entidad.
type SearchHandler struct {
	router *search.Router
}

// NewSearchHandler construye el handler de búsqueda.
func NewSearchHandler(router *search.Router) *SearchHandler {
	return &SearchHandler{router: router}
}

// Search godoc
// @Summary      Búsqueda global
// @Description  Busca en vacantes, candidatos, empresas y usuarios dentro del
// @Description  alcance del actor. Términos de menos de 2 caracteres devuelven
// @Description  resultados vacíos.
// @Tags         search
// @Produce      json
// @Param        q      query  string  true   "Término de búsqueda o código (JOB0001, can-1…)"
// @Param        types  query  string  false  "CSV de tipos: jobs,candidates,companies,users"
// @Param        limit  query  int     false  "Máximo por tipo (default 10, tope 50)"
// @Success      200  {object}  dto.SearchResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.router.Search(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
