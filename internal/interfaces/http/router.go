package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/talento-pro/internal/application/assignment"
	"github.com/tu-usuario/talento-pro/internal/application/auth"
	"github.com/tu-usuario/talento-pro/internal/application/matching"
	"github.com/tu-usuario/talento-pro/internal/application/search"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
	"github.com/tu-usuario/talento-pro/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	UserUC            *usecase.UserUseCase
	CompanyUC         *usecase.CompanyUseCase
	JobUC             *usecase.JobUseCase
	CandidateUC       *usecase.CandidateUseCase
	AssignmentUC      *assignment.UseCase
	AgentAssignmentUC *usecase.AgentAssignmentUseCase
	Ranker            *matching.Ranker
	Report            *matching.ReportUseCase
	Search            *search.Router
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(domain.RoleAdmin, domain.RoleSuperadmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Companies (crear/editar: hr o admin; lectura autenticada)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Jobs (lectura y listado filtrados por el alcance del actor)
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)

	// Candidates
	candidates := protected.Group("/candidates")
	candidateHandler := NewCandidateHandler(deps.CandidateUC)
	candidates.Post("/", candidateHandler.Create)
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/:id", candidateHandler.GetByID)
	candidates.Put("/:id", candidateHandler.Update)

	// Candidate assignments
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/:id", assignmentHandler.Get)
	assignments.Put("/:id", assignmentHandler.Update)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Agent assignments (solo admin)
	agents := protected.Group("/agent-assignments", RequireRole(domain.RoleAdmin, domain.RoleSuperadmin))
	agentHandler := NewAgentAssignmentHandler(deps.AgentAssignmentUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)

	// Matching (el alcance del actor limita el pool; candidate no rankea)
	match := protected.Group("/match", RequireRole(domain.RoleAdmin, domain.RoleSuperadmin, domain.RoleHR, domain.RoleAgent))
	matchHandler := NewMatchHandler(deps.Ranker, deps.Report)
	match.Post("/job", matchHandler.MatchJob)
	match.Post("/candidate", matchHandler.MatchCandidate)
	match.Post("/job/report", matchHandler.JobReport)

	// Búsqueda global
	searchHandler := NewSearchHandler(deps.Search)
	protected.Get("/search", searchHandler.Search)
}
