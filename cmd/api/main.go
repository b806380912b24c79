package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/assignment"
	"github.com/tu-usuario/talento-pro/internal/application/audit"
	"github.com/tu-usuario/talento-pro/internal/application/auth"
	"github.com/tu-usuario/talento-pro/internal/application/matching"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/application/search"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
	infraai "github.com/tu-usuario/talento-pro/internal/infrastructure/ai"
	infrapdf "github.com/tu-usuario/talento-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/talento-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/talento-pro/internal/interfaces/http"
	"github.com/tu-usuario/talento-pro/pkg/config"
	"github.com/tu-usuario/talento-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	agentAssignRepo := postgres.NewAgentAssignmentRepository(pool)
	assignRepo := postgres.NewCandidateAssignmentRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	gate := access.NewGate(agentAssignRepo, assignRepo, jobRepo, candidateRepo)
	recorder := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	jobUC := usecase.NewJobUseCase(gate, jobRepo, companyRepo)
	candidateUC := usecase.NewCandidateUseCase(gate, candidateRepo, userRepo)
	assignmentUC := assignment.NewUseCase(gate, assignRepo, userRepo, jobRepo, candidateRepo, recorder)
	agentAssignmentUC := usecase.NewAgentAssignmentUseCase(agentAssignRepo, userRepo, txRunner, recorder)

	// Oráculo de scoring: Anthropic por defecto, Gemini por configuración.
	var scorer ports.ScoringService
	switch cfg.AI.Provider {
	case "gemini":
		gemini, err := infraai.NewGeminiService(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Gemini")
		}
		scorer = gemini
	default:
		scorer = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	ranker := matching.NewRanker(gate, jobRepo, candidateRepo, scorer, cfg.AI.MaxPool)
	reportUC := matching.NewReportUseCase(ranker, infrapdf.NewMarotoReportGenerator())

	searchRouter := search.NewRouter(gate, jobRepo, candidateRepo, companyRepo, userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TalentoPro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		UserUC:            userUC,
		CompanyUC:         companyUC,
		JobUC:             jobUC,
		CandidateUC:       candidateUC,
		AssignmentUC:      assignmentUC,
		AgentAssignmentUC: agentAssignmentUC,
		Ranker:            ranker,
		Report:            reportUC,
		Search:            searchRouter,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
