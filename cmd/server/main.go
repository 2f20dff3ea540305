package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	httpapi "github.com/renoplan/renoplan/api/http"
	"github.com/renoplan/renoplan/api/http/handlers"
	"github.com/renoplan/renoplan/pkg/auth"
	"github.com/renoplan/renoplan/pkg/budget"
	"github.com/renoplan/renoplan/pkg/config"
	"github.com/renoplan/renoplan/pkg/contractor"
	"github.com/renoplan/renoplan/pkg/health"
	healthpg "github.com/renoplan/renoplan/pkg/health/checkers"
	"github.com/renoplan/renoplan/pkg/inspiration"
	"github.com/renoplan/renoplan/pkg/project"
	pgrepo "github.com/renoplan/renoplan/pkg/repository/postgres"
	"github.com/renoplan/renoplan/pkg/security/token"
	"github.com/renoplan/renoplan/pkg/storage/postgres"
	"github.com/renoplan/renoplan/pkg/task"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	log.Info(cfg.SecretDiagnostic())

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("postgres connect")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}

	// Token codec and auth gate share one codec instance; the secret is
	// loaded once and never mutated afterwards.
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTIssuer)
	authMW := token.NewAuthMiddleware(codec, log)

	// Wire dependencies (Clean Architecture)
	userRepo := pgrepo.NewUserRepository(pool)
	authUC := auth.NewAuthService(userRepo, codec)
	authHandler := handlers.NewAuthHandler(authUC, log)

	projectUC := project.NewService(pgrepo.NewProjectRepository(pool))
	projectHandler := handlers.NewProjectHandler(projectUC, log)

	taskUC := task.NewService(pgrepo.NewTaskRepository(pool))
	taskHandler := handlers.NewTaskHandler(taskUC, log)

	budgetUC := budget.NewService(pgrepo.NewBudgetRepository(pool))
	budgetHandler := handlers.NewBudgetHandler(budgetUC, log)

	contractorUC := contractor.NewService(pgrepo.NewContractorRepository(pool))
	contractorHandler := handlers.NewContractorHandler(contractorUC, log)

	inspirationUC := inspiration.NewService(pgrepo.NewInspirationRepository(pool))
	inspirationHandler := handlers.NewInspirationHandler(inspirationUC, log)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := fiber.New()
	httpapi.Register(app, authMW,
		authHandler, healthHandler,
		projectHandler, taskHandler, budgetHandler,
		contractorHandler, inspirationHandler,
	)

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
