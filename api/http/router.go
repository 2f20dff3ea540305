package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renoplan/renoplan/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW is the auth
// gate: everything except health probes and the auth endpoints sits behind it.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	projects *handlers.ProjectHandler,
	tasks *handlers.TaskHandler,
	budget *handlers.BudgetHandler,
	contractors *handlers.ContractorHandler,
	inspiration *handlers.InspirationHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	pr := v1.Group("/projects", authMW)
	pr.Post("/", projects.Create)
	pr.Get("/", projects.List)
	pr.Get("/:id", projects.Get)
	pr.Patch("/:id", projects.Update)
	pr.Delete("/:id", projects.Delete)

	// Project-scoped collections
	pr.Post("/:projectID/tasks", tasks.Create)
	pr.Get("/:projectID/tasks", tasks.List)
	pr.Post("/:projectID/budget", budget.Create)
	pr.Get("/:projectID/budget", budget.List)
	pr.Get("/:projectID/budget/summary", budget.Summary)

	t := v1.Group("/tasks", authMW)
	t.Patch("/:id", tasks.Update)
	t.Delete("/:id", tasks.Delete)

	b := v1.Group("/budget", authMW)
	b.Patch("/:id", budget.Update)
	b.Delete("/:id", budget.Delete)

	ct := v1.Group("/contractors", authMW)
	ct.Post("/", contractors.Create)
	ct.Get("/", contractors.List)
	ct.Get("/:id", contractors.Get)
	ct.Patch("/:id", contractors.Update)
	ct.Delete("/:id", contractors.Delete)

	bd := v1.Group("/boards", authMW)
	bd.Post("/", inspiration.CreateBoard)
	bd.Get("/", inspiration.ListBoards)
	bd.Delete("/:id", inspiration.DeleteBoard)
	bd.Post("/:id/items", inspiration.AddItem)
	bd.Get("/:id/items", inspiration.ListItems)
	bd.Delete("/:id/items/:itemID", inspiration.DeleteItem)
}
