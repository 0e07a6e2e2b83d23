package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumatch/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	history *handlers.HistoryHandler,
	progress *handlers.ProgressHandler,
	jobSkills *handlers.JobSkillsHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Analysis history (protected)
	hg := v1.Group("/history", authMW)
	hg.Get("", history.List)
	hg.Post("", history.Save)
	hg.Post("/compare", history.Compare)
	hg.Get("/:id", history.Get)
	hg.Delete("/:id", history.Delete)
	v1.Post("/resume/extract", authMW, history.ExtractText)

	// Skill progress and achievements (protected)
	pg := v1.Group("/progress", authMW)
	pg.Get("", progress.Get)
	pg.Post("", progress.Update)
	pg.Get("/stats", progress.Stats)
	v1.Get("/achievements", authMW, progress.Achievements)

	// Static job role reference data (protected)
	jg := v1.Group("/job-roles", authMW)
	jg.Get("", jobSkills.List)
	jg.Get("/:role", jobSkills.Get)
}
