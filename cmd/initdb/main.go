// One-shot database bootstrap: creates all tables and seeds the job-role
// reference data, then exits. Safe to re-run; existing rows are left alone.
package main

import (
	"context"
	"os"

	"github.com/resumatch/backend/pkg/config"
	"github.com/resumatch/backend/pkg/jobskills"
	"github.com/resumatch/backend/pkg/logger"
	pgrepo "github.com/resumatch/backend/pkg/repository/postgres"
	"github.com/resumatch/backend/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	// Constructing each repository creates its tables.
	if _, err := pgrepo.NewUserRepository(pool); err != nil {
		log.Fatalf("init users schema: %v", err)
	}
	if _, err := pgrepo.NewHistoryRepository(pool); err != nil {
		log.Fatalf("init resume_analyses schema: %v", err)
	}
	if _, err := pgrepo.NewProgressRepository(pool); err != nil {
		log.Fatalf("init skill_progress schema: %v", err)
	}
	if _, err := pgrepo.NewAchievementRepository(pool); err != nil {
		log.Fatalf("init achievements schema: %v", err)
	}
	jobSkillsRepo, err := pgrepo.NewJobSkillsRepository(pool)
	if err != nil {
		log.Fatalf("init job_skills schema: %v", err)
	}
	log.Info("tables created")

	for _, p := range jobskills.SeedProfiles {
		if err := jobSkillsRepo.Seed(ctx, p); err != nil {
			log.Fatalf("seed %q: %v", p.JobRole, err)
		}
		log.WithField("job_role", p.JobRole).Info("seeded")
	}
	log.Infof("database initialized with %d job roles", len(jobskills.SeedProfiles))
	os.Exit(0)
}
