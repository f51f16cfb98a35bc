package main

import (
	"context"
	"log"
	"time"

	"github.com/apexforge/studio-backend/config"
	"github.com/apexforge/studio-backend/internal/bootstrap"
	"github.com/apexforge/studio-backend/internal/projects/repository"
	"github.com/apexforge/studio-backend/internal/projects/service"
)

// runSeed installs the default portfolio into an empty projects collection.
func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Store.Driver == "memory" {
		log.Println("Warning: seeding the memory store has no lasting effect")
	}

	svc := service.NewProjectService(repository.NewProjectRepository(store))
	n, err := svc.Seed(ctx, service.DefaultProjects)
	if err != nil {
		return err
	}
	if n == 0 {
		log.Println("Projects already present, skipping seed")
		return nil
	}
	log.Printf("Seeded %d projects", n)
	return nil
}
