package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Prakash-Banjade/smart-tutor/config"
	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
	pginfra "github.com/Prakash-Banjade/smart-tutor/internal/infrastructure/postgres"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

// Seeds the listing tables from the built-in fixtures and, when Redis is
// enabled, mirrors a demo credential so the store has something to show.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewListingRepository(pool)
	for _, t := range catalog.FixtureTutors() {
		if err := repo.InsertTutor(ctx, t); err != nil {
			log.Fatalf("failed to seed tutor %s: %v", t.Name, err)
		}
	}
	for _, g := range catalog.FixtureStudyGroups() {
		if err := repo.InsertGroup(ctx, g); err != nil {
			log.Fatalf("failed to seed study group %s: %v", g.Name, err)
		}
	}
	fmt.Printf("seeded %d tutors and %d study groups\n",
		len(catalog.FixtureTutors()), len(catalog.FixtureStudyGroups()))

	if cfg.RedisEnabled {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()

		email := "demo@smarttutor.local"
		password := "password123"
		hash, err := helpers.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		if err := rdb.Set(ctx, "user:cred:"+email, hash, 0).Err(); err != nil {
			log.Fatalf("failed to seed credential: %v", err)
		}
		fmt.Printf("seeded credential: email=%s password=%s\n", email, password)
	}
}
