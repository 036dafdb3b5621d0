package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"bookhub/database"
	"bookhub/internal/config"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"
)

// Seeds demo users for local development so upserts have a valid owner to
// reference.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	users := repository.NewUserRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, u := range []models.User{
		{Username: "demo", Email: "demo@example.com"},
		{Username: "reader", Email: "reader@example.com"},
	} {
		if _, err := users.FindByUsername(ctx, u.Username); err == nil {
			logger.Info("user already seeded", "username", u.Username)
			continue
		}
		user := u
		if err := users.Create(ctx, &user); err != nil {
			log.Fatalf("could not seed user %s: %v", u.Username, err)
		}
		logger.Info("seeded user", "username", user.Username, "id", user.ID)
	}
}
