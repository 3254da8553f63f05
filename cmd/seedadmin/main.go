// Command seedadmin creates an admin account so the admin API can be used.
// Accounts are only ever created out-of-band; there is no signup endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"spaetimap/config"
	"spaetimap/internal/domain/entity"
	"spaetimap/internal/infra/auth"
	"spaetimap/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password, 8 chars minimum (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(2)
	}

	if err := run(*email, *password); err != nil {
		fmt.Fprintln(os.Stderr, "seedadmin:", err)
		os.Exit(1)
	}

	fmt.Println("admin created:", *email)
}

func run(email, password string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := gorm.Open(pgdriver.Open(cfg.Postgres.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	hash, err := auth.NewBcryptHasher(cfg).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &entity.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := postgres.NewAdminRepository(db).Create(context.Background(), admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}
