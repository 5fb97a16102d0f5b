// seed inserts a demo account and a handful of tasks into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "password123"
)

var tasks = []struct {
	title  string
	status domain.TaskStatus
}{
	{"Buy milk", domain.StatusPending},
	{"Write weekly report", domain.StatusPending},
	{"Book dentist appointment", domain.StatusCompleted},
	{"Review pull requests", domain.StatusPending},
	{"Renew domain", domain.StatusCompleted},
	{"Water the plants", domain.StatusPending},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert the demo account so reruns are harmless.
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		uuid.NewString(), seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	for _, t := range tasks {
		_, err := pool.Exec(ctx, `
			INSERT INTO tasks (id, user_id, title, status)
			VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), userID, t.title, t.status,
		)
		if err != nil {
			log.Fatalf("seed task %q: %v", t.title, err)
		}
	}

	fmt.Printf("seeded %s (password %q) with %d tasks\n", seedEmail, seedPassword, len(tasks))
}
