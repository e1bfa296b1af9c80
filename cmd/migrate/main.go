// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|version]
//
// Requires DATABASE_DSN environment variable to be set. The default action
// is up.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	action := "up"
	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		log.Fatalf("open migrator: %v", err)
	}
	defer m.Close()

	switch action {
	case "up":
		res, err := m.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		report("applied", res)
	case "down":
		res, err := m.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		report("rolled back", res)
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			log.Fatalf("migrate version: %v", err)
		}
		fmt.Printf("Database version: %d\n", v)
	default:
		log.Fatalf("unknown action %q (want up, down or version)", action)
	}
}

func report(verb string, res []postgres.MigrationResult) {
	if len(res) == 0 {
		fmt.Println("No migrations to run.")
		return
	}
	for _, r := range res {
		fmt.Printf("%s %05d %s (%s)\n", verb, r.Version, r.Source, r.Duration)
	}
}
