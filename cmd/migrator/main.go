package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"storeapi/migrations"
)

func main() {
	var dbURL, migrationsTable string
	var down bool

	flag.StringVar(&dbURL, "db-url", "postgres:postgres@localhost:5432/storeapi", "db url connection (user:pass@host:port/db)")
	flag.StringVar(&migrationsTable, "migrations-table", "schema_migrations", "name of migrations table")
	flag.BoolVar(&down, "down", false, "roll back every migration instead of applying them")
	flag.Parse()

	if dbURL == "" {
		log.Fatal("db url is required")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalf("failed to load embedded migrations: %v", err)
	}

	m, err := migrate.NewWithSourceInstance(
		"iofs",
		source,
		fmt.Sprintf("postgres://%s?x-migrations-table=%s&sslmode=disable", dbURL, migrationsTable),
	)
	if err != nil {
		log.Fatalf("failed to initialize migrator: %v", err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("migrations applied successfully")
}
