package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bozhidarvelkov/pixelmorph/internal/config"
	"github.com/bozhidarvelkov/pixelmorph/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

const usage = `manage the pixelmorph database schema

usage: migrate <command>

commands:
  up              apply pending migrations (default)
  down            roll back the last migration group
  status          list migrations and whether they are applied
  create <name>   scaffold a new SQL migration pair
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseURL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, migrations.Migrations)

	ctx := context.Background()

	if err := migrator.Init(ctx); err != nil {
		log.Fatalf("migrator init: %v", err)
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		group, err := migrator.Migrate(ctx)
		if err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if group.IsZero() {
			fmt.Println("schema is up to date")
			return
		}
		fmt.Printf("applied %s\n", group)

	case "down":
		group, err := migrator.Rollback(ctx)
		if err != nil {
			log.Fatalf("rollback: %v", err)
		}
		if group.IsZero() {
			fmt.Println("nothing to roll back")
			return
		}
		fmt.Printf("rolled back %s\n", group)

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			log.Fatalf("status: %v", err)
		}
		for _, m := range ms {
			state := "pending"
			if m.IsApplied() {
				state = "applied"
			}
			fmt.Printf("%-50s %s\n", m.Name, state)
		}

	case "create":
		if len(os.Args) < 3 {
			log.Fatal("create needs a migration name")
		}
		name := strings.Join(os.Args[2:], "_")
		files, err := migrator.CreateTxSQLMigrations(ctx, name)
		if err != nil {
			log.Fatalf("create: %v", err)
		}
		for _, f := range files {
			fmt.Printf("created %s\n", f.Path)
		}

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}
