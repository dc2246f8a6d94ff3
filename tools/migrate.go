package main

import (
	"context"
	"fmt"
	"os"

	"travel-booking/config"
	"travel-booking/database"
	"travel-booking/database/seeders"
	"travel-booking/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate   - Create or update every table and index")
		fmt.Println("  go run tools/migrate.go seed      - Migrate, then fill empty catalog tables")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.StorageDriver != "postgres" {
		fmt.Println("❌ Migrations need STORAGE_DRIVER=postgres")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(cfg); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		db, err := database.InitDB(cfg)
		if err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("🌱 Seeding catalog...")
		store := storage.New(database.NewBackend(db))
		if err := seeders.SeedCatalog(context.Background(), store); err != nil {
			fmt.Printf("❌ Seeding failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Seeding completed successfully!")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, seed")
	}
}
