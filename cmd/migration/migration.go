package main

import (
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/migration"
	"flag"
	"log"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "maximum number of migrations to apply, 0 for all")
	flag.Parse()

	db := database.NewPostgresDB(config.NewDriverConfig())
	defer db.Close()

	n, err := migration.Run(db, *direction, *steps)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations (%s)!\n", n, *direction)
}
