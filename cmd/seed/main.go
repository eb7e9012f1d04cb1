// Command seed imports the static recipe catalog into the database.
package main

import (
	"RecipeSite/cmd/config"
	migration "RecipeSite/cmd/database/migrate"
	"RecipeSite/internal/utils"
	"RecipeSite/pkg/seed"
	"context"
	"flag"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", utils.DefaultConfigPath, "path to config.yaml")
	infoPath := flag.String("info", "", "catalog listing json (defaults to FIXTURE_INFO_PATH)")
	detailsPath := flag.String("details", "", "catalog details json (defaults to FIXTURE_DETAILS_PATH)")
	flag.Parse()

	if err := run(*configPath, *infoPath, *detailsPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, infoPath, detailsPath string) error {
	if err := utils.LoadConfig(configPath); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if infoPath == "" {
		infoPath = utils.GetConfig("FIXTURE_INFO_PATH")
	}
	if detailsPath == "" {
		detailsPath = utils.GetConfig("FIXTURE_DETAILS_PATH")
	}

	fx, err := seed.LoadFixture(infoPath, detailsPath)
	if err != nil {
		return fmt.Errorf("error loading fixture: %w", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		return fmt.Errorf("error connecting database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migration.Migrate(db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	result, err := seed.Run(context.Background(), db, fx, config.SeedOwner())
	if err != nil {
		return fmt.Errorf("error seeding: %w", err)
	}
	log.Infof("seed finished: %d inserted, %d skipped, %d failed", result.Inserted, result.Skipped, result.Failed)
	return nil
}
