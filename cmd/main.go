package main

import (
	"RecipeSite/cmd/config"
	"RecipeSite/internal/utils"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := utils.DefaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if err := run(configPath); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup closes the data source.
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := utils.LoadConfig(configPath); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	repos, err := config.NewRepositories(ctx)
	if err != nil {
		return fmt.Errorf("error preparing data source: %w", err)
	}
	defer repos.Close()

	app, err := config.NewApp(ctx, repos)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	log.Infof("serving with data source %q", repos.Source)
	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
