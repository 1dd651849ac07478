package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	internalcli "github.com/genstudio-io/genstudio/internal/cli"
	"github.com/genstudio-io/genstudio/internal/config"
	"github.com/genstudio-io/genstudio/internal/database"
	"github.com/genstudio-io/genstudio/internal/handlers"
	"github.com/genstudio-io/genstudio/internal/repository"
	"github.com/genstudio-io/genstudio/internal/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// buildServerDependencies creates all dependencies needed for the server
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	// Create settings repository
	deps.SettingsRepo = repository.NewSettingsRepository()

	// Load server configuration
	deps.ServerConfig = config.LoadServerConfig()

	// Create service layer
	settingsService := services.NewSettingsService(deps.SettingsRepo)

	// Create settings page handler
	settingsHandler, err := handlers.NewSettingsHandler("templates/settings.html", settingsService)
	if err != nil {
		return deps, fmt.Errorf("failed to create settings handler: %w", err)
	}
	deps.SettingsHandler = settingsHandler

	// Create settings API handler
	deps.SettingsAPIHandler = handlers.NewSettingsAPIHandler(settingsService)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the genstudio console web server",
		Action: func(c *cli.Context) error {
			// Connect to database
			if err := database.Connect(); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()
			log.Println("Connected to database successfully")

			// Run database migrations
			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			// Build all server dependencies
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// VerifyCommand returns the verify command
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Run the headless browser verification of the Backend settings tab",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "address of the console under verification",
			},
			&cli.StringFlag{
				Name:  "screenshot",
				Usage: "path for the final page screenshot",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "bound for navigation and element waits",
			},
			&cli.BoolFlag{
				Name:  "headed",
				Usage: "run the browser with a visible window",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when the verification does not pass",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadVerifyConfig(os.Getenv)
			if err != nil {
				return err
			}

			// Flags take precedence over environment configuration
			if v := c.String("base-url"); v != "" {
				cfg.BaseURL = v
			}
			if v := c.String("screenshot"); v != "" {
				cfg.ScreenshotPath = v
			}
			if v := c.Duration("timeout"); v > 0 {
				cfg.Timeout = v
			}
			if c.Bool("headed") {
				cfg.Headless = false
			}
			if c.Bool("strict") {
				cfg.Strict = true
			}

			return internalcli.RunVerify(cfg, os.Stdout)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "genstudio",
		Usage:   "Generation console management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(nil),
			VerifyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if errors.Is(err, internalcli.ErrVerificationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
