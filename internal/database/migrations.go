package database

import (
	"fmt"
	"log"
)

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	// Create backend settings table. The console keeps a single row; the
	// singleton flag enforces that at the schema level.
	createSettingsTable := `
	CREATE TABLE IF NOT EXISTS backend_settings (
		id UUID PRIMARY KEY,
		singleton BOOLEAN UNIQUE NOT NULL DEFAULT TRUE,
		backend VARCHAR(50) NOT NULL,
		ollama_url VARCHAR(255) NOT NULL,
		local_model VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT backend_settings_single_row CHECK (singleton)
	);
	`

	_, err := DB.Exec(createSettingsTable)
	if err != nil {
		return fmt.Errorf("failed to create backend_settings table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
