package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/genstudio-io/genstudio/internal/database"
	"github.com/genstudio-io/genstudio/internal/models"
)

// ErrNotFound is returned when no settings row has been saved yet
var ErrNotFound = errors.New("backend settings not found")

// SettingsRepository handles database operations for backend settings
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		db: database.DB,
	}
}

// NewSettingsRepositoryWithDB creates a new settings repository with a specific database connection
func NewSettingsRepositoryWithDB(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// GetSettings retrieves the console's backend settings
func (r *SettingsRepository) GetSettings() (*models.BackendSettings, error) {
	query := `
		SELECT id, backend, ollama_url, local_model, created_at, updated_at
		FROM backend_settings
		WHERE singleton
	`

	settings := &models.BackendSettings{}
	err := r.db.QueryRow(query).Scan(
		&settings.ID,
		&settings.Backend,
		&settings.OllamaURL,
		&settings.LocalModel,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// SaveSettings persists the backend settings, replacing any previous row
func (r *SettingsRepository) SaveSettings(settings *models.BackendSettings) error {
	query := `
		INSERT INTO backend_settings (id, singleton, backend, ollama_url, local_model, created_at, updated_at)
		VALUES ($1, TRUE, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO UPDATE
		SET backend = EXCLUDED.backend,
		    ollama_url = EXCLUDED.ollama_url,
		    local_model = EXCLUDED.local_model,
		    updated_at = EXCLUDED.updated_at
	`

	now := time.Now()
	_, err := r.db.Exec(query,
		settings.ID,
		settings.Backend,
		settings.OllamaURL,
		settings.LocalModel,
		settings.CreatedAt,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	settings.UpdatedAt = now

	return nil
}
