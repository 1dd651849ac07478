package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/genstudio-io/genstudio/internal/models"
	"github.com/genstudio-io/genstudio/internal/repository"
)

// SettingsRepository defines the interface for settings persistence
type SettingsRepository interface {
	GetSettings() (*models.BackendSettings, error)
	SaveSettings(settings *models.BackendSettings) error
}

// SettingsService handles backend settings business logic
type SettingsService interface {
	GetSettings() (*models.BackendSettings, error)
	UpdateSettings(backend models.BackendKind, ollamaURL, localModel string) (*models.BackendSettings, error)
}

// SettingsServiceImpl implements SettingsService
type SettingsServiceImpl struct {
	settingsRepo SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo SettingsRepository) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the stored settings, falling back to defaults when
// nothing has been saved yet
func (s *SettingsServiceImpl) GetSettings() (*models.BackendSettings, error) {
	settings, err := s.settingsRepo.GetSettings()
	if errors.Is(err, repository.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and persists a new backend configuration
func (s *SettingsServiceImpl) UpdateSettings(backend models.BackendKind, ollamaURL, localModel string) (*models.BackendSettings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	// Use domain methods to transition state
	switch backend {
	case models.BackendLocal:
		if err := settings.UseLocal(ollamaURL, localModel); err != nil {
			return nil, err
		}
	case models.BackendCloud:
		settings.UseCloud()
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidBackend, backend)
	}

	if err := s.settingsRepo.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("Backend settings updated: backend=%s", settings.Backend)

	return settings, nil
}
