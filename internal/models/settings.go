package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BackendKind represents valid generation backend kinds
type BackendKind string

// Backend kinds
const (
	BackendCloud BackendKind = "cloud"
	BackendLocal BackendKind = "local"
)

// BackendSettings represents the console's generation backend configuration
type BackendSettings struct {
	ID         string
	Backend    BackendKind
	OllamaURL  string
	LocalModel string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Domain errors
var (
	ErrInvalidBackend   = errors.New("unknown generation backend")
	ErrInvalidServerURL = errors.New("Ollama server URL must be an absolute http(s) URL")
	ErrInvalidModel     = errors.New("local model name cannot be empty")
)

// Defaults presented to the operator before anything has been saved
const (
	DefaultOllamaURL  = "http://localhost:11434"
	DefaultLocalModel = "llama3"
)

// DefaultSettings returns the out-of-box configuration: cloud backend selected,
// local fields prefilled so the form is usable immediately
func DefaultSettings() *BackendSettings {
	now := time.Now()
	return &BackendSettings{
		ID:         uuid.New().String(),
		Backend:    BackendCloud,
		OllamaURL:  DefaultOllamaURL,
		LocalModel: DefaultLocalModel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewBackendSettings creates settings with validation
func NewBackendSettings(backend BackendKind, ollamaURL, localModel string) (*BackendSettings, error) {
	if err := validateSettingsInput(backend, ollamaURL, localModel); err != nil {
		return nil, err
	}

	now := time.Now()
	return &BackendSettings{
		ID:         uuid.New().String(),
		Backend:    backend,
		OllamaURL:  ollamaURL,
		LocalModel: localModel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// validateSettingsInput validates settings creation parameters
func validateSettingsInput(backend BackendKind, ollamaURL, localModel string) error {
	switch backend {
	case BackendCloud, BackendLocal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, backend)
	}

	// Local backend requires a reachable server and a model to run on it
	if backend == BackendLocal {
		if err := validateServerURL(ollamaURL); err != nil {
			return err
		}
		if strings.TrimSpace(localModel) == "" {
			return ErrInvalidModel
		}
	}

	return nil
}

// validateServerURL checks that the URL is absolute with an http(s) scheme
func validateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServerURL, raw)
	}
	return nil
}

// UseLocal switches to the local backend with the given server and model
func (s *BackendSettings) UseLocal(ollamaURL, localModel string) error {
	if err := validateServerURL(ollamaURL); err != nil {
		return err
	}
	if strings.TrimSpace(localModel) == "" {
		return ErrInvalidModel
	}

	s.Backend = BackendLocal
	s.OllamaURL = ollamaURL
	s.LocalModel = localModel
	s.UpdatedAt = time.Now()
	return nil
}

// UseCloud switches to the hosted cloud backend, keeping the local fields
// so the form stays prefilled if the operator switches back
func (s *BackendSettings) UseCloud() {
	s.Backend = BackendCloud
	s.UpdatedAt = time.Now()
}

// IsLocal returns true if the local backend is selected
func (s *BackendSettings) IsLocal() bool {
	return s.Backend == BackendLocal
}

// IsCloud returns true if the cloud backend is selected
func (s *BackendSettings) IsCloud() bool {
	return s.Backend == BackendCloud
}
