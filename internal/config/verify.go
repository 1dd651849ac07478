package config

import (
	"fmt"
	"time"
)

// Verifier defaults, matching the original ad hoc check: local console on
// port 3000, 60 second bounds, screenshot overwritten on every run.
const (
	DefaultVerifyBaseURL  = "http://localhost:3000"
	DefaultScreenshotPath = "verification/verification.png"
	DefaultVerifyTimeout  = 60 * time.Second
)

// VerifyConfig holds configuration for the UI verification run
type VerifyConfig struct {
	// BaseURL is the address of the console under verification
	BaseURL string
	// ScreenshotPath is where the final page screenshot is written,
	// overwritten on each run
	ScreenshotPath string
	// Timeout bounds navigation and the network-idle wait
	Timeout time.Duration
	// Headless controls whether the browser runs without a window
	Headless bool
	// Strict makes a failed verification fail the process. The default
	// preserves the best-effort behavior: report, screenshot, exit zero.
	Strict bool
}

// LoadVerifyConfig loads verifier configuration from environment variables,
// falling back to the defaults above
func LoadVerifyConfig(getenv func(string) string) (*VerifyConfig, error) {
	config := &VerifyConfig{
		BaseURL:        DefaultVerifyBaseURL,
		ScreenshotPath: DefaultScreenshotPath,
		Timeout:        DefaultVerifyTimeout,
		Headless:       true,
	}

	if v := getenv("GENSTUDIO_BASE_URL"); v != "" {
		config.BaseURL = v
	}
	if v := getenv("GENSTUDIO_SCREENSHOT"); v != "" {
		config.ScreenshotPath = v
	}
	if v := getenv("GENSTUDIO_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GENSTUDIO_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("GENSTUDIO_TIMEOUT must be positive, got %s", timeout)
		}
		config.Timeout = timeout
	}
	if v := getenv("GENSTUDIO_HEADED"); v == "1" || v == "true" {
		config.Headless = false
	}
	if v := getenv("GENSTUDIO_STRICT"); v == "1" || v == "true" {
		config.Strict = true
	}

	return config, nil
}
