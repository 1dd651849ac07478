package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadVerifyConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    VerifyConfig
		wantErr bool
	}{
		{
			name: "defaults when environment is empty",
			env:  map[string]string{},
			want: VerifyConfig{
				BaseURL:        DefaultVerifyBaseURL,
				ScreenshotPath: DefaultScreenshotPath,
				Timeout:        DefaultVerifyTimeout,
				Headless:       true,
				Strict:         false,
			},
		},
		{
			name: "all overrides set",
			env: map[string]string{
				"GENSTUDIO_BASE_URL":   "http://127.0.0.1:9000",
				"GENSTUDIO_SCREENSHOT": "out/check.png",
				"GENSTUDIO_TIMEOUT":    "15s",
				"GENSTUDIO_HEADED":     "1",
				"GENSTUDIO_STRICT":     "true",
			},
			want: VerifyConfig{
				BaseURL:        "http://127.0.0.1:9000",
				ScreenshotPath: "out/check.png",
				Timeout:        15 * time.Second,
				Headless:       false,
				Strict:         true,
			},
		},
		{
			name:    "invalid timeout",
			env:     map[string]string{"GENSTUDIO_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			env:     map[string]string{"GENSTUDIO_TIMEOUT": "-5s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }

			config, err := LoadVerifyConfig(getenv)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *config != tt.want {
				t.Errorf("LoadVerifyConfig() = %+v, want %+v", *config, tt.want)
			}
		})
	}
}

func TestLoadVerifyConfig_TimeoutErrorNamesVariable(t *testing.T) {
	_, err := LoadVerifyConfig(func(key string) string {
		if key == "GENSTUDIO_TIMEOUT" {
			return "not-a-duration"
		}
		return ""
	})
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "GENSTUDIO_TIMEOUT") {
		t.Errorf("expected error to name GENSTUDIO_TIMEOUT, got %v", err)
	}
}
