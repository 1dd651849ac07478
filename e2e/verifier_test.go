package e2e

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/genstudio-io/genstudio/internal/config"
	"github.com/genstudio-io/genstudio/internal/verifier"
)

// TestVerifier_AgainstRunningConsole runs the full verification sequence
// against the in-process console: all steps pass and a screenshot is written
func TestVerifier_AgainstRunningConsole(t *testing.T) {
	screenshot := filepath.Join(t.TempDir(), "verification.png")

	v := verifier.New(&config.VerifyConfig{
		BaseURL:        baseURL,
		ScreenshotPath: screenshot,
		Timeout:        30 * time.Second,
		Headless:       true,
	})

	report, err := v.Run()
	if err != nil {
		t.Fatalf("Verifier harness failed: %v", err)
	}

	if !report.Passed() {
		failure := report.FirstFailure()
		t.Errorf("Expected verification to pass, first failure: %s [%s]: %v",
			failure.Name, failure.Kind, failure.Err)
	}
	if !report.ScreenshotTaken {
		t.Errorf("Expected screenshot to be taken: %v", report.ScreenshotErr)
	}
	if _, err := os.Stat(screenshot); err != nil {
		t.Errorf("Expected screenshot file at %s: %v", screenshot, err)
	}
}

// TestVerifier_MissingBackendTab points the verifier at a page without the
// Backend control: the run fails at the tab step, later steps are skipped,
// and the screenshot is still written
func TestVerifier_MissingBackendTab(t *testing.T) {
	target := serveStaticHTML(t, `<!DOCTYPE html>
<html><head><title>bare page</title></head>
<body><h1>Nothing to configure here</h1></body></html>`)

	screenshot := filepath.Join(t.TempDir(), "verification.png")

	v := verifier.New(&config.VerifyConfig{
		BaseURL:        target,
		ScreenshotPath: screenshot,
		Timeout:        3 * time.Second,
		Headless:       true,
	})

	report, err := v.Run()
	if err != nil {
		t.Fatalf("Verifier harness failed: %v", err)
	}

	if report.Passed() {
		t.Error("Expected verification to fail on a page without the Backend tab")
	}

	failure := report.FirstFailure()
	if failure == nil {
		t.Fatal("Expected a failed step")
	}
	if failure.Name != "open Backend tab" {
		t.Errorf("Expected failure at 'open Backend tab', got %q", failure.Name)
	}
	if failure.Kind != verifier.KindElementNotFound {
		t.Errorf("Expected element-not-found, got %s", failure.Kind)
	}

	// Steps after the failure must not have been attempted
	for _, step := range report.Steps[2:] {
		if step.Kind != verifier.KindSkipped {
			t.Errorf("Expected step %q to be skipped, got %s", step.Name, step.Kind)
		}
	}

	// Screenshot is best-effort and still captured
	if !report.ScreenshotTaken {
		t.Errorf("Expected screenshot despite failure: %v", report.ScreenshotErr)
	}
	if _, err := os.Stat(screenshot); err != nil {
		t.Errorf("Expected screenshot file at %s: %v", screenshot, err)
	}
}

// TestVerifier_UnreachableTarget verifies the navigation step is classified
// as a timeout and the screenshot of the blank page is still attempted
func TestVerifier_UnreachableTarget(t *testing.T) {
	screenshot := filepath.Join(t.TempDir(), "verification.png")

	v := verifier.New(&config.VerifyConfig{
		// Reserved TEST-NET address: connection attempts fail
		BaseURL:        "http://192.0.2.1:3000",
		ScreenshotPath: screenshot,
		Timeout:        3 * time.Second,
		Headless:       true,
	})

	report, err := v.Run()
	if err != nil {
		t.Fatalf("Verifier harness failed: %v", err)
	}

	if report.Passed() {
		t.Error("Expected verification to fail against unreachable target")
	}

	failure := report.FirstFailure()
	if failure == nil {
		t.Fatal("Expected a failed step")
	}
	if failure.Name != "navigate to console" {
		t.Errorf("Expected failure at 'navigate to console', got %q", failure.Name)
	}
	if failure.Kind != verifier.KindTimeout {
		t.Errorf("Expected timeout, got %s", failure.Kind)
	}

	if !report.ScreenshotTaken {
		t.Errorf("Expected screenshot of blank page: %v", report.ScreenshotErr)
	}
}

// TestVerifier_OverwritesScreenshot runs twice against the console and
// confirms the screenshot path holds exactly one file, overwritten
func TestVerifier_OverwritesScreenshot(t *testing.T) {
	dir := t.TempDir()
	screenshot := filepath.Join(dir, "verification.png")

	cfg := &config.VerifyConfig{
		BaseURL:        baseURL,
		ScreenshotPath: screenshot,
		Timeout:        30 * time.Second,
		Headless:       true,
	}

	for i := 0; i < 2; i++ {
		report, err := verifier.New(cfg).Run()
		if err != nil {
			t.Fatalf("Run %d: harness failed: %v", i+1, err)
		}
		if !report.ScreenshotTaken {
			t.Fatalf("Run %d: expected screenshot: %v", i+1, report.ScreenshotErr)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read screenshot dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected one screenshot file, got %d", len(entries))
	}
}
