// Package verifier drives a headless browser through the console's Backend
// tab and reports a structured per-step outcome. The final screenshot is
// captured on every run, pass or fail.
package verifier

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/genstudio-io/genstudio/internal/config"
	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// Verifier runs the scripted UI verification against a running console
type Verifier struct {
	config *config.VerifyConfig
}

// New creates a verifier for the given configuration
func New(cfg *config.VerifyConfig) *Verifier {
	return &Verifier{config: cfg}
}

// step is one entry in the fixed verification sequence
type step struct {
	name     string
	run      func(page playwright.Page) error
	classify func(err error) FailureKind
}

// Run executes the verification sequence. Step failures never surface as
// an error here; they are classified into the report. An error is returned
// only when the browser harness itself cannot be brought up.
func (v *Verifier) Run() (*Report, error) {
	report := &Report{
		RunID:          uuid.New().String(),
		ScreenshotPath: v.config.ScreenshotPath,
	}

	session, err := newSession(v.config)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	// Deferred so the screenshot is attempted even after a failed step,
	// before the browser goes away
	defer v.captureScreenshot(session.page, report)

	log.Printf("Starting verification run %s against %s", report.RunID, v.config.BaseURL)

	failed := false
	for _, s := range v.steps() {
		if failed {
			report.Steps = append(report.Steps, StepResult{Name: s.name, Kind: KindSkipped})
			continue
		}

		start := time.Now()
		err := s.run(session.page)
		result := StepResult{
			Name:     s.name,
			Kind:     s.classify(err),
			Err:      err,
			Duration: time.Since(start),
		}
		report.Steps = append(report.Steps, result)

		if result.Failed() {
			failed = true
			if isTimeout(err) {
				log.Printf("Step %q timed out after %s: %v", s.name, result.Duration.Round(time.Millisecond), err)
			} else {
				log.Printf("Step %q failed (%s): %v", s.name, result.Kind, err)
			}
			continue
		}
		log.Printf("Step %q completed in %s", s.name, result.Duration.Round(time.Millisecond))
	}

	return report, nil
}

// steps returns the fixed verification sequence: open the console, open the
// Backend tab, check its heading, choose the Local backend, check the local
// configuration controls
func (v *Verifier) steps() []step {
	timeout := playwright.Float(float64(v.config.Timeout.Milliseconds()))

	return []step{
		{
			name:     "navigate to console",
			classify: classifyNavigation,
			run: func(page playwright.Page) error {
				if _, err := page.Goto(v.config.BaseURL, playwright.PageGotoOptions{
					Timeout: timeout,
				}); err != nil {
					return err
				}
				return page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
					State:   playwright.LoadStateNetworkidle,
					Timeout: timeout,
				})
			},
		},
		{
			name:     "open Backend tab",
			classify: classifyInteraction,
			run: func(page playwright.Page) error {
				return page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
					Name:  "Backend",
					Exact: playwright.Bool(true),
				}).Click()
			},
		},
		{
			name:     "backend heading visible",
			classify: classifyVisibility,
			run: func(page playwright.Page) error {
				return expectVisible(page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
					Name: "Select Generation Backend",
				}))
			},
		},
		{
			name:     "choose Local backend",
			classify: classifyInteraction,
			run: func(page playwright.Page) error {
				return page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
					Name:  "Local",
					Exact: playwright.Bool(true),
				}).Click()
			},
		},
		{
			name:     "local configuration visible",
			classify: classifyVisibility,
			run: func(page playwright.Page) error {
				if err := expectVisible(page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
					Name: "Local Server Configuration",
				})); err != nil {
					return err
				}
				if err := expectVisible(page.GetByLabel("Ollama Server URL")); err != nil {
					return err
				}
				return expectVisible(page.GetByLabel("Local Model"))
			},
		},
	}
}

// expectVisible waits for the locator to become visible within the page's
// default timeout
func expectVisible(locator playwright.Locator) error {
	return locator.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
}

// captureScreenshot writes the final page state to the configured path,
// overwriting any previous run's screenshot
func (v *Verifier) captureScreenshot(page playwright.Page, report *Report) {
	if dir := filepath.Dir(v.config.ScreenshotPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			report.ScreenshotErr = err
			log.Printf("Could not create screenshot directory: %v", err)
			return
		}
	}

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(v.config.ScreenshotPath),
		FullPage: playwright.Bool(true),
	}); err != nil {
		report.ScreenshotErr = err
		log.Printf("Could not capture screenshot: %v", err)
		return
	}

	report.ScreenshotTaken = true
	log.Printf("Screenshot written to %s", v.config.ScreenshotPath)
}
