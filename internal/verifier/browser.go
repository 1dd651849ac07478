package verifier

import (
	"fmt"

	"github.com/genstudio-io/genstudio/internal/config"
	"github.com/playwright-community/playwright-go"
)

// session owns the browser resources for one verification run: the
// Playwright driver, one browser, one context, one page. Close releases
// them in reverse order on every exit path.
type session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

// newSession starts the driver and opens a single page
func newSession(cfg *config.VerifyConfig) (*session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	page.SetDefaultTimeout(float64(cfg.Timeout.Milliseconds()))

	return &session{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
	}, nil
}

// Close releases the page, context, browser, and driver
func (s *session) Close() {
	if s.page != nil {
		s.page.Close()
	}
	if s.context != nil {
		s.context.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}
