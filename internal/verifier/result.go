package verifier

import (
	"errors"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// FailureKind classifies why a verification step failed
type FailureKind string

// Failure kinds
const (
	// KindNone means the step succeeded
	KindNone FailureKind = "none"
	// KindSkipped means the step was not attempted because an earlier step failed
	KindSkipped FailureKind = "skipped"
	// KindTimeout means the target was unreachable or too slow
	KindTimeout FailureKind = "timeout"
	// KindElementNotFound means the expected control was absent or ambiguous
	KindElementNotFound FailureKind = "element-not-found"
	// KindAssertionFailed means the expected element never became visible
	KindAssertionFailed FailureKind = "assertion-failed"
)

// StepResult records the outcome of a single verification step
type StepResult struct {
	Name     string
	Kind     FailureKind
	Err      error
	Duration time.Duration
}

// Failed returns true if the step was attempted and did not succeed
func (r StepResult) Failed() bool {
	return r.Kind != KindNone && r.Kind != KindSkipped
}

// Report is the structured outcome of a verification run
type Report struct {
	RunID           string
	Steps           []StepResult
	ScreenshotPath  string
	ScreenshotTaken bool
	ScreenshotErr   error
}

// Passed returns true if every step ran and succeeded
func (r *Report) Passed() bool {
	for _, step := range r.Steps {
		if step.Kind != KindNone {
			return false
		}
	}
	return len(r.Steps) > 0
}

// FirstFailure returns the first failed step, or nil if none failed
func (r *Report) FirstFailure() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Failed() {
			return &r.Steps[i]
		}
	}
	return nil
}

// classifyNavigation classifies a failure to reach the target page.
// Unreachable and slow targets land in the same bucket: the operator's
// remedy (check the console is running) is the same.
func classifyNavigation(err error) FailureKind {
	if err == nil {
		return KindNone
	}
	return KindTimeout
}

// classifyInteraction classifies a failure to locate and activate a control.
// A click on a missing control times out; an ambiguous accessible name
// surfaces as a strict mode violation. Both mean the contract element
// is not there to interact with.
func classifyInteraction(err error) FailureKind {
	if err == nil {
		return KindNone
	}
	return KindElementNotFound
}

// classifyVisibility classifies a failed visibility assertion
func classifyVisibility(err error) FailureKind {
	if err == nil {
		return KindNone
	}
	if isAmbiguousMatch(err) {
		return KindElementNotFound
	}
	return KindAssertionFailed
}

// isTimeout reports whether the error is a Playwright timeout
func isTimeout(err error) bool {
	return errors.Is(err, playwright.ErrTimeout)
}

// isAmbiguousMatch reports whether a locator matched more than one element
func isAmbiguousMatch(err error) bool {
	return err != nil && strings.Contains(err.Error(), "strict mode violation")
}
