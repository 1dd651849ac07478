package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/genstudio-io/genstudio/internal/config"
	"github.com/genstudio-io/genstudio/internal/verifier"
)

// ErrVerificationFailed is returned in strict mode when the run did not pass
var ErrVerificationFailed = errors.New("verification failed")

// RunVerify executes the UI verification and writes the per-step report.
// In strict mode a failed verification is returned as an error; otherwise
// the run is best-effort and only the report tells the story.
func RunVerify(cfg *config.VerifyConfig, out io.Writer) error {
	v := verifier.New(cfg)

	report, err := v.Run()
	if err != nil {
		return fmt.Errorf("could not run verification: %w", err)
	}

	WriteReport(out, report)

	if cfg.Strict && !report.Passed() {
		return ErrVerificationFailed
	}
	return nil
}

// WriteReport prints the structured run outcome as human-readable lines
func WriteReport(out io.Writer, report *verifier.Report) {
	fmt.Fprintf(out, "Verification run %s\n", report.RunID)

	for _, step := range report.Steps {
		switch {
		case step.Kind == verifier.KindNone:
			fmt.Fprintf(out, "  PASS %s (%s)\n", step.Name, step.Duration.Round(time.Millisecond))
		case step.Kind == verifier.KindSkipped:
			fmt.Fprintf(out, "  SKIP %s\n", step.Name)
		default:
			fmt.Fprintf(out, "  FAIL %s [%s]: %v\n", step.Name, step.Kind, step.Err)
		}
	}

	if report.ScreenshotTaken {
		fmt.Fprintf(out, "Screenshot: %s\n", report.ScreenshotPath)
	} else {
		fmt.Fprintf(out, "Screenshot not written: %v\n", report.ScreenshotErr)
	}

	if report.Passed() {
		fmt.Fprintln(out, "Result: PASS")
	} else {
		fmt.Fprintln(out, "Result: FAIL")
	}
}
