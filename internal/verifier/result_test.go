package verifier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
)

func TestClassifyNavigation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "no error",
			err:  nil,
			want: KindNone,
		},
		{
			name: "navigation timeout",
			err:  fmt.Errorf("%w: Timeout 60000ms exceeded", playwright.ErrTimeout),
			want: KindTimeout,
		},
		{
			name: "connection refused",
			err:  errors.New("net::ERR_CONNECTION_REFUSED at http://localhost:3000"),
			want: KindTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyNavigation(tt.err); got != tt.want {
				t.Errorf("classifyNavigation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyInteraction(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "no error",
			err:  nil,
			want: KindNone,
		},
		{
			name: "click timeout on missing control",
			err:  fmt.Errorf("%w: Timeout 60000ms exceeded waiting for locator", playwright.ErrTimeout),
			want: KindElementNotFound,
		},
		{
			name: "ambiguous accessible name",
			err:  errors.New(`locator resolved to 2 elements: strict mode violation`),
			want: KindElementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyInteraction(tt.err); got != tt.want {
				t.Errorf("classifyInteraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyVisibility(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "no error",
			err:  nil,
			want: KindNone,
		},
		{
			name: "element never became visible",
			err:  fmt.Errorf("%w: Timeout 60000ms exceeded waiting for element to be visible", playwright.ErrTimeout),
			want: KindAssertionFailed,
		},
		{
			name: "ambiguous accessible name",
			err:  errors.New(`locator resolved to 2 elements: strict mode violation`),
			want: KindElementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyVisibility(tt.err); got != tt.want {
				t.Errorf("classifyVisibility() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_Passed(t *testing.T) {
	tests := []struct {
		name  string
		steps []StepResult
		want  bool
	}{
		{
			name: "all steps passed",
			steps: []StepResult{
				{Name: "navigate to console", Kind: KindNone},
				{Name: "open Backend tab", Kind: KindNone},
			},
			want: true,
		},
		{
			name: "one step failed",
			steps: []StepResult{
				{Name: "navigate to console", Kind: KindNone},
				{Name: "open Backend tab", Kind: KindElementNotFound},
			},
			want: false,
		},
		{
			name: "skipped steps do not pass",
			steps: []StepResult{
				{Name: "navigate to console", Kind: KindTimeout},
				{Name: "open Backend tab", Kind: KindSkipped},
			},
			want: false,
		},
		{
			name:  "empty report has not passed",
			steps: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{Steps: tt.steps}
			if got := report.Passed(); got != tt.want {
				t.Errorf("Passed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_FirstFailure(t *testing.T) {
	report := &Report{
		Steps: []StepResult{
			{Name: "navigate to console", Kind: KindNone},
			{Name: "open Backend tab", Kind: KindElementNotFound},
			{Name: "backend heading visible", Kind: KindSkipped},
		},
	}

	failure := report.FirstFailure()
	if failure == nil {
		t.Fatal("Expected a first failure, got nil")
	}
	if failure.Name != "open Backend tab" {
		t.Errorf("Expected first failure at 'open Backend tab', got %q", failure.Name)
	}

	passing := &Report{
		Steps: []StepResult{
			{Name: "navigate to console", Kind: KindNone},
		},
	}
	if passing.FirstFailure() != nil {
		t.Error("Expected no first failure for passing report")
	}
}

func TestStepResult_Failed(t *testing.T) {
	tests := []struct {
		name string
		kind FailureKind
		want bool
	}{
		{name: "passed step", kind: KindNone, want: false},
		{name: "skipped step", kind: KindSkipped, want: false},
		{name: "timeout", kind: KindTimeout, want: true},
		{name: "element not found", kind: KindElementNotFound, want: true},
		{name: "assertion failed", kind: KindAssertionFailed, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StepResult{Kind: tt.kind}
			if got := result.Failed(); got != tt.want {
				t.Errorf("Failed() = %v, want %v", got, tt.want)
			}
		})
	}
}
