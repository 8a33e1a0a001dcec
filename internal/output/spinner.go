package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner.
// When stdout is not a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action(ctx)
	}

	return runWhile(ctx, action, func(wait func()) error {
		return spinner.New().Title(cfg.title).Action(wait).Run()
	})
}

// runWhile runs action in the background while show blocks on wait. If show
// fails first, the action's context is cancelled and runWhile still waits
// for it to return, so no writes outlive the call.
func runWhile(ctx context.Context, action func(ctx context.Context) error, show func(wait func()) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action(ctx)
	}()

	showErr := show(func() { <-done })
	if showErr != nil {
		cancel()
	}
	<-done

	if actionErr != nil {
		return actionErr
	}
	if showErr != nil {
		return fmt.Errorf("spinner error: %w", showErr)
	}
	return nil
}
