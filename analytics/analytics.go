// Package analytics posts anonymized usage events. Telemetry is best-effort:
// it never blocks the command that fired it, and failures are discarded.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"github.com/kirimase/kirimase/models"
)

// baseURL is a variable so tests can point the reporter at a local server.
var baseURL = "https://analytics.kirimase.dev"

const identifyingHeader = "X-Kirimase-CLI"

// Event is the JSON body posted for every usage event.
type Event struct {
	Event  string         `json:"event"`
	Config *models.Config `json:"config"`
	Data   map[string]any `json:"data"`
}

func client() fastshot.ClientHttpMethods {
	return fastshot.NewClient(baseURL).
		Config().SetTimeout(3 * time.Second).
		Header().Add("Content-Type", "application/json").
		Header().Add(identifyingHeader, "go").
		Build()
}

var pending sync.WaitGroup

// Notify fires event without blocking the caller. It is a no-op when the
// config's analytics flag is false. The outcome is intentionally invisible.
func Notify(ctx context.Context, cfg *models.Config, event string, data map[string]any) {
	if cfg == nil || !cfg.Analytics {
		return
	}
	pending.Add(1)
	go func() {
		defer pending.Done()
		_ = Send(ctx, cfg, event, data)
	}()
}

// Wait blocks until in-flight events finish or the grace period ends,
// whichever comes first. Called once before process exit so events fired at
// the end of a command get a chance to leave.
func Wait(grace time.Duration) {
	done := make(chan struct{})
	go func() {
		pending.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
	}
}

// Send posts one event synchronously. Notify is the entry point commands use;
// Send exists for callers that want the error, such as tests.
func Send(ctx context.Context, cfg *models.Config, event string, data map[string]any) error {
	resp, err := client().
		POST("/events").
		Context().Set(ctx).
		Body().AsJSON(Event{Event: event, Config: cfg, Data: data}).
		Send()
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		msg, err := resp.Body().AsString()
		if err != nil {
			return fmt.Errorf("failed to read error response: %w", err)
		}
		return errors.New(msg)
	}
	return nil
}
