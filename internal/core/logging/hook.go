package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies command and run_id from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if cmd := GetCommand(ctx); cmd != "" {
		e.Str("command", cmd)
	}

	if id := GetRunID(ctx); id != "" {
		e.Str("run_id", id)
	}
}
