package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts command and entry_id from context and adds them to log events.
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

	if id := GetEntryID(ctx); id != "" {
		e.Str("entry_id", id)
	}
}
