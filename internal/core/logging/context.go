package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	entryIDKey contextKey = "entry_id"
)

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithEntryID adds a journal entry ID to the context.
func WithEntryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, entryIDKey, id)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetEntryID retrieves the journal entry ID from the context.
// Returns empty string if not present.
func GetEntryID(ctx context.Context) string {
	if v, ok := ctx.Value(entryIDKey).(string); ok {
		return v
	}
	return ""
}
