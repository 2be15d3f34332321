package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "log")
	assert.Equal(t, "log", GetCommand(ctx))
}

func TestWithEntryID(t *testing.T) {
	ctx := WithEntryID(context.Background(), "c4")
	assert.Equal(t, "c4", GetEntryID(ctx))
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetEntryID(ctx))
}
