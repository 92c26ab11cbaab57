package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "projects")
	assert.Equal(t, "projects", GetCommand(ctx))
}

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "r-1")
	assert.Equal(t, "r-1", GetRunID(ctx))
}

func TestGetters_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetRunID(ctx))
}
