package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ZeroExit(t *testing.T) {
	err := Run(context.Background(), "true")
	assert.NoError(t, err)
}

func TestRun_NonZeroExit(t *testing.T) {
	err := Run(context.Background(), "false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "false")
	assert.Contains(t, err.Error(), "exit code 1")
}

func TestRun_MissingBinary(t *testing.T) {
	err := Run(context.Background(), "definitely-not-a-binary-kirimase")
	assert.Error(t, err)
}

func TestRun_FiltersEmptyArgs(t *testing.T) {
	// ls would fail on an empty-string argument if it were passed through.
	dir := t.TempDir()
	err := Run(context.Background(), "ls", "", dir, "")
	assert.NoError(t, err)
}
