package gemini_test

import (
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pagesift.Model = (*gemini.Model)(nil)

func TestBuildConfig_SetsZeroTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.0, *config.Temperature, 0.001)
}

func TestBuildConfig_HasNoSystemInstruction(t *testing.T) {
	t.Parallel()

	// The extraction rules travel in the user prompt so every provider sees
	// the same instruction.
	assert.Nil(t, gemini.BuildConfig().SystemInstruction)
}
