package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Scope(t *testing.T) {
	var buf bytes.Buffer
	log := WithScope(NewLogger(&buf, zerolog.DebugLevel), "TREE")
	log.Debug().Msg("node inserted")
	out := buf.String()
	assert.Contains(t, out, "[TREE]")
	assert.Contains(t, out, "node inserted")
	assert.NotContains(t, out, "scope=")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)

	l, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
