package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging_Levels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := New(Options{Out: &buf})

	log.Debug().Msg("hidden")
	log.Warn().Msg("careful")
	log.Error().Str("file", "a.conf").Msg("broken")

	out := buf.String()
	assert.NotContains(out, "hidden")
	assert.Contains(out, "WARNING: careful")
	assert.Contains(out, "ERROR: broken")
	assert.Contains(out, "file=a.conf")
	assert.NotContains(out, "\x1b[")
}

func TestLogging_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Out: &buf, Verbose: true})

	log.Debug().Msg("details")
	log.Info().Msg("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "DEBUG: details"))
	assert.True(t, strings.HasPrefix(lines[1], "INFO: done"))
}

func TestLogging_Color(t *testing.T) {
	f := FormatLevel(true)
	assert.Equal(t, "\x1b[31mERROR:\x1b[0m", f("error"))
	assert.Equal(t, "WARNING:", FormatLevel(false)("warn"))
	assert.Equal(t, "", FormatLevel(false)(nil))
}
