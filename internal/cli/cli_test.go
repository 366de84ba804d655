package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(p *Program, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Main(p, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLI_MalformedFloat(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := runMain(Blob, "--radius-max=12.3.4")
	assert.Equal(ExitError, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "ERROR:")
	assert.Contains(stderr, "Usage:")
	assert.Contains(stderr, "--radius-max")
}

func TestCLI_UnexpectedArgument(t *testing.T) {
	code, stdout, stderr := runMain(Star, "extra")
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
}

func TestCLI_Help(t *testing.T) {
	code, stdout, stderr := runMain(Stripe, "-h")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--block-count")
	assert.Contains(t, stderr, "--config-file")
}

func TestCLI_Version(t *testing.T) {
	code, stdout, _ := runMain(Flag, "-V")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "flag-generator")
	assert.Contains(t, stdout, Version)
}

func TestCLI_NoConfigFlagForStar(t *testing.T) {
	code, _, stderr := runMain(Star, "-f", "star.conf")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "Usage:")
}

func TestCLI_StarToStdout(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := runMain(Star, "--points=5", "--density=2", "--radius=100", "--rotation=-90")
	assert.Equal(ExitOK, code)
	assert.Empty(stderr)
	assert.True(strings.HasPrefix(stdout, "<?xml"))
	assert.Equal(1, strings.Count(stdout, "<polygon"))
	assert.Contains(stdout, `points="0,-100 `)
}

func TestCLI_GeometryFailure(t *testing.T) {
	code, stdout, stderr := runMain(Star, "--points=100", "--density=50")
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "kind=geometry")
	assert.NotContains(t, stderr, "Usage:")
}

func TestCLI_BlobConfigFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "camo.conf")
	out := filepath.Join(dir, "camo.svg")
	text := "[params]\ngrid_columns=2\ngrid_rows=2\nblob_node_count_min=3 # few\nblob_node_count_min=9\nmystery=1\n"
	require.NoError(t, os.WriteFile(cfg, []byte(text), 0644))

	code, stdout, stderr := runMain(Blob, "-f", cfg, "-o", out, "-b", "--node-count-max=4")
	assert.Equal(ExitOK, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "WARNING:")
	assert.Contains(stderr, "duplicate parameter blob_node_count_min")
	assert.Contains(stderr, "unknown parameter mystery")
	assert.Contains(stderr, "no palette")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(4, strings.Count(string(data), "<path"))
	assert.Contains(string(data), `id="background"`)
}

func TestCLI_BadConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(cfg, []byte("[params]\n[colors]\n"), 0644))

	code, stdout, stderr := runMain(Stripe, "-f", cfg)
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "kind=config")
	assert.Contains(t, stderr, "bad.conf:2")
}

func TestCLI_OutputFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "flag.svg")

	code, _, stderr := runMain(Flag, "-o", out)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "kind=output")
}

func TestCLI_Verbose(t *testing.T) {
	code, _, stderr := runMain(Stripe, "-v", "--block-count=2")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "DEBUG:")
	assert.Contains(t, stderr, "block_2")
}

func TestCLI_InvalidFlagValue(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := runMain(Stripe, "--block-count=0")
	assert.Equal(ExitError, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "kind=usage")
	assert.Contains(stderr, "--block-count must be at least 1")
	assert.Contains(stderr, "Usage:")
}

func TestCLI_InvalidConfigValue(t *testing.T) {
	assert := assert.New(t)

	cfg := filepath.Join(t.TempDir(), "min.conf")
	require.NoError(t, os.WriteFile(cfg, []byte("[params]\nblob_node_count_min=200\n"), 0644))

	code, stdout, stderr := runMain(Blob, "-f", cfg)
	assert.Equal(ExitError, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "kind=config")
	assert.Contains(stderr, "min.conf:2: blob_node_count_min is above the maximum 16")
	assert.NotContains(stderr, "Usage:")
}
