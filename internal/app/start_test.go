package app

import (
	"bytes"
	"io"
	"testing"

	"github.com/42-short/council/internal/version"
	"github.com/peterbourgon/ff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_help(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Short form
	_, err := parse(io.Discard, []string{"-h"})
	assert.ErrorIs(t, err, ff.ErrHelp)

	// Long form
	_, err = parse(io.Discard, []string{"--help"})
	assert.ErrorIs(t, err, ff.ErrHelp)
}

func TestStart_help(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stderr bytes.Buffer
	err := Start(io.Discard, &stderr, []string{"--help"})
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "--breakpoint")
}

func TestStart_version(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stdout bytes.Buffer
	err := Start(&stdout, io.Discard, []string{"-v"})
	require.NoError(t, err)

	assert.Equal(t, version.Version+"\n", stdout.String())
}
