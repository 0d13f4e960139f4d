package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputs(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(name, []byte("5 plus 3\n\n  10 divided by 2  \n"), 0o644))

	got, err := inputs(name, []string{"2 times 4"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"5 plus 3", "10 divided by 2", "2 times 4"}, got)

	got, err = inputs(name, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"5 plus 3\n\n  10 divided by 2"}, got)

	got, err = inputs("", []string{"1 plus 1"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 plus 1"}, got)
}

func TestInputsMissingFile(t *testing.T) {
	_, err := inputs(filepath.Join(t.TempDir(), "nope"), nil, false)
	assert.Error(t, err)
}

func TestListKeywords(t *testing.T) {
	var b strings.Builder
	listKeywords(&b)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "add "))
	assert.Contains(t, lines[0], "plus")
	assert.Contains(t, lines[3], "divided")
	assert.Contains(t, lines[4], "open bracket")
}
