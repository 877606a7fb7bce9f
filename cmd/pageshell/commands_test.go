package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("PAGESHELL_PERSON", "Joel")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := run(t, "render", "/contact")
	assert.True(t, strings.HasPrefix(out, `<div class="App"><header`), out)
	assert.Contains(t, out, `data-route="contact"`)
	assert.Contains(t, out, "Joel")
}

func TestRenderCommandPerson(t *testing.T) {
	out := run(t, "render", "--person", "Ann", "--partial", "/contact")
	assert.NotContains(t, out, "<header")
	assert.Contains(t, out, "Ann")
}

func TestRenderCommandUnmatched(t *testing.T) {
	out := run(t, "render", "/nonexistent")
	assert.Contains(t, out, `<main id="page"></main>`)
}

func TestRenderCommandDocument(t *testing.T) {
	out := run(t, "render", "--document", "/about")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), out)
	assert.Contains(t, out, "<title>About | ")
}

func TestRoutesCommand(t *testing.T) {
	out := run(t, "routes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"1", "exact", "/", "home", "-"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"3", "prefix", "/contact", "contact", "Joel"}, strings.Fields(lines[2]))
}
