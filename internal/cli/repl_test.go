package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhisheklearn12/kvstore/internal/store"
)

// runSession feeds a scripted session to a REPL backed by a fresh memory
// store and returns everything written to the output.
func runSession(t *testing.T, input string) string {
	t.Helper()

	st := store.NewInstrumentedStore(store.NewMemStore(hclog.NewNullLogger(), store.LoadMerge))

	var out bytes.Buffer
	repl, err := NewREPL(st, strings.NewReader(input), &out, ">> ", "", hclog.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, repl.Run())

	return out.String()
}

// TestREPL_Scenario walks the canonical session: set two keys, read one
// back, save, clear, reload, remove, and list after each step.
func TestREPL_Scenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.txt")
	input := fmt.Sprintf(`set name Abhishek
set lang C++
get name
save %s
clear
list
load %s
list
remove name
list
exit
`, path, path)

	out := runSession(t, input)

	assert.Contains(t, out, "name = Abhishek")

	// list after clear, after load, after remove.
	sections := strings.Split(out, "[STORE DUMP]")
	require.Len(t, sections, 4, "expected three store dumps")

	assert.Contains(t, sections[1], "(empty)")

	assert.Contains(t, sections[2], "- name: Abhishek")
	assert.Contains(t, sections[2], "- lang: C++")

	assert.NotContains(t, sections[3], "- name: Abhishek")
	assert.Contains(t, sections[3], "- lang: C++")
}

// TestREPL_UsageErrors checks that bad set invocations print the usage
// line and that the loop keeps going.
func TestREPL_UsageErrors(t *testing.T) {
	t.Parallel()

	out := runSession(t, "set onlykey\nset\nget onlykey\nexit\n")

	assert.Contains(t, out, "Usage: set <key> <value>")
	assert.Contains(t, out, "Key not found", "usage error must not mutate the store")
}

// TestREPL_UnknownCommand checks the error plus hint behavior.
func TestREPL_UnknownCommand(t *testing.T) {
	t.Parallel()

	out := runSession(t, "frobnicate\nset name Abhishek\nget name\nexit\n")

	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "name = Abhishek", "session must continue after an unknown command")
}

// TestREPL_LoadMissingPath verifies a failed load is reported and the
// session continues with the store unchanged.
func TestREPL_LoadMissingPath(t *testing.T) {
	t.Parallel()

	input := fmt.Sprintf("set name Abhishek\nload %s\nget name\nexit\n",
		filepath.Join(t.TempDir(), "missing", "data.txt"))

	out := runSession(t, input)

	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "name = Abhishek", "failed load must leave the store unchanged")
}

// TestREPL_EOFEndsSession checks that running out of input terminates the
// loop cleanly, the same as an explicit exit.
func TestREPL_EOFEndsSession(t *testing.T) {
	t.Parallel()

	out := runSession(t, "set name Abhishek\n")
	assert.Contains(t, out, ">> ")
}

// TestREPL_TabSeparatedInput checks that tabs between tokens work the
// same as spaces.
func TestREPL_TabSeparatedInput(t *testing.T) {
	t.Parallel()

	out := runSession(t, "set\tname\tAbhishek\nget\tname\nexit\n")

	assert.Contains(t, out, "name = Abhishek")
	assert.NotContains(t, out, "Available commands:", "tab-separated input must not read as an unknown command")
}

// TestREPL_BlankLinesIgnored checks empty input lines are skipped.
func TestREPL_BlankLinesIgnored(t *testing.T) {
	t.Parallel()

	out := runSession(t, "\n   \nexists nothing\nexit\n")
	assert.Contains(t, out, "false")
}

// TestREPL_Banner verifies the startup banner reaches the injected logger.
func TestREPL_Banner(t *testing.T) {
	t.Parallel()

	st := store.NewInstrumentedStore(store.NewMemStore(hclog.NewNullLogger(), store.LoadMerge))

	var logBuf, out bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logBuf})

	repl, err := NewREPL(st, strings.NewReader("exit\n"), &out, ">> ", "", logger)
	require.NoError(t, err)
	require.NoError(t, repl.Run())

	assert.Contains(t, logBuf.String(), "Welcome to the Key-Value CLI Store")
	assert.Contains(t, logBuf.String(), "Type 'exit' to quit")
}
