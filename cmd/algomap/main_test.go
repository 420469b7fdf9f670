package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_CheatSheetOutcome(t *testing.T) {
	code, out, logs := runArgs(t, "-seed", "1", "-answers", "yes,yes,yes")
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "START")
	assert.Contains(t, out, "Labeled Data?")
	assert.Contains(t, out, "outcome:")
	assert.Contains(t, out, "Classification")
	assert.Contains(t, logs, "scene built")
	assert.Contains(t, logs, `"nodes": 30`)
}

func TestRun_NoAnswers(t *testing.T) {
	code, out, _ := runArgs(t, "-seed", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "at:")
	assert.NotContains(t, out, "outcome:")
}

func TestRun_Snapshot(t *testing.T) {
	code, out, _ := runArgs(t, "-seed", "1", "-answers", "no", "-snapshot")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Get More Data")
	assert.Contains(t, out, `"trail": [`)
	assert.Contains(t, out, `"current": "more_data"`)
}

func TestRun_Errors(t *testing.T) {
	// more_data is terminal, so the second answer has nowhere to go
	code, out, logs := runArgs(t, "-seed", "1", "-answers", "no,no")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Get More Data")
	assert.Contains(t, logs, "not a decision node")

	code, _, logs = runArgs(t, "-answers", "maybe")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "invalid answer")

	code, _, _ = runArgs(t, "-chart", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)

	code, _, _ = runArgs(t, "-nope")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "-seed", "1", "-threshold", "-1")
	assert.Equal(t, 1, code)
}

func TestRun_ChartFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`nodes:
  - id: s
    kind: start
    label: Go
    next: q
  - id: q
    kind: decision
    label: Ready?
    "yes": done
    "no": s
  - id: done
    kind: terminal
    label: Done
`), 0o600))

	// q -> s closes a cycle, which the command rejects
	code, _, logs := runArgs(t, "-chart", good)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "cycle")

	acyclic := filepath.Join(dir, "acyclic.yaml")
	require.NoError(t, os.WriteFile(acyclic, []byte(`nodes:
  - id: s
    kind: start
    label: Go
    next: q
  - id: q
    kind: decision
    label: Ready?
    "yes": done
  - id: done
    kind: terminal
    label: Done
`), 0o600))
	code, out, logs := runArgs(t, "-seed", "1", "-chart", acyclic, "-answers", "y")
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "Done")

	code, out, _ = runArgs(t, "-chart", acyclic, "-dump")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "kind: decision")
	assert.Contains(t, out, "next: q")
}

// TestRun_DumpReloads writes the built-in chart with -dump and loads the
// output back through -chart.
func TestRun_DumpReloads(t *testing.T) {
	code, out, _ := runArgs(t, "-dump")
	require.Equal(t, 0, code)

	path := filepath.Join(t.TempDir(), "cheatsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	code, out, logs := runArgs(t, "-seed", "1", "-chart", path, "-answers", "yes,no,yes")
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "Regression")
}
