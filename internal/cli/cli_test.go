package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BlockFit/internal/engine"
	"github.com/piwi3910/BlockFit/internal/project"
)

const (
	stripsPuzzle   = "4 4 2\n4 2\n4 2\n"
	stuckPuzzle    = "3 3 3\n2 2\n2 2\n1 1\n"
	mismatchPuzzle = "3 3 2\n2 2\n2 2\n"
)

type testCLI struct {
	*CLI
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	c.ConfigDir = t.TempDir()
	return &testCLI{CLI: c, out: &out, logs: &logs}
}

// run executes the command line with colors disabled.
func (tc *testCLI) run(args ...string) error {
	root := tc.RootCommand()
	root.SetArgs(append(args, "--plain"))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writePuzzle(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSolve_PrintsBoardAndCalls(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	require.NoError(t, tc.run("solve", path))

	out := tc.out.String()
	assert.Contains(t, out, "Solution!")
	assert.Contains(t, out, "|     4x2      |")
	assert.Contains(t, out, "Solved in 2 calls")
	assert.Contains(t, tc.logs.String(), "Search finished")
}

func TestSolve_RemembersPuzzle(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	require.NoError(t, tc.run("solve", path))

	cfg, err := project.LoadAppConfig(filepath.Join(tc.ConfigDir, "config.json"))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.RecentPuzzles)
	assert.Equal(t, "strips.txt", filepath.Base(cfg.RecentPuzzles[0]))
}

func TestSolve_Exhausted(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "stuck.txt", stuckPuzzle)

	require.NoError(t, tc.run("solve", path))

	out := tc.out.String()
	assert.Contains(t, out, "Can't solve, took 8 calls to find that out")
	assert.NotContains(t, out, "Solution!")
}

func TestSolve_PreconditionFailure(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "short.txt", mismatchPuzzle)

	err := tc.run("solve", path)

	require.Error(t, err)
	assert.True(t, engine.IsCode(err, engine.ErrCodeAreaMismatch))
	assert.Empty(t, tc.out.String())
}

func TestSolve_CallBudget(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "stuck.txt", stuckPuzzle)

	err := tc.run("solve", path, "--max-calls", "3")

	require.Error(t, err)
	assert.True(t, engine.IsCode(err, engine.ErrCodeBudgetExceeded))
	assert.Contains(t, tc.out.String(), "Search stopped after 4 calls")
}

func TestSolve_NegativeMaxCalls(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	err := tc.run("solve", path, "--max-calls=-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-calls")
}

func TestSolve_Trace(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	require.NoError(t, tc.run("solve", path, "--trace"))

	out := tc.out.String()
	assert.Contains(t, out, "Trace")
	assert.Contains(t, out, "placed rectangle 4 x 2 at (0, 0)")
	assert.Contains(t, out, "placed rectangle 4 x 2 at (0, 2)")
	assert.Contains(t, out, "finished: Solved after 2 calls")
}

func TestSolve_WritesOutputs(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)
	dir := t.TempDir()
	pdf := filepath.Join(dir, "layout.pdf")
	labels := filepath.Join(dir, "labels.pdf")
	dxf := filepath.Join(dir, "layout.dxf")
	xlsx := filepath.Join(dir, "layout.xlsx")
	nc := filepath.Join(dir, "layout.nc")

	require.NoError(t, tc.run("solve", path, "--pdf", pdf, "--labels", labels, "--dxf", dxf, "--xlsx", xlsx,
		"--gcode", nc, "--controller", "Grbl", "--cell-size", "25"))

	for _, f := range []string{pdf, labels, dxf, xlsx, nc} {
		info, err := os.Stat(f)
		require.NoError(t, err, f)
		assert.Positive(t, info.Size(), f)
		assert.Contains(t, tc.out.String(), f)
	}
	assert.Contains(t, tc.out.String(), "mm cut in")
}

func TestGCode_SummarizesProgram(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)
	nc := filepath.Join(t.TempDir(), "layout.nc")

	require.NoError(t, tc.run("solve", path, "--gcode", nc, "--cell-size", "10", "--tool-diameter", "2"))
	tc.out.Reset()

	require.NoError(t, tc.run("gcode", nc))

	out := tc.out.String()
	assert.Contains(t, out, "Moves")
	assert.Contains(t, out, "Plunges")
	assert.Contains(t, out, "416.0 mm")
}

func TestGCode_MissingFile(t *testing.T) {
	tc := newTestCLI(t)

	err := tc.run("gcode", filepath.Join(t.TempDir(), "missing.nc"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.nc")
}

func TestSolve_SkipsOutputsWithoutSolution(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "stuck.txt", stuckPuzzle)
	pdf := filepath.Join(t.TempDir(), "layout.pdf")

	require.NoError(t, tc.run("solve", path, "--pdf", pdf))

	assert.Contains(t, tc.out.String(), "No solution, skipping file outputs")
	_, err := os.Stat(pdf)
	assert.True(t, os.IsNotExist(err))
}

func TestSolve_UsageErrors(t *testing.T) {
	tc := newTestCLI(t)

	assert.Error(t, tc.run("solve"))
	assert.Error(t, tc.run("solve", "a.txt", "b.txt"))
	assert.Error(t, tc.run("solve", filepath.Join(t.TempDir(), "missing.txt")))
}

func TestSolve_UnknownProfile(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	err := tc.run("solve", path, "--profile", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "nope" not found`)
}

func TestProfile_SaveListUseDelete(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "stuck.txt", stuckPuzzle)

	require.NoError(t, tc.run("profile", "save", "tight", "--max-calls", "3", "--description", "tiny budget"))
	assert.Contains(t, tc.out.String(), `Saved profile "tight"`)

	tc.out.Reset()
	require.NoError(t, tc.run("profile", "list"))
	assert.Contains(t, tc.out.String(), "tight")
	assert.Contains(t, tc.out.String(), "max 3 calls")
	assert.Contains(t, tc.out.String(), "tiny budget")

	err := tc.run("solve", path, "--profile", "TIGHT")
	require.Error(t, err)
	assert.True(t, engine.IsCode(err, engine.ErrCodeBudgetExceeded))

	// Flags still override the profile
	require.NoError(t, tc.run("solve", path, "--profile", "tight", "--max-calls", "0"))

	require.NoError(t, tc.run("profile", "delete", "tight"))
	assert.Error(t, tc.run("profile", "delete", "tight"))

	tc.out.Reset()
	require.NoError(t, tc.run("profile", "list"))
	assert.Contains(t, tc.out.String(), "No saved profiles")
}

func TestProfile_ExportImport(t *testing.T) {
	src := newTestCLI(t)
	file := filepath.Join(t.TempDir(), "shared.json")

	require.NoError(t, src.run("profile", "save", "unsorted", "--no-sort"))
	require.NoError(t, src.run("profile", "export", "unsorted", file))
	assert.Error(t, src.run("profile", "export", "missing", file))

	dst := newTestCLI(t)
	require.NoError(t, dst.run("profile", "import", file))

	profiles, err := project.LoadProfiles(filepath.Join(dst.ConfigDir, "profiles.json"))
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "unsorted", profiles[0].Name)
	assert.True(t, profiles[0].Settings.DisableOrdering)
}

func TestCompare_DefaultScenarios(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "strips.txt", stripsPuzzle)

	require.NoError(t, tc.run("compare", path))

	out := tc.out.String()
	assert.Contains(t, out, "Scenario")
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Input Order")
	assert.Contains(t, out, "Always Sort By Area")
	assert.Equal(t, 3, strings.Count(out, "Solved"))
}

func TestCompare_IncludesProfiles(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "stuck.txt", stuckPuzzle)
	require.NoError(t, tc.run("profile", "save", "tight", "--max-calls", "3"))

	tc.out.Reset()
	require.NoError(t, tc.run("compare", path))
	out := tc.out.String()
	assert.Contains(t, out, "Profile: tight")
	assert.Contains(t, out, "Budget")

	tc.out.Reset()
	require.NoError(t, tc.run("compare", path, "--profiles=false"))
	assert.NotContains(t, tc.out.String(), "Profile: tight")
}

func TestCompare_PreconditionFailure(t *testing.T) {
	tc := newTestCLI(t)
	path := writePuzzle(t, "short.txt", mismatchPuzzle)

	err := tc.run("compare", path)

	require.Error(t, err)
	assert.True(t, engine.IsPrecondition(err))
}

func TestConfig_InitAndShow(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run("config", "init"))
	assert.FileExists(t, filepath.Join(tc.ConfigDir, "config.json"))
	assert.Error(t, tc.run("config", "init"), "existing file is not overwritten")
	require.NoError(t, tc.run("config", "init", "--force"))

	tc.out.Reset()
	require.NoError(t, tc.run("config", "show"))
	out := tc.out.String()
	assert.Contains(t, out, "Sort above")
	assert.Contains(t, out, "8")
	assert.Contains(t, out, filepath.Join(tc.ConfigDir, "config.json"))
}

func TestConfig_ExportImport(t *testing.T) {
	src := newTestCLI(t)
	backup := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, src.run("profile", "save", "fast", "--max-calls", "100"))
	require.NoError(t, src.run("config", "export", backup))
	assert.Contains(t, src.out.String(), "1 profiles")

	dst := newTestCLI(t)
	require.NoError(t, dst.run("config", "import", backup))
	assert.Contains(t, dst.out.String(), "Restored configuration and 1 profiles")

	dst.out.Reset()
	require.NoError(t, dst.run("profile", "list"))
	assert.Contains(t, dst.out.String(), "fast")

	assert.Error(t, dst.run("config", "import", filepath.Join(t.TempDir(), "missing.json")))
}
