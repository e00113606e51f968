package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jslin/internal"
	tt "jslin/internal/types"
)

func lintFile(t *testing.T, filename string) []tt.Issue {
	t.Helper()
	engine, err := internal.NewEngine(nil)
	require.NoError(t, err)
	issues, err := engine.Run(filename)
	require.NoError(t, err)
	return issues
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "test.js")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestFixObjectAssign(t *testing.T) {
	t.Parallel()
	file := writeTempFile(t, `const merged = Object.assign({a: 1}, foo, {b: 2});
`)

	issues := lintFile(t, file)
	require.NotEmpty(t, issues)

	f := New(false, 0.75)
	require.NoError(t, f.Fix(file, issues))

	fixed, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "const merged = {a: 1, ...foo, b: 2};\n", string(fixed))
}

func TestFixMultipleIssues(t *testing.T) {
	t.Parallel()
	file := writeTempFile(t, `const a = Object.assign({}, foo);
const b = Object.assign({}, bar, {x: 1});
`)

	issues := lintFile(t, file)
	require.Len(t, issues, 2)

	f := New(false, 0.75)
	require.NoError(t, f.Fix(file, issues))

	fixed, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "const a = {...foo};\nconst b = {...bar, x: 1};\n", string(fixed))
}

func TestFixNestedCallsOuterOnly(t *testing.T) {
	t.Parallel()
	file := writeTempFile(t, `const a = Object.assign({}, Object.assign({}, foo));
`)

	issues := lintFile(t, file)
	require.Len(t, issues, 2)

	f := New(false, 0.75)
	require.NoError(t, f.Fix(file, issues))

	// the inner call's span nests inside the outer edit, so only the
	// outer fix lands on the first pass
	fixed, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "const a = {...Object.assign({}, foo)};\n", string(fixed))

	// a second lint-and-fix round picks up the surviving inner call
	secondPass := lintFile(t, file)
	require.Len(t, secondPass, 1)
	require.NoError(t, f.Fix(file, secondPass))

	fixed, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "const a = {...{...foo}};\n", string(fixed))
}

func TestFixDryRun(t *testing.T) {
	t.Parallel()
	original := "const a = Object.assign({}, foo);\n"
	file := writeTempFile(t, original)

	issues := lintFile(t, file)
	require.NotEmpty(t, issues)

	f := New(true, 0.75)
	require.NoError(t, f.Fix(file, issues))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestFixSkipsLowConfidence(t *testing.T) {
	t.Parallel()
	original := "debugger;\n"
	file := writeTempFile(t, original)

	issues := lintFile(t, file)
	require.NotEmpty(t, issues)

	f := New(false, 0.95) // above no-debugger's confidence
	require.NoError(t, f.Fix(file, issues))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestFixSkipsUnfixableIssues(t *testing.T) {
	t.Parallel()
	original := "Object.assign();\n"
	file := writeTempFile(t, original)

	issues := lintFile(t, file)
	require.NotEmpty(t, issues)

	f := New(false, 0) // threshold 0 still skips confidence-0 issues
	require.NoError(t, f.Fix(file, issues))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestFixRemovesDebugger(t *testing.T) {
	t.Parallel()
	file := writeTempFile(t, "debugger;\nconst a = 1;\n")

	issues := lintFile(t, file)
	require.NotEmpty(t, issues)

	f := New(false, 0.75)
	require.NoError(t, f.Fix(file, issues))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, ";\nconst a = 1;\n", string(content))
}

func TestFixMissingFile(t *testing.T) {
	t.Parallel()
	f := New(false, 0.75)
	err := f.Fix(filepath.Join(t.TempDir(), "missing.js"), []tt.Issue{{}})
	assert.Error(t, err)
}
