package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// createTestApp writes a small application into a temp directory and loads
// it. Loading real packages is expensive, so these tests are skipped in
// short mode.
func createTestApp(t *testing.T, contents string) (string, []*decorator.Package) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping package loading integration tests in short mode")
	}

	dir := t.TempDir()
	goMod := "module testapp\n\ngo 1.21\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte(contents), 0644))

	pkgs, err := decorator.Load(&packages.Config{Dir: dir, Mode: packages.LoadSyntax}, "./...")
	require.NoError(t, err)
	return dir, pkgs
}

const testApp = `package testapp

type Foo struct {
	a int32
	// Baz.
	b bool ` + "`accessor:\"get,set\"`" + `
}
`

func Test_GenerationManager_WriteDiff(t *testing.T) {
	dir, pkgs := createTestApp(t, testApp)

	diffFile := filepath.Join(dir, "accessors.diff")
	manager := NewGenerationManager(pkgs, diffFile, dir)
	require.NoError(t, manager.CreateDiffFile())
	require.NoError(t, manager.GenerateAccessors())
	require.NoError(t, manager.WriteDiff())

	data, err := os.ReadFile(diffFile)
	require.NoError(t, err)

	diff := string(data)
	assert.Contains(t, diff, "func (f *Foo) B() *bool")
	assert.Contains(t, diff, "func (f *Foo) SetB(value bool)")
	assert.Contains(t, diff, "+// Getter for `b`.")
	// the source file itself must be untouched in diff mode
	original, err := os.ReadFile(filepath.Join(dir, "app.go"))
	require.NoError(t, err)
	assert.Equal(t, testApp, string(original))
}

func Test_GenerationManager_WriteInPlace(t *testing.T) {
	dir, pkgs := createTestApp(t, testApp)

	manager := NewGenerationManager(pkgs, "", dir)
	require.NoError(t, manager.GenerateAccessors())
	require.NoError(t, manager.WriteInPlace())

	data, err := os.ReadFile(filepath.Join(dir, "app.go"))
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "func (f *Foo) B() *bool")
	assert.Contains(t, src, "func (f *Foo) SetB(value bool)")
	assert.NotContains(t, src, "accessor:")
	// untouched field and propagated doc survive
	assert.Contains(t, src, "a int32")
	assert.Contains(t, src, "// Baz.")
}

func Test_GenerationManager_noCandidates(t *testing.T) {
	dir, pkgs := createTestApp(t, `package testapp

type Foo struct {
	a int32
}
`)

	diffFile := filepath.Join(dir, "accessors.diff")
	manager := NewGenerationManager(pkgs, diffFile, dir)
	require.NoError(t, manager.CreateDiffFile())
	require.NoError(t, manager.GenerateAccessors())
	require.NoError(t, manager.WriteDiff())

	data, err := os.ReadFile(diffFile)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}
