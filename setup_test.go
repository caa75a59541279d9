package fig

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContent = `{ "test": "a" }`

func quiet() Option {
	return WithLogger(slog.New(slog.DiscardHandler))
}

func testPaths(t *testing.T) (figPath, ignorePath string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "new_file.json"), filepath.Join(dir, ".gitignore.test")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSetup_CreatesFigFile(t *testing.T) {
	figPath, ignorePath := testPaths(t)

	require.NoError(t, Setup(figPath, testContent, ignorePath, true, quiet()))

	assert.Equal(t, testContent, readFile(t, figPath))
	_, err := os.Stat(ignorePath)
	assert.ErrorIs(t, err, fs.ErrNotExist, "ignore file must not be touched when skipped")
}

func TestSetup_DefaultContent(t *testing.T) {
	figPath, ignorePath := testPaths(t)

	require.NoError(t, Setup(figPath, "", ignorePath, true, quiet()))

	assert.Equal(t, DefaultContent, readFile(t, figPath))
}

func TestSetup_FigFileMode(t *testing.T) {
	if filepath.Separator == '\\' {
		t.Skip("file modes are not meaningful on windows")
	}
	figPath, ignorePath := testPaths(t)

	require.NoError(t, Setup(figPath, "", ignorePath, true, quiet()))

	info, err := os.Stat(figPath)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestSetup_DoesNotOverwrite(t *testing.T) {
	figPath, ignorePath := testPaths(t)
	existing := `{ "test": "b" }`
	require.NoError(t, os.WriteFile(figPath, []byte(existing), 0o600))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, Setup(figPath, testContent, ignorePath, true, WithLogger(logger)))

	assert.Equal(t, existing, readFile(t, figPath))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "we will not overwrite")
}

func TestSetup_CreatesIgnoreFile(t *testing.T) {
	figPath, ignorePath := testPaths(t)

	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))

	assert.Equal(t, DefaultContent, readFile(t, figPath))
	assert.Equal(t, EOL+figPath+EOL, readFile(t, ignorePath))
}

func TestSetup_DoesNotReappend(t *testing.T) {
	figPath, ignorePath := testPaths(t)

	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))
	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))

	got := readFile(t, ignorePath)
	assert.Equal(t, EOL+figPath+EOL, got)
	assert.Equal(t, 1, strings.Count(got, figPath))
}

func TestSetup_AppendsToExistingIgnoreFile(t *testing.T) {
	figPath, ignorePath := testPaths(t)
	require.NoError(t, os.WriteFile(ignorePath, []byte("sometext"), 0o644))

	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))

	assert.Equal(t, DefaultContent, readFile(t, figPath))
	assert.Equal(t, "sometext"+EOL+figPath+EOL, readFile(t, ignorePath))
}

func TestSetup_SubstringMatchCountsAsIgnored(t *testing.T) {
	figPath, ignorePath := testPaths(t)
	// The path only appears inside a longer line; containment is enough.
	existing := "# keep " + figPath + ".bak out of git\n"
	require.NoError(t, os.WriteFile(ignorePath, []byte(existing), 0o644))

	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))

	assert.Equal(t, existing, readFile(t, ignorePath))
}

func TestSetup_ExistingFigFileStillRegistered(t *testing.T) {
	figPath, ignorePath := testPaths(t)
	require.NoError(t, os.WriteFile(figPath, []byte(testContent), 0o600))

	require.NoError(t, Setup(figPath, "", ignorePath, false, quiet()))

	assert.Equal(t, testContent, readFile(t, figPath))
	assert.Equal(t, EOL+figPath+EOL, readFile(t, ignorePath))
}

func TestSetup_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Setup("", "", "", false, quiet()))

	assert.Equal(t, DefaultContent, readFile(t, DefaultFilePath))
	assert.Equal(t, EOL+DefaultFilePath+EOL, readFile(t, DefaultIgnorePath))
}

func TestSetup_WriteError(t *testing.T) {
	dir := t.TempDir()
	figPath := filepath.Join(dir, "missing-dir", "fig.json")

	err := Setup(figPath, "", filepath.Join(dir, ".gitignore"), false, quiet())

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, statErr := os.Stat(filepath.Join(dir, ".gitignore"))
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}
