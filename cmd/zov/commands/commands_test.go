package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestBuildJSON(t *testing.T) {
	path := writeSource(t, "app.zov", `
server {
    host = "localhost";
    port = 8000 + 80;
}
`)
	out, _, err := execute(t, "build", path)
	require.NoError(t, err)

	assert.Contains(t, out, `"host": [`)
	assert.Contains(t, out, `"localhost"`)
	assert.Contains(t, out, "8080")
}

func TestBuildYAMLToFile(t *testing.T) {
	src := writeSource(t, "app.zov", "server {\n    port = 8080;\n}\n")
	dst := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := execute(t, "build", src, "--format", "yaml", "-o", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "port:")
	assert.Contains(t, string(data), "8080")
}

func TestBuildDecimal(t *testing.T) {
	path := writeSource(t, "sum.zov", "math {\n    total = 0.1 + 0.2;\n}\n")

	out, _, err := execute(t, "build", path, "--decimal")
	require.NoError(t, err)
	assert.Contains(t, out, "0.3")
	assert.NotContains(t, out, "0.30000000000000004")
}

func TestBuildUnknownFormat(t *testing.T) {
	path := writeSource(t, "app.zov", "a {\n    b = 1;\n}\n")
	_, _, err := execute(t, "build", path, "--format", "ini")
	assert.Error(t, err)
}

func TestBuildSyntaxError(t *testing.T) {
	path := writeSource(t, "bad.zov", "server {\n    port = }\n")
	_, _, err := execute(t, "build", path)
	assert.Error(t, err)
}

func TestAstCmd(t *testing.T) {
	path := writeSource(t, "app.zov", "server {\n    port = 8000 + 80;\n}\n")

	out, _, err := execute(t, "ast", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "server")
	assert.Contains(t, out, "port")
	assert.Contains(t, out, "+")
}

func TestCheckReportsPosition(t *testing.T) {
	path := writeSource(t, "bad.zov", "server {\n    port = 8080 / 0;\n}\n")

	_, errOut, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
	assert.Contains(t, errOut, path+":2:")
	assert.Contains(t, errOut, "port = 8080 / 0")
	assert.Contains(t, errOut, "^")
}

func TestCheckCaretNonASCII(t *testing.T) {
	path := writeSource(t, "bad.zov", "сервер {\n    порт = 8080 / 0;\n}\n")

	_, errOut, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "порт = 8080 / 0;")
	// The '/' sits at rune column 16, so the caret pads with 16 spaces even
	// though the line holds multi-byte identifiers.
	assert.Contains(t, errOut, "\n    "+strings.Repeat(" ", 16)+"^")
}

func TestCheckOK(t *testing.T) {
	good := writeSource(t, "good.zov", "a {\n    b = 1;\n}\n")
	out, _, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zov")
}

func TestHelpTopic(t *testing.T) {
	out, _, err := execute(t, "help", "language")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration language")
}

func TestHelpTopicsIndex(t *testing.T) {
	out, _, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "language")
	assert.Contains(t, out, "setup")
}

func TestTopicsCmd(t *testing.T) {
	out, _, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "language")

	out, _, err = execute(t, "topics", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")

	_, _, err = execute(t, "topics", "nope")
	assert.Error(t, err)
}

func TestSetupInstallRequiresWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("only meaningful off windows")
	}
	_, _, err := execute(t, "setup", "install")
	assert.Error(t, err)
}

func TestSetupInstallDryRun(t *testing.T) {
	t.Setenv("LOCALAPPDATA", filepath.Join(t.TempDir(), "AppData", "Local"))
	t.Setenv("APPDATA", filepath.Join(t.TempDir(), "AppData", "Roaming"))

	out, _, err := execute(t, "setup", "install", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "deploy:")
	assert.Contains(t, out, "path:")
	assert.Contains(t, out, "No changes were made")
}

func TestSetupPathBadScope(t *testing.T) {
	_, _, err := execute(t, "setup", "path", "/opt/tools", "--scope", "galaxy")
	assert.Error(t, err)
}

func TestNoCommandShowsHelp(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}
