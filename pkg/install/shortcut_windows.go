//go:build windows

package install

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/zov-lang/zov/pkg/errors"
)

// CreateShortcut creates a .lnk at linkPath pointing to targetPath, going
// through PowerShell's WScript.Shell COM object so no COM bindings are
// needed in-process.
func CreateShortcut(linkPath, targetPath, workDir string) error {
	script := fmt.Sprintf(`
$WshShell = New-Object -comObject WScript.Shell
$Shortcut = $WshShell.CreateShortcut(%s)
$Shortcut.TargetPath = %s
$Shortcut.WorkingDirectory = %s
$Shortcut.Save()`,
		psQuote(linkPath), psQuote(targetPath), psQuote(workDir))

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, errors.ErrShortcut, "create shortcut %s: %s", linkPath, strings.TrimSpace(string(out)))
	}
	return nil
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
