//go:build !windows

package install

import (
	"github.com/zov-lang/zov/pkg/errors"
)

// CreateShortcut is only meaningful on Windows.
func CreateShortcut(linkPath, targetPath, workDir string) error {
	return errors.New(errors.ErrUnsupported, "start-menu shortcuts are only available on windows")
}
