package install

import (
	"os"
	"path/filepath"

	"github.com/zov-lang/zov/pkg/envpath"
	"github.com/zov-lang/zov/pkg/errors"
)

// Layout is the set of filesystem locations an install run touches.
type Layout struct {
	Scope        envpath.Scope
	BinDir       string
	ExePath      string
	StartMenuDir string
	ShortcutPath string
}

// ResolveLayout maps a manifest onto concrete directories for the chosen
// scope. Machine scope uses the program-files and common start-menu trees;
// user scope stays inside the profile so no elevation is needed.
func ResolveLayout(m Manifest) (Layout, error) {
	scope, ok := envpath.ParseScope(m.Scope)
	if !ok {
		return Layout{}, errors.Newf(errors.ErrConfigParse, "unknown install scope %q (want user or machine)", m.Scope)
	}

	var binDir, menuDir string
	if scope == envpath.ScopeMachine {
		programFiles := os.Getenv("ProgramFiles")
		if programFiles == "" {
			return Layout{}, errors.New(errors.ErrConfigLoad, "ProgramFiles environment variable is not set")
		}
		binDir = filepath.Join(programFiles, m.Product)

		programData := os.Getenv("ProgramData")
		if programData != "" {
			menuDir = filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs", m.Product)
		}
	} else {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return Layout{}, errors.New(errors.ErrConfigLoad, "LOCALAPPDATA environment variable is not set")
		}
		binDir = filepath.Join(localAppData, m.Product)

		appData := os.Getenv("APPDATA")
		if appData != "" {
			menuDir = filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", m.Product)
		}
	}

	if m.InstallDir != "" {
		binDir = m.InstallDir
	}

	layout := Layout{
		Scope:        scope,
		BinDir:       binDir,
		ExePath:      filepath.Join(binDir, m.ExeName),
		StartMenuDir: menuDir,
	}
	if menuDir != "" {
		layout.ShortcutPath = filepath.Join(menuDir, m.Product+".lnk")
	}
	return layout, nil
}
