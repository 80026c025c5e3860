package install

import (
	"context"
	"fmt"

	"github.com/zov-lang/zov/pkg/envpath"
	"github.com/zov-lang/zov/pkg/logging"
)

// ShortcutFunc creates a shortcut at linkPath pointing at targetPath.
// Injectable so tests do not need PowerShell.
type ShortcutFunc func(linkPath, targetPath, workDir string) error

// Installer drives a full install run: deploy the executable, register the
// start-menu shortcut, then put the install directory on PATH.
type Installer struct {
	manifest Manifest
	deployer *Deployer
	store    envpath.Store
	shortcut ShortcutFunc
	dryRun   bool
}

// InstallerOption customizes an Installer.
type InstallerOption func(*Installer)

// WithDeployer overrides the payload deployer.
func WithDeployer(d *Deployer) InstallerOption {
	return func(i *Installer) { i.deployer = d }
}

// WithStore overrides the environment store used for PATH registration.
func WithStore(s envpath.Store) InstallerOption {
	return func(i *Installer) { i.store = s }
}

// WithShortcutFunc overrides the shortcut creator.
func WithShortcutFunc(fn ShortcutFunc) InstallerOption {
	return func(i *Installer) { i.shortcut = fn }
}

// WithDryRun makes Run report planned steps without touching the system.
func WithDryRun(dry bool) InstallerOption {
	return func(i *Installer) { i.dryRun = dry }
}

// NewInstaller creates an Installer for the given manifest.
func NewInstaller(manifest Manifest, opts ...InstallerOption) *Installer {
	inst := &Installer{
		manifest: manifest,
		deployer: NewDeployer(),
		shortcut: CreateShortcut,
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Step is one planned or executed install action.
type Step struct {
	Name   string
	Detail string
}

// Result reports what an install run did. Warnings are non-fatal problems
// that the caller must show to the user.
type Result struct {
	Layout      Layout
	Steps       []Step
	PathChanged bool
	Warnings    []string
}

// Run executes the install sequence for the executable at srcExe. A deploy
// failure aborts the run. Shortcut and PATH failures downgrade to warnings
// because the installed program still works without them.
func (i *Installer) Run(ctx context.Context, srcExe string) (*Result, error) {
	logger := logging.GetLogger("install")

	layout, err := ResolveLayout(i.manifest)
	if err != nil {
		return nil, err
	}
	result := &Result{Layout: layout}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Steps = append(result.Steps, Step{
		Name:   "deploy",
		Detail: fmt.Sprintf("copy %s to %s", srcExe, layout.ExePath),
	})
	if !i.dryRun {
		if err := i.deployer.Deploy(srcExe, layout.ExePath, layout.BinDir); err != nil {
			return nil, err
		}
	}

	if i.manifest.StartMenuShortcut && layout.ShortcutPath != "" {
		result.Steps = append(result.Steps, Step{
			Name:   "shortcut",
			Detail: fmt.Sprintf("create %s", layout.ShortcutPath),
		})
		if !i.dryRun {
			if err := i.deployer.fs.MkdirAll(layout.StartMenuDir, 0755); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("start-menu shortcut not created: %v", err))
			} else if err := i.shortcut(layout.ShortcutPath, layout.ExePath, layout.BinDir); err != nil {
				logger.Warn().Err(err).Msg("shortcut creation failed")
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("start-menu shortcut not created: %v", err))
			}
		}
	}

	if i.manifest.RegisterPath {
		result.Steps = append(result.Steps, Step{
			Name:   "path",
			Detail: fmt.Sprintf("add %s to the %s PATH", layout.BinDir, layout.Scope),
		})
		if !i.dryRun {
			store := i.store
			if store == nil {
				store = envpath.NewRegistryStore(layout.Scope)
			}
			changed, err := envpath.NewRegistrar(store).Ensure(layout.BinDir)
			if err != nil {
				logger.Warn().Err(err).Msg("PATH registration failed")
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("PATH not updated; add %s to your PATH manually: %v", layout.BinDir, err))
				return result, nil
			}
			result.PathChanged = changed
		}
	}

	return result, nil
}
