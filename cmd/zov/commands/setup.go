package commands

import (
	"os"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/pkg/envpath"
	"github.com/zov-lang/zov/pkg/errors"
	"github.com/zov-lang/zov/pkg/install"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: MsgSetupShort,
	}
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newPathCmd())
	return cmd
}

func newInstallCmd() *cobra.Command {
	var (
		manifestPath string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runtime.GOOS != "windows" && !dryRun {
				return errors.New(errors.ErrUnsupported, "setup install is only supported on windows")
			}

			manifest, err := install.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			exe, err := os.Executable()
			if err != nil {
				return errors.Wrap(err, errors.ErrDeploy, "locate running executable")
			}

			inst := install.NewInstaller(manifest, install.WithDryRun(dryRun))
			result, err := inst.Run(cmd.Context(), exe)
			if err != nil {
				return err
			}

			if dryRun {
				for _, step := range result.Steps {
					cmd.Printf("  %s: %s\n", step.Name, step.Detail)
				}
				cmd.Println(MsgDryRunNotice)
				return nil
			}

			for _, warning := range result.Warnings {
				cmd.PrintErrln(pterm.Warning.Sprint(warning))
			}
			cmd.Println(pterm.Success.Sprintf(MsgInstallDone, manifest.Product, result.Layout.BinDir))
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", MsgFlagManifest)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newPathCmd() *cobra.Command {
	var (
		scopeName string
		remove    bool
	)

	cmd := &cobra.Command{
		Use:   "path <dir>",
		Short: MsgPathShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, ok := envpath.ParseScope(scopeName)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown scope %q (want user or machine)", scopeName)
			}

			registrar := envpath.NewRegistrar(envpath.NewRegistryStore(scope))
			dir := args[0]

			if remove {
				changed, err := registrar.Remove(dir)
				if err != nil {
					return err
				}
				if changed {
					cmd.Println(pterm.Success.Sprintf(MsgPathRemoved, dir, scope))
				} else {
					cmd.Printf(MsgPathNotFound+"\n", dir, scope)
				}
				return nil
			}

			changed, err := registrar.Ensure(dir)
			if err != nil {
				return err
			}
			if changed {
				cmd.Println(pterm.Success.Sprintf(MsgPathAdded, dir, scope))
			} else {
				cmd.Printf(MsgPathPresent+"\n", dir, scope)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scopeName, "scope", "user", MsgFlagScope)
	cmd.Flags().BoolVar(&remove, "remove", false, MsgFlagRemove)
	return cmd
}
