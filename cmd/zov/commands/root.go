// Package commands assembles the zov command tree.
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/internal/version"
	"github.com/zov-lang/zov/pkg/cobrax/topics"
	"github.com/zov-lang/zov/pkg/help"
	"github.com/zov-lang/zov/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "zov",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// The topic-aware help command replaces the default one below.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newAstCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newVersionCmd())

	manager, err := topics.NewManager(help.Topics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err == nil {
		rootCmd.AddCommand(newTopicsCmd(manager))
		manager.Attach(rootCmd)
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("zov %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
