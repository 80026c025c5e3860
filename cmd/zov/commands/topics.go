package commands

import (
	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/pkg/cobrax/topics"
	"github.com/zov-lang/zov/pkg/errors"
)

func newTopicsCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [name]",
		Short: MsgTopicsShort,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return manager.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Println("Available help topics:")
				for _, name := range manager.List() {
					cmd.Printf("  %s\n", name)
				}
				return nil
			}
			topic, ok := manager.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown topic %q", args[0])
			}
			cmd.Print(manager.Render(topic))
			return nil
		},
	}
}
