package commands

import (
	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/pkg/lang"
	"github.com/zov-lang/zov/pkg/output"
)

func newAstCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: MsgAstShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := lang.ParseFile(args[0])
			if err != nil {
				return err
			}
			color := output.ColorEnabled() && !noColor
			cmd.Println(output.RenderAST(doc, color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
