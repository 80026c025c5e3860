package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/pkg/lang"
	"github.com/zov-lang/zov/pkg/output"
)

func newBuildCmd() *cobra.Command {
	var (
		formatName string
		outPath    string
		decimal    bool
	)

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: MsgBuildShort,
		Long:  MsgBuildLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}

			doc, err := lang.ParseFile(args[0])
			if err != nil {
				return err
			}

			var opts []lang.Option
			if decimal {
				opts = append(opts, lang.WithDecimal())
			}
			in := lang.NewInterpreter(opts...)
			if err := in.Eval(doc); err != nil {
				return err
			}

			tree, err := in.Document()
			if err != nil {
				return err
			}
			data, err := output.Encode(tree, format)
			if err != nil {
				return err
			}

			if outPath != "" {
				return os.WriteFile(outPath, data, 0644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "json", MsgFlagFormat)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&decimal, "decimal", false, MsgFlagDecimal)
	return cmd
}
