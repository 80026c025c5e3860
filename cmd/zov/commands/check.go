package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zov-lang/zov/pkg/errors"
	"github.com/zov-lang/zov/pkg/lang"
)

func newCheckCmd() *cobra.Command {
	var decimal bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := checkFile(path, decimal); err != nil {
					failed++
					cmd.PrintErrln(pterm.Error.Sprint(diagnose(path, err)))
					continue
				}
				cmd.Println(pterm.Success.Sprintf(MsgCheckOK, path))
			}
			if failed > 0 {
				return fmt.Errorf(MsgCheckProblems, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&decimal, "decimal", false, MsgFlagDecimal)
	return cmd
}

func checkFile(path string, decimal bool) error {
	doc, err := lang.ParseFile(path)
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
	_, err = in.Document()
	return err
}

// diagnose formats an error with the offending source line when the error
// carries a position.
func diagnose(path string, err error) string {
	details := errors.GetErrorDetails(err)
	line, lineOK := details["line"].(int)
	col, colOK := details["column"].(int)
	if !lineOK || !colOK {
		return fmt.Sprintf("%s: %v", path, err)
	}

	msg := fmt.Sprintf("%s:%d:%d: %v", path, line, col+1, err)
	src, readErr := os.ReadFile(path)
	if readErr != nil {
		return msg
	}
	lines := strings.Split(string(src), "\n")
	if line < 1 || line > len(lines) {
		return msg
	}

	srcLine := lines[line-1]
	// Columns are rune offsets; pad against runes so the caret stays under
	// the offending token on non-ASCII lines.
	caret := col
	if runes := len([]rune(srcLine)); caret > runes {
		caret = runes
	}
	return fmt.Sprintf("%s\n    %s\n    %s^", msg, srcLine, strings.Repeat(" ", caret))
}
