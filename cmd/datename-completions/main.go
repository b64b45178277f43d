package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/datename/cmd/datename"
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/spf13/cobra"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datename-completions <bash|zsh|fish|powershell>",
		Short:         "Write a datename completion script to stdout",
		ValidArgs:     shells,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
				return errors.Wrap(err, errors.ErrUsage, "expected one of bash, zsh, fish, powershell")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = root.GenBashCompletionV2(out, true)
			case "zsh":
				err = root.GenZshCompletion(out)
			case "fish":
				err = root.GenFishCompletion(out, true)
			case "powershell":
				err = root.GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, "invalid arguments")
	})
	return cmd
}

func main() {
	cmd := newCompletionsCmd(datename.NewRootCmd())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
