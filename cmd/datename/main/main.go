package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/datename/cmd/datename"
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/output"
	"github.com/arthur-debert/datename/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := datename.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Print the error in red on a terminal
	msg := fmt.Sprintf("Error: %v", err)
	if output.IsTerminal(os.Stderr) {
		set := styles.Embedded().Build(lipgloss.NewRenderer(os.Stderr))
		msg = set.Render(styles.Error, msg)
	}
	fmt.Fprintln(os.Stderr, msg)

	if errors.IsErrorCode(err, errors.ErrUsage) {
		fmt.Fprintln(os.Stderr, datename.MsgUsageHint)
	}
	os.Exit(errors.ExitCode(err))
}
