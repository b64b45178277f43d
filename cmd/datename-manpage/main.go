package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/datename/cmd/datename"
	"github.com/arthur-debert/datename/internal/version"
)

func main() {
	rootCmd := datename.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DATENAME",
		Section: "1",
		Source:  "datename " + version.Info(),
		Manual:  "datename manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
