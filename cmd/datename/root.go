package datename

import (
	"fmt"

	"github.com/arthur-debert/datename/internal/version"
	"github.com/arthur-debert/datename/pkg/config"
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/filesystem"
	"github.com/arthur-debert/datename/pkg/logging"
	"github.com/arthur-debert/datename/pkg/output"
	"github.com/arthur-debert/datename/pkg/renamer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:     "datename",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			opts := loaded.LoggingOptions()
			opts.Console = cmd.ErrOrStderr()
			if err := logging.SetupLogger(opts); err != nil {
				return err
			}
			cfg = loaded
			log.Debug().
				Str("command", cmd.Name()).
				Str("configFile", cfg.File).
				Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := renamer.New(filesystem.NewOS(), output.NewReporter(cmd.OutOrStdout(), false))
			_, err := r.Run(renamer.Options{
				Directory: cfg.Directory,
				Simulate:  cfg.Simulate,
			})
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Persistent: `datename config` reports them too.
	rootCmd.PersistentFlags().StringP("directory", "d", config.DefaultDirectory, MsgFlagDirectory)
	rootCmd.PersistentFlags().BoolP("simulate", "s", false, MsgFlagSimulate)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, MsgErrInvalidArgs)
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(func() *config.Config { return cfg }))

	return rootCmd
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return errors.Wrap(err, errors.ErrUsage, MsgErrNoArgs).
			WithDetail("args", args)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Info())
			return err
		},
	}
}

func newConfigCmd(current func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current().TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
