// Package cmd implements the httpdate command.
package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpdate/internal/config"
)

var (
	configPath string
	logLevel   string
	lenient    bool

	cfg    = config.Default()
	logger = zerolog.Nop()

	rootCmd = &cobra.Command{
		Use:               "httpdate",
		Short:             "Parse and normalize the dates found in HTTP headers",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides the configuration file)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "accept dates in formats other than HTTP dates")
}

// setup loads the configuration and prepares the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if cmd.Flags().Changed("lenient") {
		c.Lenient = lenient
	}

	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	cfg = c
	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	logger.Debug().
		Str("config", configPath).
		Strs("fields", cfg.Fields).
		Bool("lenient", cfg.Lenient).
		Msg("configured")

	return nil
}

// Execute runs the httpdate command.
func Execute() error {
	return rootCmd.Execute()
}

// openInput opens the named file, or stdin when no name is given.
func openInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
