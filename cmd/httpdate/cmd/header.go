package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpdate/header"
	"github.com/zostay/go-httpdate/header/field"
)

var headerCmd = &cobra.Command{
	Use:   "header [file]",
	Short: "print the date fields of a raw header in IMF-fixdate format",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunHeader,
}

func init() {
	rootCmd.AddCommand(headerCmd)
}

// parseInput reads and parses the raw header named by args.
func parseInput(cmd *cobra.Command, args []string) ([]byte, *header.Header, error) {
	raw, err := openInput(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	h, err := header.Parse(raw, header.DetectBreak(raw))
	if err != nil {
		var badStart *field.BadStartError
		if !errors.As(err, &badStart) {
			return nil, nil, err
		}
		logger.Info().Bytes("skipped", badStart.BadStart).Msg("skipped text before the header")
	}

	return raw, h, nil
}

func RunHeader(cmd *cobra.Command, args []string) error {
	_, h, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	failed := false
	for _, name := range cfg.Fields {
		for _, f := range h.GetAllFieldsNamed(name) {
			d, err := readDate(h, name)
			if err != nil {
				logger.Error().Str("field", f.Name()).Err(err).Msg("invalid date field")
				failed = true
				break
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Name(), d)
		}
	}

	if failed {
		return errSomeFailed
	}
	return nil
}
