package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpdate"
)

var (
	parseCmd = &cobra.Command{
		Use:   "parse <date>...",
		Short: "print each date in IMF-fixdate format",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunParse,
	}

	nowCmd = &cobra.Command{
		Use:   "now",
		Short: "print the current time in IMF-fixdate format",
		Args:  cobra.NoArgs,
		RunE:  RunNow,
	}

	compareCmd = &cobra.Command{
		Use:   "compare <date> <date>",
		Short: "print -1, 0, or 1 as the first date is before, equal to, or after the second",
		Args:  cobra.ExactArgs(2),
		RunE:  RunCompare,
	}
)

// errSomeFailed is returned when the command ran to the end, but not every
// input could be handled. The details have already been logged.
var errSomeFailed = errors.New("some dates could not be parsed")

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(compareCmd)
}

func RunParse(cmd *cobra.Command, args []string) error {
	failed := false
	for _, arg := range args {
		d, err := httpdate.Parse(arg)
		if err != nil {
			logger.Error().Err(err).Msg("parse failed")
			failed = true
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), d)
	}

	if failed {
		return errSomeFailed
	}
	return nil
}

func RunNow(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), httpdate.Now())
	return nil
}

func RunCompare(cmd *cobra.Command, args []string) error {
	a, err := httpdate.Parse(args[0])
	if err != nil {
		return err
	}

	b, err := httpdate.Parse(args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
	return nil
}
