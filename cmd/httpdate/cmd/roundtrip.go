package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "show the diff made by normalizing the date fields of a raw header",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunRoundtrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

func RunRoundtrip(cmd *cobra.Command, args []string) error {
	raw, h, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	changed, skipped := normalizeDates(h)
	logger.Info().Int("changed", changed).Msg("normalized date fields")

	writeDiff(cmd.OutOrStdout(), string(raw), h.String())

	if skipped {
		return errSomeFailed
	}
	return nil
}

// writeDiff writes a line diff of a and b with -, +, and space prefixes.
func writeDiff(w io.Writer, a, b string) {
	dmp := diffmatchpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintln(w, prefix+strings.TrimRight(line, "\r\n"))
		}
	}
}
