package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cutaudio/cutlist"
	"cutaudio/meta"
)

var showCmd = &cobra.Command{
	Use:   "show <audio-or-cut-file>...",
	Short: "Print the segments recorded in a cut list",
	Long: `Print the segments recorded in each cut list, one line per segment with
its start, end, and name. Arguments may be the cut lists themselves or
the audio files they sit alongside.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShowCommand,
}

func runShowCommand(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		cutfile := arg
		if !strings.EqualFold(filepath.Ext(arg), ".cut") {
			cutfile = cutfileFor(arg)
		}
		source, err := cutlist.ReadHeader(cutfile)
		if err != nil {
			return err
		}
		cuts, err := cutlist.ParseFile(cutfile)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d segments of %s\n", cutfile, len(cuts), source)
		start := 0.0
		for i, cut := range cuts {
			fmt.Printf("%4d  %10.3f  %10.3f  %s\n", i+1, start, cut.End, cut.Name)
			start = cut.End
		}
		if info, err := meta.Probe(source); err == nil && info.Duration > 0 {
			remaining := info.Duration.Seconds() - start
			fmt.Printf("      source runs %s", info.Duration.Truncate(time.Second))
			if remaining > 1 {
				fmt.Printf(", %.0fs after the last cut are uncovered", remaining)
			}
			fmt.Println()
		}
	}
	return nil
}
