package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutaudio/session"
)

var markCmd = &cobra.Command{
	Use:   "mark <audio-file>...",
	Short: "Record a cut list by naming segments during playback",
	Long: `Play each audio file with mplayer and record one cut point per line of
input: type the name of the segment that is playing and hit enter the
moment it ends. The cut list is written alongside the input file and can
be edited by hand before splitting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMarkCommand,
}

func init() {
	markCmd.Flags().BoolVarP(&overwrite, "overwrite", "w", false, "re-record the cut list even if it exists")
}

func runMarkCommand(cmd *cobra.Command, args []string) error {
	if err := requireTools("mplayer"); err != nil {
		return err
	}
	if err := requireFiles(args); err != nil {
		return err
	}
	for _, infile := range args {
		cutfile := cutfileFor(infile)
		if !overwrite && isFile(cutfile) {
			fmt.Printf("Cut list already exists: %s\n", cutfile)
			continue
		}
		if err := session.Record(infile, cutfile, session.Options{}); err != nil {
			return err
		}
		fmt.Printf("Saved cut list: %s\n", cutfile)
	}
	return nil
}
