package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cutaudio/cutlist"
	"cutaudio/session"
	"cutaudio/splitter"
)

var (
	overwrite    bool
	outExtension string
)

var rootCmd = &cobra.Command{
	Use:   "cutaudio <audio-file>...",
	Short: "Cut an audio file into small pieces with nice names",
	Long: `Cutaudio plays an audio file, records named cut points as you listen, and
then cuts the file into one piece per name.

For each audio file that is passed:

1. If a cut list does not exist alongside the file, play it and prompt
   for segment names. Each name marks the end of a segment at the moment
   it is entered, and is saved to the cut list immediately.
2. If an output directory does not exist alongside the file, cut the
   audio at the recorded boundaries and fill the directory with one
   piece per segment.

Step 1 depends on mplayer and step 2 depends on sox.

Cut lists are plain text and can be edited by hand before splitting: the
first line names the source audio file, and every other line is the time
at which a segment ends, in seconds, a space, and the segment name.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRootCommand,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "w", false, "re-record the cut list even if it exists")
	rootCmd.Flags().StringVarP(&outExtension, "extension", "e", "", "extension (and format) of output files, defaults to the input's")

	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(toolsCmd)
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	if err := requireTools("sox", "mplayer"); err != nil {
		return err
	}
	if err := requireFiles(args); err != nil {
		return err
	}
	for _, infile := range args {
		if err := processFile(infile); err != nil {
			return err
		}
	}
	return nil
}

// processFile runs both halves of the pipeline for one input, skipping
// whichever half already has its artifact on disk.
func processFile(infile string) error {
	outdir := outdirFor(infile)
	cutfile := cutfileFor(infile)

	if overwrite || !isFile(cutfile) {
		if err := session.Record(infile, cutfile, session.Options{}); err != nil {
			return err
		}
		fmt.Printf("Saved cut list: %s\n", cutfile)
	}

	if !isDir(outdir) {
		cuts, err := cutlist.ParseFile(cutfile)
		if err != nil {
			// A malformed cut list stops this file only; the rest of the
			// run continues so the list can be fixed by hand afterwards.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		if err := splitter.Split(infile, cuts, outdir, extensionFor(infile, outExtension)); err != nil {
			return err
		}
		fmt.Printf("Split '%s' into %d segments in '%s'\n", infile, len(cuts), outdir)
	}
	return nil
}
