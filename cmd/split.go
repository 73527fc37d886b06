package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cutaudio/cutlist"
	"cutaudio/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split <audio-file>...",
	Short: "Cut audio files at the boundaries in their cut lists",
	Long: `Cut each audio file at the boundaries recorded in its cut list, filling
a directory named after the file with one piece per segment. Files whose
output directory already exists are skipped, so a run can be repeated
after fixing one bad cut list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplitCommand,
}

func init() {
	splitCmd.Flags().StringVarP(&outExtension, "extension", "e", "", "extension (and format) of output files, defaults to the input's")
}

func runSplitCommand(cmd *cobra.Command, args []string) error {
	if err := requireTools("sox"); err != nil {
		return err
	}
	if err := requireFiles(args); err != nil {
		return err
	}
	for _, infile := range args {
		cutfile := cutfileFor(infile)
		if !isFile(cutfile) {
			return fmt.Errorf("no cut list for %s: expected %s, run \"cutaudio mark\" first", infile, cutfile)
		}
		outdir := outdirFor(infile)
		if isDir(outdir) {
			fmt.Printf("Output directory already exists: %s\n", outdir)
			continue
		}
		cuts, err := cutlist.ParseFile(cutfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := splitter.Split(infile, cuts, outdir, extensionFor(infile, outExtension)); err != nil {
			return err
		}
		fmt.Printf("Split '%s' into %d segments in '%s'\n", infile, len(cuts), outdir)
	}
	return nil
}
