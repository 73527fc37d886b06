package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cutaudio/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Check that the required external tools are installed",
	Long: `Look up the external programs cutaudio depends on and print where each
one was found. mplayer is needed to record cut lists and sox to split.`,
	Args: cobra.NoArgs,
	RunE: runToolsCommand,
}

func runToolsCommand(cmd *cobra.Command, args []string) error {
	results := tools.Check("mplayer", "sox")
	for _, r := range results {
		if r.Found() {
			fmt.Printf("%-8s %s\n", r.Name, r.Path)
		} else {
			fmt.Printf("%-8s missing\n", r.Name)
		}
	}
	if missing := tools.Missing(results); len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}
