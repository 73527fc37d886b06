package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cutaudio/tools"
)

// outdirFor is the directory the pieces of infile land in: the input path
// with its extension dropped.
func outdirFor(infile string) string {
	return strings.TrimSuffix(infile, filepath.Ext(infile))
}

// cutfileFor is the cut-list path recorded for infile, alongside the
// original.
func cutfileFor(infile string) string {
	return outdirFor(infile) + ".cut"
}

// extensionFor picks the extension of output files: the override when one
// was given (leading dot optional), otherwise the input's own extension.
func extensionFor(infile, override string) string {
	if override != "" {
		return "." + strings.TrimLeft(override, ".")
	}
	return filepath.Ext(infile)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// requireTools stops a run before any processing when an external
// dependency is missing, naming every missing tool.
func requireTools(names ...string) error {
	missing := tools.Missing(tools.Check(names...))
	for _, name := range missing {
		fmt.Fprintf(os.Stderr, "You need to install %s.\n", name)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}

// requireFiles validates every input path up front so a bad argument late
// in the list cannot waste an interactive session on the ones before it.
func requireFiles(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("you must specify at least one input file")
	}
	bad := 0
	for _, p := range paths {
		if !isFile(p) {
			fmt.Fprintf(os.Stderr, "Not a file: %s\n", p)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d input path(s) are not files", bad)
	}
	return nil
}
