// Package splitter cuts an audio file into segment files by handing the
// whole boundary list to sox in a single invocation.
package splitter

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"cutaudio/cutlist"
)

// command is the external trim tool.
var command = "sox"

// Split cuts infile at the recorded boundaries and fills outdir with one
// file per cut. sox numbers the fragments it produces; each segment name is
// spliced into its fragment's file name before the extension, so the pieces
// sort in playback order. ext is the output extension including the leading
// dot and decides the output format.
func Split(infile string, cuts []cutlist.Cut, outdir, ext string) error {
	if len(cuts) == 0 {
		return fmt.Errorf("%s: cut list has no segments", infile)
	}

	// Fragments land in a scratch directory beside the final one so the
	// moves below stay on one filesystem.
	tmp, err := os.MkdirTemp(filepath.Dir(outdir), ".cutaudio-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	// sox inserts a sequence number into the output name at each newfile
	// boundary, so a bare-extension template yields 001<ext>, 002<ext>...
	args := append([]string{infile, filepath.Join(tmp, ext), "trim"}, trimArgs(cuts)...)
	cmd := exec.Command(command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %v\n$ %s\n%s", command, err, shellJoin(cmd.Args), output)
	}

	return redistribute(tmp, outdir, cuts)
}

// trimArgs builds the boundary list for the sox trim effect: playback
// starts at zero and a ": newfile" directive follows every segment end, so
// n cuts produce n fragments.
func trimArgs(cuts []cutlist.Cut) []string {
	args := make([]string, 0, 1+3*len(cuts))
	args = append(args, "0")
	for _, cut := range cuts {
		args = append(args, formatSeconds(cut.End), ":", "newfile")
	}
	return args
}

// formatSeconds renders seconds in the shortest decimal form that still
// reads as a float, so 1 becomes "1.0" and 2.5 stays "2.5".
func formatSeconds(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// redistribute moves the fragments out of the scratch directory into
// outdir, pairing fragments with cuts in sorted order.
func redistribute(tmp, outdir string, cuts []cutlist.Cut) error {
	entries, err := os.ReadDir(tmp)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return err
	}
	for i, cut := range cuts {
		if i >= len(entries) {
			break
		}
		fragment := entries[i].Name()
		from := filepath.Join(tmp, fragment)
		to := filepath.Join(outdir, spliceName(fragment, cut.Name))
		if err := os.Rename(from, to); err != nil {
			return err
		}
	}
	return nil
}

// spliceName inserts a segment name into a fragment file name just before
// the extension: 001.mp3 and "intro" give 001-intro.mp3.
func spliceName(fragment, name string) string {
	ext := filepath.Ext(fragment)
	return strings.TrimSuffix(fragment, ext) + "-" + name + ext
}

// shellJoin renders an argv the way it would be typed at a shell, quoting
// anything the shell would mangle, for error reporting.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$&|;<>()`*?[]#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
