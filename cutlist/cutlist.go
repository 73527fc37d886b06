// Package cutlist reads and writes cut-list files: plain-text descriptions
// of where one audio file should be cut and what each piece is called.
//
// A cut list starts with a header line naming the source audio file. Every
// other non-blank line is one segment record: the time at which the segment
// ends, in seconds, a single space, and the segment name. Records are
// indented so the file is easy to scan by eye, and the parser ignores the
// indentation, so the files can be edited by hand.
package cutlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// linePattern matches one segment record after leading whitespace has been
// stripped: seconds, one space, name. Names may not contain '/' because
// they end up in file names.
var linePattern = regexp.MustCompile(`^([0-9.]+) ([^/]+)$`)

// Cut marks the end of one named segment, in seconds from the start of the
// source audio file. Segments are contiguous: each one begins where the
// previous one ended, and the first begins at zero.
type Cut struct {
	End  float64
	Name string
}

// ErrInvalidName reports a segment name the file format cannot represent.
var ErrInvalidName = errors.New("invalid segment name")

// ErrInvalidTime reports a segment end time the file format cannot
// represent.
var ErrInvalidTime = errors.New("invalid segment end time")

// ErrInvalidLine reports a cut-list line that does not match the record
// format.
var ErrInvalidLine = errors.New("invalid cut list line")

// ValidName reports whether name can be stored in a cut list. Names become
// part of output file names and live on a single record line, so they may
// not be empty, contain '/', or contain line breaks.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "/\n\r")
}

// A Writer appends records to an open cut-list file, flushing after every
// write so that an interrupted session keeps every segment that was fully
// named.
type Writer struct {
	f *os.File
}

// NewWriter returns a Writer that appends to f. The caller keeps ownership
// of f and closes it when the session is over.
func NewWriter(f *os.File) *Writer {
	return &Writer{f: f}
}

// WriteHeader records the source audio path as the first line of the file.
func (w *Writer) WriteHeader(path string) error {
	if _, err := fmt.Fprintf(w.f, "%s\n", path); err != nil {
		return fmt.Errorf("write cut list header: %v", err)
	}
	return w.f.Sync()
}

// Append writes one segment record and flushes it to disk. Records that
// cannot round-trip through Parse, whether because of the name or the end
// time, are rejected and nothing is written.
func (w *Writer) Append(cut Cut) error {
	if !ValidName(cut.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, cut.Name)
	}
	if cut.End < 0 || math.IsNaN(cut.End) || math.IsInf(cut.End, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTime, cut.End)
	}
	if _, err := fmt.Fprintf(w.f, "  %f %s\n", cut.End, cut.Name); err != nil {
		return fmt.Errorf("write cut list record: %v", err)
	}
	return w.f.Sync()
}

// A LineError locates the first malformed line of a cut list.
type LineError struct {
	Line int    // 1-based line number within the file
	Text string // the offending line, as read
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrInvalidLine, e.Text)
}

func (e *LineError) Unwrap() error { return ErrInvalidLine }

// Parse reads a whole cut list and returns its records in file order. The
// first line is the header and is never treated as a record, blank lines
// are skipped, and the first malformed line aborts the parse with a
// *LineError.
func Parse(r io.Reader) ([]Cut, error) {
	scanner := bufio.NewScanner(r)
	var cuts []Cut
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			// Header: the source audio path. It is skipped by position, not
			// by shape, so a path that happens to look like a record never
			// becomes one.
			continue
		}
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, &LineError{Line: line, Text: text}
		}
		end, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, &LineError{Line: line, Text: text}
		}
		cuts = append(cuts, Cut{End: end, Name: m[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cut list: %v", err)
	}
	return cuts, nil
}

// ParseFile parses the cut list at path.
func ParseFile(path string) ([]Cut, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cuts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cuts, nil
}

// ReadHeader returns the first line of the cut list at path: the source
// audio file the cuts were recorded against.
func ReadHeader(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read cut list: %v", err)
		}
		return "", fmt.Errorf("%s: empty cut list", path)
	}
	return scanner.Text(), nil
}
