// Package session runs the interactive half of cutaudio: play an audio
// file, prompt for segment names, and append one cut-list record per name
// as it is entered.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cutaudio/cutlist"
	"cutaudio/meta"
	"cutaudio/player"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD")).Bold(true)
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF476F"))
)

const directions = `Name the present audio segment, then hit enter when the segment is over.
The audio segment specification will be saved in this file.

  %s

The session will end automatically when the file is done playing.
Press C^d to end early.`

// Options carries the streams a session talks to. Zero values mean the
// process streams.
type Options struct {
	In   io.Reader // segment names are read here
	Out  io.Writer // prompts
	ErrW io.Writer // directions and validation errors
}

func (o Options) input() io.Reader {
	if o.In != nil {
		return o.In
	}
	return os.Stdin
}

func (o Options) output() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o Options) errWriter() io.Writer {
	if o.ErrW != nil {
		return o.ErrW
	}
	return os.Stderr
}

// tracker is the playback side of a session: something that knows where
// playback is, whether it is still going, and how to end it.
type tracker interface {
	Position() float64
	Playing() bool
	Stop()
	Err() error
}

// Record plays audioPath and captures one segment boundary per line read
// from the session input. The cut list at cutPath is written incrementally,
// so a session that is interrupted keeps every segment that was fully
// named. Record returns once playback ends or the input is closed.
func Record(audioPath, cutPath string, opts Options) error {
	f, err := os.Create(cutPath)
	if err != nil {
		return fmt.Errorf("create cut list: %v", err)
	}
	defer f.Close()

	w := cutlist.NewWriter(f)
	if err := w.WriteHeader(audioPath); err != nil {
		return err
	}

	errw := opts.errWriter()
	if info, err := meta.Probe(audioPath); err == nil {
		if line := info.String(); line != "" {
			fmt.Fprintln(errw, trackStyle.Render("Playing: "+line))
		}
	}
	fmt.Fprintf(errw, "%s\n\n", bannerStyle.Render(fmt.Sprintf(directions, cutPath)))

	p, err := player.Start(audioPath)
	if err != nil {
		return err
	}
	return run(p, w, opts)
}

// run drives the prompt loop against an already-started player. Each
// accepted name is stamped with the playback position at the moment it was
// accepted. Invalid names are reported and re-prompted without writing
// anything.
func run(p tracker, w *cutlist.Writer, opts Options) error {
	in := bufio.NewScanner(opts.input())
	out := opts.output()
	errw := opts.errWriter()

	for p.Playing() {
		fmt.Fprint(out, promptStyle.Render("Segment name: "))
		if !in.Scan() {
			// End of input: the user is done naming segments.
			p.Stop()
			break
		}
		name := in.Text()
		switch {
		case strings.Contains(name, "/"):
			fmt.Fprintln(errw, errorStyle.Render(`Error: Name may not contain "/".`))
			continue
		case name == "":
			fmt.Fprintln(errw, errorStyle.Render("Error: Name may not be empty."))
			continue
		}
		if err := w.Append(cutlist.Cut{End: p.Position(), Name: name}); err != nil {
			p.Stop()
			return err
		}
	}
	if err := in.Err(); err != nil {
		p.Stop()
		return fmt.Errorf("read segment name: %v", err)
	}
	return p.Err()
}
