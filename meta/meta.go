// Package meta extracts descriptive metadata from audio files so sessions
// can announce what is playing.
package meta

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"
)

// Info describes an audio file. Zero fields mean the information was not
// available; a probe never fails the caller over missing tags.
type Info struct {
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// String renders the info on one line for terminal display. It is empty
// when nothing useful is known.
func (i Info) String() string {
	var b strings.Builder
	switch {
	case i.Title != "" && i.Artist != "":
		fmt.Fprintf(&b, "%s - %s", i.Title, i.Artist)
	case i.Title != "":
		b.WriteString(i.Title)
	case i.Artist != "":
		b.WriteString(i.Artist)
	}
	if i.Album != "" && b.Len() > 0 {
		fmt.Fprintf(&b, " [%s]", i.Album)
	}
	if i.Duration > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%s)", i.Duration.Truncate(time.Second))
	}
	return b.String()
}

// Probe reads whatever metadata the file at path carries. Tags and duration
// are both best effort: untagged or unrecognized files yield zero fields
// and no error. Only a file that cannot be opened is an error.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	var info Info
	if m, err := tag.ReadFrom(f); err == nil {
		info.Title = m.Title()
		info.Artist = m.Artist()
		info.Album = m.Album()
	}
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if d, err := mp3Duration(path); err == nil {
			info.Duration = d
		}
	}
	return info, nil
}

// mp3Duration sums the duration of every frame in the file. MP3 carries no
// length header, so the whole stream has to be walked.
func mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var total time.Duration
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}
	return total, nil
}
