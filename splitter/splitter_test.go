package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutaudio/cutlist"
)

// fakeTrim swaps sox for a shell script. The script sees the same argv sox
// would: infile, output template, then the trim effect and its boundaries.
func fakeTrim(t *testing.T, script string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trim.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake trim tool: %v", err)
	}
	prev := command
	command = path
	t.Cleanup(func() { command = prev })
}

func TestTrimArgs(t *testing.T) {
	cuts := []cutlist.Cut{
		{End: 1, Name: "intro"},
		{End: 2.5, Name: "verse"},
	}
	got := strings.Join(trimArgs(cuts), " ")
	want := "0 1.0 : newfile 2.5 : newfile"
	if got != want {
		t.Errorf("trimArgs = %q, want %q", got, want)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{2.5, "2.5"},
		{12.34, "12.34"},
		{154.32, "154.32"},
		{90, "90.0"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpliceName(t *testing.T) {
	tests := []struct {
		fragment string
		name     string
		want     string
	}{
		{"001.mp3", "intro", "001-intro.mp3"},
		{"002.mp3", "first verse", "002-first verse.mp3"},
		{"003", "tail", "003-tail"},
		{"part.one.wav", "x", "part.one-x.wav"},
	}
	for _, tt := range tests {
		if got := spliceName(tt.fragment, tt.name); got != tt.want {
			t.Errorf("spliceName(%q, %q) = %q, want %q", tt.fragment, tt.name, got, tt.want)
		}
	}
}

func TestRedistribute(t *testing.T) {
	tmp := t.TempDir()
	outdir := filepath.Join(t.TempDir(), "song")
	for name, content := range map[string]string{
		"001.mp3": "first",
		"002.mp3": "second",
	} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fragment: %v", err)
		}
	}
	cuts := []cutlist.Cut{
		{End: 1, Name: "intro"},
		{End: 2, Name: "verse"},
	}

	if err := redistribute(tmp, outdir, cuts); err != nil {
		t.Fatalf("redistribute: %v", err)
	}

	for name, content := range map[string]string{
		"001-intro.mp3": "first",
		"002-verse.mp3": "second",
	} {
		data, err := os.ReadFile(filepath.Join(outdir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
	left, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("read scratch dir: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d fragments left behind in the scratch directory", len(left))
	}
}

func TestSplitRequiresCuts(t *testing.T) {
	err := Split("song.mp3", nil, filepath.Join(t.TempDir(), "song"), ".mp3")
	if err == nil {
		t.Fatal("Split succeeded with no cuts")
	}
	if !strings.Contains(err.Error(), "no segments") {
		t.Errorf("error = %q, want it to say the cut list has no segments", err)
	}
}

func TestSplit(t *testing.T) {
	fakeTrim(t, `dir=$(dirname "$2")
ext=$(basename "$2")
printf 'one' > "$dir/001$ext"
printf 'two' > "$dir/002$ext"
`)
	parent := t.TempDir()
	outdir := filepath.Join(parent, "song")
	cuts := []cutlist.Cut{
		{End: 1.5, Name: "intro"},
		{End: 9, Name: "rest"},
	}

	if err := Split("song.mp3", cuts, outdir, ".mp3"); err != nil {
		t.Fatalf("Split: %v", err)
	}

	for name, content := range map[string]string{
		"001-intro.mp3": "one",
		"002-rest.mp3":  "two",
	} {
		data, err := os.ReadFile(filepath.Join(outdir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("read parent dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "song" {
		t.Errorf("parent dir entries = %v, want only the output directory", entries)
	}
}

func TestSplitReportsToolFailure(t *testing.T) {
	fakeTrim(t, "echo 'cannot open input' >&2\nexit 2\n")
	outdir := filepath.Join(t.TempDir(), "song")
	cuts := []cutlist.Cut{{End: 1, Name: "intro"}}

	err := Split("missing file.mp3", cuts, outdir, ".mp3")
	if err == nil {
		t.Fatal("Split succeeded although the trim tool failed")
	}
	msg := err.Error()
	if !strings.Contains(msg, "$ ") {
		t.Errorf("error %q does not echo the command line", msg)
	}
	if !strings.Contains(msg, "'missing file.mp3'") {
		t.Errorf("error %q does not quote the argument with a space", msg)
	}
	if !strings.Contains(msg, "cannot open input") {
		t.Errorf("error %q does not include the tool output", msg)
	}
	if _, statErr := os.Stat(outdir); !os.IsNotExist(statErr) {
		t.Errorf("output directory exists after a failed split")
	}
}

func TestShellJoin(t *testing.T) {
	got := shellJoin([]string{"sox", "my file.mp3", "/tmp/x/.mp3", "trim", "0", "1.5", ":", "newfile"})
	want := `sox 'my file.mp3' /tmp/x/.mp3 trim 0 1.5 : newfile`
	if got != want {
		t.Errorf("shellJoin = %q, want %q", got, want)
	}
	if q := shellQuote("it's"); q != `'it'\''s'` {
		t.Errorf("shellQuote = %q", q)
	}
}
