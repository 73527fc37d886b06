package cmd

import "testing"

func TestDerivedPaths(t *testing.T) {
	tests := []struct {
		infile  string
		outdir  string
		cutfile string
	}{
		{"audio/song.mp3", "audio/song", "audio/song.cut"},
		{"song.flac", "song", "song.cut"},
		{"noext", "noext", "noext.cut"},
		{"dir.v2/take.1.wav", "dir.v2/take.1", "dir.v2/take.1.cut"},
	}
	for _, tt := range tests {
		if got := outdirFor(tt.infile); got != tt.outdir {
			t.Errorf("outdirFor(%q) = %q, want %q", tt.infile, got, tt.outdir)
		}
		if got := cutfileFor(tt.infile); got != tt.cutfile {
			t.Errorf("cutfileFor(%q) = %q, want %q", tt.infile, got, tt.cutfile)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		infile   string
		override string
		want     string
	}{
		{"song.mp3", "", ".mp3"},
		{"song.mp3", "ogg", ".ogg"},
		{"song.mp3", ".ogg", ".ogg"},
		{"noext", "wav", ".wav"},
		{"noext", "", ""},
	}
	for _, tt := range tests {
		if got := extensionFor(tt.infile, tt.override); got != tt.want {
			t.Errorf("extensionFor(%q, %q) = %q, want %q", tt.infile, tt.override, got, tt.want)
		}
	}
}
