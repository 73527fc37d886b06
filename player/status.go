package player

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

// statusPattern extracts the playback position from one mplayer status
// update: any prefix, then the first parenthesized decimal number, with the
// rest of that line after it. The suffix cannot cross a line break, so a
// buffer whose first parenthesized number sits in an earlier noise line
// fails the match and is discarded whole. A typical update looks like
//
//	A:   4.8 (04.7) of 300.0 (05:00.0)  0.4%
var statusPattern = regexp.MustCompile(`^[^(]+\(([0-9.]+).*$`)

// matchPosition extracts the position, in seconds, from one status buffer.
// Buffers with no parenthesized number, or a number that does not parse,
// are startup noise and report ok == false.
func matchPosition(buf []byte) (seconds float64, ok bool) {
	m := statusPattern.FindSubmatch(buf)
	if m == nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		return 0, false
	}
	return seconds, true
}

// scanStatus consumes a player status stream byte by byte. mplayer redraws
// its status line in place, ending every update with a carriage return, so
// bytes are buffered until each '\r' and the buffer is then matched and
// discarded. Bytes after the last carriage return never form an update.
// scanStatus returns once the stream is exhausted, which happens when the
// player exits or is killed.
func scanStatus(r io.Reader, update func(seconds float64)) error {
	br := bufio.NewReader(r)
	var buf []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if b != '\r' {
			buf = append(buf, b)
			continue
		}
		if seconds, ok := matchPosition(buf); ok {
			update(seconds)
		}
		buf = buf[:0]
	}
}
