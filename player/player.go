// Package player runs an external audio player as a child process and
// tracks the current playback position by parsing its status output.
package player

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// command is the external player binary. It must print carriage-return
// terminated status lines while playing; that is where positions come from.
var command = "mplayer"

// An ExitError reports a player process that terminated with a nonzero
// status, which means playback failed rather than finished.
type ExitError struct {
	Code   int    // the process exit code, or -1 if it cannot be determined
	Stderr string // everything the player wrote to its error stream
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with %d.\n\n%s", command, e.Code, e.Stderr)
}

// A Player owns one playback process. Position and Playing may be read from
// any goroutine while the process runs; the background loop is their only
// writer.
type Player struct {
	cmd    *exec.Cmd
	stdinW *os.File
	stderr bytes.Buffer

	mu       sync.Mutex
	position float64
	playing  bool
	err      error

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Start begins playing the audio file at path and follows the player's
// status stream in the background. The returned Player is already playing;
// its position advances as status updates arrive.
func Start(path string) (*Player, error) {
	p := &Player{
		playing: true,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	p.cmd = exec.Command(command, path)
	p.cmd.Stderr = &p.stderr

	// The player reads keyboard commands from its stdin. Hand it a pipe
	// that stays open for the whole session so it never sees end-of-input,
	// leaving the real stdin free for the prompt loop.
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("start %s: %v", command, err)
	}
	p.cmd.Stdin = stdinR
	p.stdinW = stdinW

	stdout, err := p.cmd.StdoutPipe()
	if err != nil {
		stdinR.Close()
		stdinW.Close()
		return nil, fmt.Errorf("start %s: %v", command, err)
	}
	if err := p.cmd.Start(); err != nil {
		stdinR.Close()
		stdinW.Close()
		return nil, fmt.Errorf("start %s: %v", command, err)
	}
	stdinR.Close() // the child holds its own copy now

	go p.consume(stdout)
	return p, nil
}

// consume follows the status stream until it ends, reaps the process, and
// publishes the final state. It is the only writer of position, playing,
// and err.
func (p *Player) consume(stdout io.Reader) {
	defer close(p.done)
	defer p.stdinW.Close()

	scanErr := scanStatus(stdout, p.setPosition)
	waitErr := p.cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false

	select {
	case <-p.stop:
		// Killed on request; the exit status of a killed player is not an
		// error.
		return
	default:
	}
	switch {
	case waitErr != nil:
		code := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code = exitErr.ExitCode()
		}
		p.err = &ExitError{Code: code, Stderr: p.stderr.String()}
	case scanErr != nil:
		p.err = fmt.Errorf("read %s status: %v", command, scanErr)
	}
}

func (p *Player) setPosition(seconds float64) {
	p.mu.Lock()
	p.position = seconds
	p.mu.Unlock()
}

// Position returns the most recently reported playback position, in seconds
// from the start of the file. It is zero until the first status update.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Playing reports whether the player process is still running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Err returns the reason playback failed, or nil if it finished or was
// stopped. A nonzero player exit is returned as an *ExitError. Err is only
// meaningful once Playing reports false.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Stop kills the player if it is still running and blocks until the
// background loop has shut down. It is safe to call from any goroutine and
// more than once, including after playback already ended on its own.
func (p *Player) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		if p.cmd.Process != nil {
			p.cmd.Process.Kill()
		}
	})
	<-p.done
}
