// Package tools probes for the external programs cutaudio shells out to.
package tools

import "os/exec"

// A Result is the outcome of looking up one external tool.
type Result struct {
	Name string
	Path string // resolved location when found
	Err  error  // lookup failure when missing
}

// Found reports whether the tool resolved to an executable.
func (r Result) Found() bool { return r.Err == nil }

// Check looks up each named tool on PATH and returns one result per name,
// in the order given.
func Check(names ...string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		path, err := exec.LookPath(name)
		results = append(results, Result{Name: name, Path: path, Err: err})
	}
	return results
}

// Missing filters results down to the names that did not resolve.
func Missing(results []Result) []string {
	var missing []string
	for _, r := range results {
		if !r.Found() {
			missing = append(missing, r.Name)
		}
	}
	return missing
}
