package boson

import "os"

// StderrWriter is the interface for writing diagnostics
type StderrWriter interface {
	Write([]byte) (int, error)
}

// StdoutWriter is the interface for writing regular output
type StdoutWriter interface {
	Write([]byte) (int, error)
}

var stderrWriter StderrWriter = os.Stderr
var stdoutWriter StdoutWriter = os.Stdout

// SetStderrWriter allows overriding the stderr writer for testing or custom output
func SetStderrWriter(writer StderrWriter) {
	stderrWriter = writer
}

// SetStdoutWriter allows overriding the stdout writer for testing or custom output
func SetStdoutWriter(writer StdoutWriter) {
	stdoutWriter = writer
}
