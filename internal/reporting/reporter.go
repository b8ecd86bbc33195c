// Package reporting prints human-readable progress lines for commands.
package reporting

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter emits formatted progress events to an underlying sink.
type Reporter interface {
	Printf(format string, args ...any)
}

type flusher interface {
	Flush() error
}

type writerReporter struct {
	writer io.Writer
	mutex  *sync.Mutex
}

// NewWriterReporter constructs a Reporter that writes to the provided io.Writer.
// A nil writer falls back to standard output. Buffered writers are flushed after
// every event so progress lines appear while a batch is still running.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return writerReporter{writer: writer, mutex: &sync.Mutex{}}
}

func (reporter writerReporter) Printf(format string, args ...any) {
	if reporter.writer == nil {
		return
	}

	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()

	if _, writeError := fmt.Fprintf(reporter.writer, format, args...); writeError != nil {
		return
	}
	if bufferedWriter, buffered := reporter.writer.(flusher); buffered {
		_ = bufferedWriter.Flush()
	}
}

type discardReporter struct{}

// NewDiscardReporter constructs a Reporter that drops every event.
func NewDiscardReporter() Reporter {
	return discardReporter{}
}

func (discardReporter) Printf(string, ...any) {}
