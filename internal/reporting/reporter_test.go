package reporting_test

import (
	"bufio"
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/postlayout/internal/reporting"
)

func TestWriterReporterFlushesBufferedWriters(testInstance *testing.T) {
	var destination bytes.Buffer
	bufferedWriter := bufio.NewWriter(&destination)

	reporter := reporting.NewWriterReporter(bufferedWriter)
	reporter.Printf("Processing: %s\n", "first.html")

	require.Equal(testInstance, "Processing: first.html\n", destination.String())
}

func TestDiscardReporterIgnoresEvents(testInstance *testing.T) {
	require.NotPanics(testInstance, func() {
		reporting.NewDiscardReporter().Printf("Processing: %s\n", "first.html")
	})
}

func TestWriterReporterSerializesConcurrentEvents(testInstance *testing.T) {
	var destination bytes.Buffer
	reporter := reporting.NewWriterReporter(&destination)

	var waitGroup sync.WaitGroup
	for eventIndex := 0; eventIndex < 16; eventIndex++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			reporter.Printf("Processing: %s\n", "post.html")
		}()
	}
	waitGroup.Wait()

	require.Equal(testInstance, strings.Repeat("Processing: post.html\n", 16), destination.String())
}
