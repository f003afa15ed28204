package report

import (
	"fmt"
	"io"

	"github.com/nao1215/wfkit/internal/model"
)

// SimpleWriter outputs a terse human-readable catalog summary for
// terminal display.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary.
func (w *SimpleWriter) Write(result *model.FetchResult) (int, error) {
	var total int

	n, err := fmt.Fprintf(w.output, "topic: %s\n", result.Topic)
	total += n
	if err != nil {
		return total, err
	}

	n, err = fmt.Fprintf(w.output, "repositories: %d (%d pages, API total %d)\n",
		len(result.Repos), result.Pages, result.TotalCount)
	total += n
	if err != nil {
		return total, err
	}

	n, err = fmt.Fprintf(w.output, "fetched: %s\n",
		result.FetchedAt.Format("2006-01-02 15:04:05 MST"))
	total += n

	return total, err
}
