package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/wfkit/internal/model"
)

// JSONWriter outputs the catalog as a JSON array of records.
// This is the machine-readable output file format: object keys are
// emitted in sorted order (guaranteed by model.Repo's field layout) and
// indentation defaults to two spaces.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because:
//  1. It's part of the standard library (no extra dependencies)
//  2. It's sufficient for our needs
//  3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent sets custom indentation for pretty-printed output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithCompact disables the default pretty-printing.
func WithCompact() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = false
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is indented with two spaces unless WithCompact is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       true,
		indentPrefix: "",
		indentString: "  ",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the catalog records as a JSON array.
// A catalog with no records writes an empty array, never null.
func (w *JSONWriter) Write(result *model.FetchResult) (int, error) {
	repos := result.Repos
	if repos == nil {
		repos = []model.Repo{}
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(repos, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(repos)
	}

	if err != nil {
		return 0, err
	}

	// Trailing newline so the file ends like a text file should
	data = append(data, '\n')

	return w.output.Write(data)
}
