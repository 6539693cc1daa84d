// Package output writes machine-readable documents to the hook's stdout.
// Claude Code parses whatever appears there, so nothing else in the process
// may print to it.
package output

import (
	"encoding/json"
	"io"
)

// JSONWriter emits one JSON document per line.
type JSONWriter struct {
	w io.Writer
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write marshals v onto a single line followed by a newline.
func (jw *JSONWriter) Write(v interface{}) error {
	return json.NewEncoder(jw.w).Encode(v)
}

// WriteIndented marshals v with indentation for human consumption.
func (jw *JSONWriter) WriteIndented(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
