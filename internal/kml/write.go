package kml

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// ErrOutputWrite is returned when the rendered document cannot be written.
var ErrOutputWrite = eris.New("kml: output write failed")

// WriteFile creates or truncates path and writes doc to it.
func WriteFile(path string, doc []byte) error {
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return eris.Wrapf(ErrOutputWrite, "kml: write %s: %v", path, err)
	}
	return nil
}

// WriteTo writes doc to w, typically standard output.
func WriteTo(w io.Writer, doc []byte) error {
	if _, err := w.Write(doc); err != nil {
		return eris.Wrapf(ErrOutputWrite, "kml: write output: %v", err)
	}
	return nil
}
