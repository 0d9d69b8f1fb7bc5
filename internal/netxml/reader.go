// Package netxml reads Kismet .netxml survey files and extracts the access
// points worth plotting.
package netxml

import (
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrInputNotFound is returned when the input path is not a readable file.
	ErrInputNotFound = eris.New("netxml: input not found")
	// ErrMalformedInput is returned when the document cannot be parsed or a
	// selected network lacks a mandatory element.
	ErrMalformedInput = eris.New("netxml: malformed input")
)

// ReadFile parses the whole file at path into memory.
func ReadFile(path string) (*etree.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, eris.Wrapf(ErrInputNotFound, "netxml: stat %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, eris.Wrapf(ErrInputNotFound, "netxml: %s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(ErrInputNotFound, "netxml: open %s: %v", path, err)
	}
	defer f.Close() //nolint:errcheck

	doc, err := Read(f)
	if err != nil {
		return nil, eris.Wrapf(err, "netxml: read %s", path)
	}
	return doc, nil
}

// Read parses a netxml document from r. Encodings other than UTF-8 declared
// in the prolog are decoded by WHATWG label.
func Read(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, eris.Wrapf(ErrMalformedInput, "netxml: parse: %v", err)
	}
	if doc.Root() == nil {
		return nil, eris.Wrap(ErrMalformedInput, "netxml: document has no root element")
	}
	return doc, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, eris.Wrapf(err, "netxml: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}
