// Package textenc decodes line-oriented input into the byte strings stored in a
// list. Decoding happens at the edge; lists themselves never interpret bytes.
package textenc

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Raw passes bytes through untouched.
const Raw = "raw"

var encodings = map[string]encoding.Encoding{
	Raw:            encoding.Nop,
	"utf-8":        encoding.Nop,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

var aliases = map[string]string{
	"":       Raw,
	"utf8":   "utf-8",
	"cp1252": "windows-1252",
	"latin1": "iso-8859-1",
	"utf16":  "utf-16le",
}

// Names lists the accepted encoding names, aliases excluded.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for n := range encodings {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves an encoding name, case-insensitively.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("textenc: unknown encoding %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// NewReader wraps r so reads yield UTF-8 decoded from the named encoding.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Decode converts data from the named encoding to UTF-8. Raw input is returned as is.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == encoding.Nop {
		return data, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("textenc: decode %s: %w", name, err)
	}
	return out, nil
}

// Lines splits data on '\n', dropping a trailing '\r' from each line and the
// empty line after a final newline. The returned lines alias data.
func Lines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.Split(data, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte{'\r'})
	}
	return lines
}
