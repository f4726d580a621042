// Package console writes tagged, human-readable lines to a serial sink
// without pulling fmt into MCU builds.
package console

import (
	"io"

	"blinkcode-go/x/conv"
)

// Console is not safe for concurrent use; the firmware has one writer.
type Console struct {
	w    io.Writer
	eol  string
	line []byte
	num  [20]byte
}

// New returns a Console writing "\n"-terminated lines to w.
func New(w io.Writer) *Console {
	return &Console{w: w, eol: "\n", line: make([]byte, 0, 96)}
}

// NewCRLF is New with "\r\n" line endings, for raw UART terminals.
func NewCRLF(w io.Writer) *Console {
	c := New(w)
	c.eol = "\r\n"
	return c
}

// Line writes "[tag] " followed by parts, concatenated, and a line ending.
// Write errors are dropped: there is nowhere else to report them.
func (c *Console) Line(tag string, parts ...string) {
	if c == nil || c.w == nil {
		return
	}
	b := c.line[:0]
	if tag != "" {
		b = append(b, '[')
		b = append(b, tag...)
		b = append(b, "] "...)
	}
	for _, p := range parts {
		b = append(b, p...)
	}
	b = append(b, c.eol...)
	c.line = b
	_, _ = c.w.Write(b)
}

// Uint formats n in base 10.
func (c *Console) Uint(n uint64) string { return string(conv.Utoa(c.num[:], n)) }

// Int formats n in base 10.
func (c *Console) Int(n int64) string { return string(conv.Itoa(c.num[:], n)) }
