package formats

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
)

// IDE section markers.
const (
	IDEObjsHeader = "objs"
	SectionEnd    = "end"
)

// ModelEntry is one row of the objs section.
type ModelEntry struct {
	ID             int
	Name           string
	TextureName    string
	RenderDistance float64
	Flag           IDEFlag
}

// FormatDistance renders a draw distance rounded to two decimals without
// trailing zeros: 299, 150.5, 99.25.
func FormatDistance(d float64) string {
	r := math.Round(d*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// AppendIDELine appends one objs row (without newline).
func AppendIDELine(dst []byte, e ModelEntry) []byte {
	dst = strconv.AppendInt(dst, int64(e.ID), 10)
	dst = append(dst, ", "...)
	dst = append(dst, e.Name...)
	dst = append(dst, ", "...)
	dst = append(dst, e.TextureName...)
	dst = append(dst, ", "...)
	dst = append(dst, FormatDistance(e.RenderDistance)...)
	dst = append(dst, ", "...)
	dst = strconv.AppendUint(dst, uint64(e.Flag), 10)
	return dst
}

// WriteIDE writes an objs section with the entries in the order given.
// Callers pass entries sorted by ID. Nothing is written when an entry
// fails CheckField.
func WriteIDE(w io.Writer, entries []ModelEntry) (int, error) {
	for _, e := range entries {
		if err := checkModel(e); err != nil {
			return 0, err
		}
	}

	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	line := make([]byte, 0, 128)
	cw.writeLine([]byte(IDEObjsHeader))
	for _, e := range entries {
		line = AppendIDELine(line[:0], e)
		cw.writeLine(line)
	}
	cw.writeLine([]byte(SectionEnd))

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

// EncodeIDE returns the objs section as bytes.
func EncodeIDE(entries []ModelEntry) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteIDE(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// countingWriter writes newline-terminated lines and keeps the first error.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (c *countingWriter) writeLine(p []byte) {
	if c.err != nil {
		return
	}
	n, err := c.w.Write(p)
	c.n += n
	if err != nil {
		c.err = err
		return
	}
	n, err = c.w.Write([]byte{'\n'})
	c.n += n
	c.err = err
}
