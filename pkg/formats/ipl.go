package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IPL section header.
const IPLInstHeader = "inst"

// Fixed defaults for columns the scene does not model.
const (
	DefaultInterior = 0
	DefaultLOD      = -1
)

// Instance is one row of the text inst section.
//
// Column order (SA text inst):
//
//	ID, ModelName, Interior, PosX, PosY, PosZ, RotX, RotY, RotZ, RotW, LOD
type Instance struct {
	ModelID   int
	ModelName string
	Interior  int
	Position  [3]float64
	Rotation  [4]float64 // x, y, z, w
	LOD       int
}

// NewInstance returns an instance with the default interior and LOD.
func NewInstance(id int, name string, pos [3]float64, rot [4]float64) Instance {
	return Instance{
		ModelID:   id,
		ModelName: name,
		Interior:  DefaultInterior,
		Position:  pos,
		Rotation:  rot,
		LOD:       DefaultLOD,
	}
}

// IPLOptions controls optional parts of the IPL output.
type IPLOptions struct {
	// Comment, when set, is written as "# <Comment>" before the inst header.
	Comment string
}

// appendCoord formats a coordinate with six decimals, printing -0 as 0.
func appendCoord(dst []byte, v float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', 6, 64)
	if string(dst[start:]) == "-0.000000" {
		dst = append(dst[:start], "0.000000"...)
	}
	return dst
}

// AppendIPLLine appends one inst row (without newline).
func AppendIPLLine(dst []byte, in Instance) []byte {
	dst = strconv.AppendInt(dst, int64(in.ModelID), 10)
	dst = append(dst, ", "...)
	dst = append(dst, in.ModelName...)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(in.Interior), 10)
	for _, v := range in.Position {
		dst = append(dst, ", "...)
		dst = appendCoord(dst, v)
	}
	for _, v := range in.Rotation {
		dst = append(dst, ", "...)
		dst = appendCoord(dst, v)
	}
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(in.LOD), 10)
	return dst
}

// WriteIPL writes a text inst section with one row per instance, in order.
// Nothing is written when a model name or the comment fails CheckField.
func WriteIPL(w io.Writer, instances []Instance, opts IPLOptions) (int, error) {
	if strings.ContainsAny(opts.Comment, "\r\n") {
		return 0, fmt.Errorf("%w: comment spans lines", ErrInvalidField)
	}
	for _, in := range instances {
		if err := CheckField("name", in.ModelName); err != nil {
			return 0, err
		}
	}

	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	if c := strings.TrimSpace(opts.Comment); c != "" {
		cw.writeLine([]byte("# " + c))
	}
	cw.writeLine([]byte(IPLInstHeader))

	line := make([]byte, 0, 160)
	for _, in := range instances {
		line = AppendIPLLine(line[:0], in)
		cw.writeLine(line)
	}
	cw.writeLine([]byte(SectionEnd))

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

// EncodeIPL returns the inst section as bytes.
func EncodeIPL(instances []Instance, opts IPLOptions) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteIPL(&buf, instances, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
