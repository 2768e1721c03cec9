package export

import (
	"errors"
	"fmt"
)

// ErrEmptyInput marks an export with no objects. It is reported as a
// warning; the written file holds only the section header and footer.
var ErrEmptyInput = errors.New("no mesh objects selected")

// ErrNoOutputPath is returned when the export has nowhere to write.
var ErrNoOutputPath = errors.New("no output path")

// ErrNameCollision is returned when distinct model names are written
// identically in the output encoding.
var ErrNameCollision = errors.New("model names collide in output encoding")

// WriteError describes a failed output write. No file is left at Path.
type WriteError struct {
	Op   string // create, write, sync, close, rename
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
