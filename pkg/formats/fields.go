package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidField is returned for a text field that would break the
// comma-separated row layout.
var ErrInvalidField = errors.New("invalid field")

// CheckField reports whether value can be written as one column.
// Commas and line breaks are rejected.
func CheckField(column, value string) error {
	if i := strings.IndexAny(value, ",\r\n"); i >= 0 {
		return fmt.Errorf("%w: %s %q contains %q", ErrInvalidField, column, value, value[i])
	}
	return nil
}

func checkModel(e ModelEntry) error {
	if err := CheckField("name", e.Name); err != nil {
		return err
	}
	return CheckField("texture", e.TextureName)
}
