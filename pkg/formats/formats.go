// Package formats provides writers for GTA San Andreas map text formats.
package formats

// Note: IDE object definitions (objs section) are implemented in ide.go
// Note: IPL instance placement (text inst section) is implemented in ipl.go
// Note: IDE flag values are listed in flags.go
