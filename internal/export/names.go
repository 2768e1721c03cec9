// Package export turns scene objects into IDE and IPL files.
package export

import (
	"regexp"

	"github.com/Faultbox/scenesync/internal/scene"
)

// Placeholder is the canonical name used when both the collection and the
// object name clean down to nothing.
const Placeholder = "Unnamed"

var (
	dffSuffix       = regexp.MustCompile(`(?i)\.dff$`)
	duplicateSuffix = regexp.MustCompile(`\.[0-9]+$`)
)

// CleanCollectionName strips one trailing ".dff" (any case).
func CleanCollectionName(name string) string {
	return dffSuffix.ReplaceAllLiteralString(name, "")
}

// CleanObjectName strips one trailing ".<digits>" duplicate suffix.
func CleanObjectName(name string) string {
	return duplicateSuffix.ReplaceAllLiteralString(name, "")
}

// ResolveName returns the canonical model name of obj: the cleaned
// collection name when the object belongs to one, else its cleaned name.
func ResolveName(obj *scene.Object) string {
	var name string
	if obj.Collection != "" {
		name = CleanCollectionName(obj.Collection)
	} else {
		name = CleanObjectName(obj.Name)
	}
	if name == "" {
		return Placeholder
	}
	return name
}

// ResolveNames resolves every object, keeping order.
func ResolveNames(objs []*scene.Object) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = ResolveName(o)
	}
	return names
}
