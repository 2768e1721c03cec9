// Package collision tags scene objects for use as collision geometry.
package collision

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenesync/internal/scene"
)

// Classification values written by the stores.
const (
	TypeCollision = "COL"
	TypeNone      = ""
)

// CustomKey is the plain metadata key used by the key/value store.
const CustomKey = "dff_type"

// ErrPropertyUnavailable is returned when an object has no structured
// classification property to write to.
var ErrPropertyUnavailable = errors.New("dff property group unavailable")

// ErrUnknownStore is returned by NewTagger for an unrecognised store kind.
var ErrUnknownStore = errors.New("unknown collision store")

// MetadataStore writes and reads the classification of an object.
type MetadataStore interface {
	Name() string
	SetType(obj *scene.Object, value string) error
	Type(obj *scene.Object) (string, bool)
}

// StructuredStore uses the object's DFF property group.
type StructuredStore struct{}

// Name implements MetadataStore.
func (StructuredStore) Name() string { return "structured" }

// SetType implements MetadataStore.
func (StructuredStore) SetType(obj *scene.Object, value string) error {
	if obj.DFF == nil {
		return fmt.Errorf("%w on %q", ErrPropertyUnavailable, obj.Name)
	}
	obj.DFF.Type = value
	return nil
}

// Type implements MetadataStore.
func (StructuredStore) Type(obj *scene.Object) (string, bool) {
	if obj.DFF == nil {
		return "", false
	}
	return obj.DFF.Type, true
}

// KeyValueStore uses a plain custom property.
type KeyValueStore struct{}

// Name implements MetadataStore.
func (KeyValueStore) Name() string { return "keyvalue" }

// SetType implements MetadataStore.
func (KeyValueStore) SetType(obj *scene.Object, value string) error {
	if obj.Custom == nil {
		obj.Custom = make(map[string]string)
	}
	obj.Custom[CustomKey] = value
	return nil
}

// Type implements MetadataStore.
func (KeyValueStore) Type(obj *scene.Object) (string, bool) {
	v, ok := obj.Custom[CustomKey]
	return v, ok
}

// IsCollision reports whether either store marks obj as collision geometry.
func IsCollision(obj *scene.Object) bool {
	if v, ok := (StructuredStore{}).Type(obj); ok && v == TypeCollision {
		return true
	}
	v, ok := (KeyValueStore{}).Type(obj)
	return ok && v == TypeCollision
}
