package collision

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenesync/internal/logger"
	"github.com/Faultbox/scenesync/internal/scene"
)

// Outcome reports which store recorded the classification.
type Outcome int

const (
	OutcomePrimary Outcome = iota
	OutcomeFallback
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePrimary:
		return "primary"
	case OutcomeFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Tagger marks objects as collision geometry.
type Tagger struct {
	primary  MetadataStore
	fallback MetadataStore
}

// NewTagger builds a tagger for the configured store kind:
// "structured" (DFF property, key/value fallback) or "keyvalue".
func NewTagger(kind string) (*Tagger, error) {
	switch kind {
	case "", "structured":
		return &Tagger{primary: StructuredStore{}, fallback: KeyValueStore{}}, nil
	case "keyvalue":
		return &Tagger{primary: KeyValueStore{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

// Mark tags obj as collision geometry. A primary store without the
// property degrades to the fallback store; that is reported through the
// outcome, not as an error.
func (t *Tagger) Mark(obj *scene.Object) (Outcome, error) {
	err := t.primary.SetType(obj, TypeCollision)
	if err == nil {
		return OutcomePrimary, nil
	}
	if t.fallback == nil || !errors.Is(err, ErrPropertyUnavailable) {
		return OutcomePrimary, err
	}

	if ferr := t.fallback.SetType(obj, TypeCollision); ferr != nil {
		return OutcomeFallback, ferr
	}
	logger.Named("collision").Warn("collision property unavailable, wrote plain metadata",
		zap.String("object", obj.Name),
		zap.String("store", t.fallback.Name()))
	return OutcomeFallback, nil
}

// Summary counts the results of MarkAll.
type Summary struct {
	Marked   int
	Fallback int
	Skipped  int
}

// MarkAll tags every mesh in objs. Non-mesh objects are skipped.
func (t *Tagger) MarkAll(objs []*scene.Object) (Summary, error) {
	var s Summary
	for _, obj := range objs {
		if !obj.IsMesh() {
			s.Skipped++
			continue
		}
		outcome, err := t.Mark(obj)
		if err != nil {
			return s, fmt.Errorf("marking %q: %w", obj.Name, err)
		}
		s.Marked++
		if outcome == OutcomeFallback {
			s.Fallback++
		}
	}
	logger.Info("collision tagging done",
		zap.Int("marked", s.Marked),
		zap.Int("fallback", s.Fallback),
		zap.Int("skipped", s.Skipped))
	return s, nil
}
