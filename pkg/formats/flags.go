package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownIDEFlag is returned when a flag value is not one of the known SA flags.
var ErrUnknownIDEFlag = errors.New("unknown IDE flag")

// IDEFlag is a San Andreas object definition flag.
type IDEFlag uint32

// Basic flags (all models except peds/vehicles).
const (
	FlagDefault           IDEFlag = 0
	FlagWetRoads          IDEFlag = 1
	FlagDrawLast          IDEFlag = 4
	FlagAdditive          IDEFlag = 8
	FlagDoor              IDEFlag = 32
	FlagNoZWrite          IDEFlag = 64
	FlagNoShadows         IDEFlag = 128
	FlagCodeGlass         IDEFlag = 512
	FlagArtistGlass       IDEFlag = 1024
	FlagGarageDoor        IDEFlag = 2048
	FlagDamageable        IDEFlag = 4096
	FlagTree              IDEFlag = 8192
	FlagPalmTree          IDEFlag = 16384
	FlagNoFlyerCollide    IDEFlag = 32768
	FlagTag               IDEFlag = 1048576
	FlagNoBackfaceCulling IDEFlag = 2097152
	FlagNoCover           IDEFlag = 4194304
	FlagWetOnly           IDEFlag = 8388608
)

// FlagGroup classifies a flag by the kind of model it applies to.
type FlagGroup int

const (
	FlagGroupBasic FlagGroup = iota
	FlagGroupClump
	FlagGroupAtomicExclusive
	FlagGroupAtomic
)

// String returns a human-readable group name.
func (g FlagGroup) String() string {
	switch g {
	case FlagGroupBasic:
		return "Basic"
	case FlagGroupClump:
		return "Clump"
	case FlagGroupAtomicExclusive:
		return "Atomic (exclusive)"
	case FlagGroupAtomic:
		return "Atomic"
	default:
		return fmt.Sprintf("Unknown(%d)", g)
	}
}

// FlagInfo describes one selectable IDE flag.
type FlagInfo struct {
	Value       IDEFlag
	Label       string
	Description string
	Group       FlagGroup
}

// IDEFlags lists every flag value accepted on a model.
var IDEFlags = []FlagInfo{
	{FlagDrawLast, "Draw Last", "Draw after opaque geometry. Automatically applies Additive.", FlagGroupBasic},
	{FlagAdditive, "Additive", "Additive blending.", FlagGroupBasic},
	{FlagNoZWrite, "No Z-Write", "Do not write to Z buffer (e.g., static shadow models).", FlagGroupBasic},
	{FlagNoShadows, "No Shadows", "Shadows will not be cast on this model.", FlagGroupBasic},
	{FlagNoBackfaceCulling, "No Backface Culling", "Disables backface culling.", FlagGroupBasic},

	{FlagDoor, "Door", "This model is a door.", FlagGroupClump},

	{FlagCodeGlass, "Code Glass", "Breakable glass. Texture changes when broken. Requires object.dat.", FlagGroupAtomicExclusive},
	{FlagArtistGlass, "Artist Glass", "Breakable glass. Texture does not change when broken. Requires object.dat.", FlagGroupAtomicExclusive},
	{FlagGarageDoor, "Garage Door", "Identifies the model as a garage door.", FlagGroupAtomicExclusive},
	{FlagTree, "Tree", "Normal tree affected by wind.", FlagGroupAtomicExclusive},
	{FlagPalmTree, "Palm Tree", "Palm tree affected by wind.", FlagGroupAtomicExclusive},
	{FlagTag, "Tag", "Sprayable tag; switches mesh when sprayed.", FlagGroupAtomicExclusive},
	{FlagNoCover, "No Cover", "Peds cannot take cover behind this model.", FlagGroupAtomicExclusive},
	{FlagWetOnly, "Wet Only", "Wet only model.", FlagGroupAtomicExclusive},

	{FlagWetRoads, "Wet Roads", "Use wet road reflections.", FlagGroupAtomic},
	{FlagDamageable, "Damageable", "Has a damaged version (e.g., custom car components). Cannot be used by timed atomic models.", FlagGroupAtomic},
	{FlagNoFlyerCollide, "No Flyer Collide", "Prevents destruction by planes/helicopters (approximate).", FlagGroupAtomic},

	{FlagDefault, "(SA)Default", "No special flags", FlagGroupBasic},
}

// Info returns the table entry for the flag.
func (f IDEFlag) Info() (FlagInfo, bool) {
	for _, info := range IDEFlags {
		if info.Value == f {
			return info, true
		}
	}
	return FlagInfo{}, false
}

// Valid reports whether f is a known flag value.
func (f IDEFlag) Valid() bool {
	_, ok := f.Info()
	return ok
}

// String returns the flag label.
func (f IDEFlag) String() string {
	if info, ok := f.Info(); ok {
		return info.Label
	}
	return fmt.Sprintf("Unknown(%d)", uint32(f))
}

// ParseIDEFlag accepts either the numeric flag value or its label (case-insensitive).
func ParseIDEFlag(s string) (IDEFlag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlagDefault, nil
	}

	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		f := IDEFlag(n)
		if !f.Valid() {
			return FlagDefault, fmt.Errorf("%w: %d", ErrUnknownIDEFlag, n)
		}
		return f, nil
	}

	for _, info := range IDEFlags {
		if strings.EqualFold(info.Label, s) {
			return info.Value, nil
		}
	}
	return FlagDefault, fmt.Errorf("%w: %q", ErrUnknownIDEFlag, s)
}
