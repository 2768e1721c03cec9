package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scenesync/internal/collision"
	"github.com/Faultbox/scenesync/internal/config"
	"github.com/Faultbox/scenesync/internal/logger"
	"github.com/Faultbox/scenesync/internal/scene"
	"github.com/Faultbox/scenesync/pkg/encoding"
	"github.com/Faultbox/scenesync/pkg/formats"
)

// File extensions enforced on output paths.
const (
	ExtIDE = ".ide"
	ExtIPL = ".ipl"
)

// Result describes a completed export.
type Result struct {
	Path         string
	BytesWritten int
	Models       int
	Instances    int
	Warnings     []error
}

// Prepare filters objs down to the objects that take part in an export.
// objs must be in selection order.
func Prepare(objs []*scene.Object, cfg config.ExportConfig) []*scene.Object {
	out := make([]*scene.Object, 0, len(objs))
	for _, o := range objs {
		if !o.IsMesh() {
			logger.Debug("skipping non-mesh object",
				zap.String("object", o.Name),
				zap.String("type", string(o.Type)))
			continue
		}
		if cfg.SkipCollision && collision.IsCollision(o) {
			logger.Debug("skipping collision object", zap.String("object", o.Name))
			continue
		}
		out = append(out, o)
	}
	return out
}

// Models returns one entry per distinct canonical name in ID order. Each
// entry takes its metadata from the first object carrying that name.
func Models(objs []*scene.Object, alloc *Allocation) []formats.ModelEntry {
	entries := make([]formats.ModelEntry, 0, alloc.Len())
	seen := make(map[string]bool, alloc.Len())
	for _, o := range objs {
		name := ResolveName(o)
		if seen[name] {
			continue
		}
		seen[name] = true

		id, _ := alloc.ID(name)
		entries = append(entries, formats.ModelEntry{
			ID:             id,
			Name:           name,
			TextureName:    o.IDE.TextureName,
			RenderDistance: o.IDE.RenderDistance,
			Flag:           o.IDE.Flag,
		})
	}
	return entries
}

// Instances returns one placement per object, in input order.
func Instances(objs []*scene.Object, alloc *Allocation, conv Converter) []formats.Instance {
	out := make([]formats.Instance, 0, len(objs))
	for _, o := range objs {
		name := ResolveName(o)
		id, _ := alloc.ID(name)
		pos, rot := conv.ConvertObject(o)
		out = append(out, formats.NewInstance(id, name, pos.Array(), [4]float64{rot.X, rot.Y, rot.Z, rot.W}))
	}
	return out
}

// BuildIDE encodes the IDE objs section for objs without touching disk.
func BuildIDE(objs []*scene.Object, cfg config.ExportConfig) ([]byte, Result, error) {
	objs = Prepare(objs, cfg)
	alloc := Allocate(ResolveNames(objs), cfg.StartID)
	entries := Models(objs, alloc)

	res := Result{Models: len(entries)}
	if len(objs) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyInput)
	}

	if err := checkEncodedNames(alloc.Names(), cfg.Encoding); err != nil {
		return nil, res, err
	}
	raw, err := formats.EncodeIDE(entries)
	if err != nil {
		return nil, res, err
	}
	data, err := encoding.Encode(cfg.Encoding, raw)
	if err != nil {
		return nil, res, err
	}
	return data, res, nil
}

// BuildIPL encodes the IPL inst section for objs without touching disk.
func BuildIPL(objs []*scene.Object, cfg config.ExportConfig) ([]byte, Result, error) {
	objs = Prepare(objs, cfg)
	alloc := Allocate(ResolveNames(objs), cfg.StartID)
	instances := Instances(objs, alloc, NewConverter(cfg))

	res := Result{Models: alloc.Len(), Instances: len(instances)}
	if len(objs) == 0 {
		res.Warnings = append(res.Warnings, ErrEmptyInput)
	}

	if err := checkEncodedNames(alloc.Names(), cfg.Encoding); err != nil {
		return nil, res, err
	}
	raw, err := formats.EncodeIPL(instances, formats.IPLOptions{Comment: cfg.HeaderComment})
	if err != nil {
		return nil, res, err
	}
	data, err := encoding.Encode(cfg.Encoding, raw)
	if err != nil {
		return nil, res, err
	}
	return data, res, nil
}

// ExportIDE writes the IDE file for objs to cfg.IDEPath.
func ExportIDE(objs []*scene.Object, cfg config.ExportConfig) (Result, error) {
	return run("ide", cfg.IDEPath, WithExt(cfg.IDEPath, ExtIDE), objs, cfg, BuildIDE)
}

// ExportIPL writes the IPL file for objs to cfg.IPLPath. A suffix other
// than .ipl is replaced.
func ExportIPL(objs []*scene.Object, cfg config.ExportConfig) (Result, error) {
	return run("ipl", cfg.IPLPath, ReplaceExt(cfg.IPLPath, ExtIPL), objs, cfg, BuildIPL)
}

type buildFunc func([]*scene.Object, config.ExportConfig) ([]byte, Result, error)

func run(kind, rawPath, path string, objs []*scene.Object, cfg config.ExportConfig, build buildFunc) (Result, error) {
	if strings.TrimSpace(rawPath) == "" {
		return Result{}, fmt.Errorf("%s export: %w", kind, ErrNoOutputPath)
	}

	start := time.Now()
	data, res, err := build(objs, cfg)
	if err != nil {
		return res, fmt.Errorf("%s export: %w", kind, err)
	}
	res.Path = path

	for _, w := range res.Warnings {
		logger.Warn(kind+" export warning", zap.String("path", path), zap.Error(w))
	}

	n, err := writeFileAtomic(path, data, 0644)
	res.BytesWritten = n
	if err != nil {
		logger.Error(kind+" export failed", zap.String("path", path), zap.Error(err))
		return res, err
	}

	logger.Info(kind+" export complete",
		zap.String("path", path),
		zap.Int("models", res.Models),
		zap.Int("instances", res.Instances),
		zap.Int("bytes", n),
		zap.Duration("took", time.Since(start)))
	return res, nil
}

// WithExt returns path with ext appended unless it already ends in ext
// (case-insensitive).
func WithExt(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}

// ReplaceExt returns path with its extension swapped for ext. A path
// already ending in ext (case-insensitive) is returned unchanged.
func ReplaceExt(path, ext string) string {
	cur := filepath.Ext(path)
	if strings.EqualFold(cur, ext) {
		return path
	}
	return strings.TrimSuffix(path, cur) + ext
}

// checkEncodedNames fails when two distinct model names encode to the
// same bytes, which happens when unrepresentable runes become '?'.
func checkEncodedNames(names []string, enc string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		b, err := encoding.Encode(enc, []byte(name))
		if err != nil {
			return err
		}
		if prev, ok := seen[string(b)]; ok {
			return fmt.Errorf("%w: %q and %q both become %q", ErrNameCollision, prev, name, b)
		}
		seen[string(b)] = name
	}
	return nil
}
