// scenesync exports scene description files to GTA San Andreas IDE and IPL text files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/scenesync/internal/collision"
	"github.com/Faultbox/scenesync/internal/config"
	"github.com/Faultbox/scenesync/internal/export"
	"github.com/Faultbox/scenesync/internal/logger"
	"github.com/Faultbox/scenesync/internal/scene"
	"github.com/Faultbox/scenesync/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "ide":
		err = cmdIDE(args)
	case "ipl":
		err = cmdIPL(args)
	case "export", "x":
		err = cmdExport(args)
	case "names":
		err = cmdNames(args)
	case "collision", "col":
		err = cmdCollision(args)
	case "rename":
		err = cmdRename(args)
	case "reset-pos":
		err = cmdResetPos(args)
	case "remove-mats":
		err = cmdRemoveMats(args)
	case "set-txd":
		err = cmdSetTXD(args)
	case "flags":
		cmdFlags()
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenesync - GTA San Andreas IDE/IPL exporter

Usage:
  scenesync <command> [options] <scene-file> [args]

Commands:
  ide <scene>                Write the IDE objs section
  ipl <scene>                Write the IPL inst section
  export <scene>             Write both IDE and IPL
  names <scene>              Print the model name to ID mapping
  collision <scene>          Tag selected meshes as collision objects
  rename <scene> <base>      Rename selected objects to base_1, base_2, ...
  reset-pos <scene>          Move selected objects to the origin
  remove-mats <scene>        Strip materials from selected meshes
  set-txd <scene> <txd>      Set the texture dictionary of selected meshes
  flags                      List known IDE flags
  config                     Write the effective config (-o path, default user config dir)

Options:
  -config <file>             Config file (default ./scenesync.yaml)
  -o <path>                  Output path (export: base path without extension)
  -start-id <n>              First model ID
  -encoding <name>           utf-8 or windows-1252
  -comment <text>            Comment line before the IPL inst header
  -normalize                 Normalize rotations
  -skip-collision            Leave collision-tagged objects out
  -debug                     Enable debug logging

Examples:
  scenesync export -start-id 18631 docks.yaml
  scenesync ipl -o maps/docks.ipl docks.yaml
  scenesync set-txd docks.yaml docks_txd`)
}

// session is the state shared by every scene command.
type session struct {
	cfg   *config.Config
	flags *config.Flags
	path  string
	scene *scene.Scene
	args  []string
}

// open parses the shared flags, loads config and the scene named by the
// first positional argument, and initializes logging.
func open(name string, args []string, minArgs int, usage string) (*session, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.Register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scenesync %s [options] %s\n", name, usage)
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() < minArgs {
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	path := fs.Arg(0)
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("scene loaded",
		zap.String("path", path),
		zap.Int("objects", len(sc.Objects)))

	// A start ID carried by the scene applies unless flags, file or env
	// set one.
	if !cfg.StartIDExplicit() && sc.StartID > 0 {
		cfg.Export.StartID = sc.StartID
	}

	return &session{cfg: cfg, flags: flags, path: path, scene: sc, args: fs.Args()[1:]}, nil
}

// exportConfig resolves output paths for one export run.
func (s *session) exportConfig() config.ExportConfig {
	ec := s.cfg.Export
	base := strings.TrimSuffix(s.path, filepath.Ext(s.path))
	if s.flags.Output != "" {
		base = s.flags.Output
	}
	if ec.IDEPath == "" || s.flags.Output != "" {
		ec.IDEPath = base
	}
	if ec.IPLPath == "" || s.flags.Output != "" {
		ec.IPLPath = base
	}
	return ec
}

func (s *session) save() error {
	if err := s.scene.Save(s.path); err != nil {
		return err
	}
	logger.Debug("scene saved", zap.String("path", s.path))
	return nil
}

func printResult(kind string, res export.Result) {
	fmt.Printf("%s: %s (%d models, %d instances, %d bytes)\n",
		kind, res.Path, res.Models, res.Instances, res.BytesWritten)
	for _, w := range res.Warnings {
		fmt.Printf("  warning: %v\n", w)
	}
}

func cmdIDE(args []string) error {
	s, err := open("ide", args, 1, "<scene>")
	if err != nil {
		return err
	}
	res, err := export.ExportIDE(s.scene.Selected(), s.exportConfig())
	if err != nil {
		return err
	}
	printResult("IDE", res)
	return nil
}

func cmdIPL(args []string) error {
	s, err := open("ipl", args, 1, "<scene>")
	if err != nil {
		return err
	}
	res, err := export.ExportIPL(s.scene.Selected(), s.exportConfig())
	if err != nil {
		return err
	}
	printResult("IPL", res)
	return nil
}

func cmdExport(args []string) error {
	s, err := open("export", args, 1, "<scene>")
	if err != nil {
		return err
	}
	objs := s.scene.Selected()
	ec := s.exportConfig()

	ide, err := export.ExportIDE(objs, ec)
	if err != nil {
		return err
	}
	printResult("IDE", ide)

	ipl, err := export.ExportIPL(objs, ec)
	if err != nil {
		return err
	}
	printResult("IPL", ipl)
	return nil
}

func cmdNames(args []string) error {
	s, err := open("names", args, 1, "<scene>")
	if err != nil {
		return err
	}
	objs := export.Prepare(s.scene.Selected(), s.cfg.Export)
	alloc := export.Allocate(export.ResolveNames(objs), s.cfg.Export.StartID)

	fmt.Printf("Start ID: %d\n\n", alloc.StartID())
	fmt.Printf("%-8s %-32s %s\n", "ID", "Model", "Objects")
	fmt.Println(strings.Repeat("-", 60))

	counts := make(map[string]int)
	for _, o := range objs {
		counts[export.ResolveName(o)]++
	}
	for _, name := range alloc.Names() {
		id, _ := alloc.ID(name)
		fmt.Printf("%-8d %-32s %d\n", id, name, counts[name])
	}
	fmt.Printf("\nTotal: %d models, %d objects\n", alloc.Len(), len(objs))
	return nil
}

func cmdCollision(args []string) error {
	s, err := open("collision", args, 1, "<scene>")
	if err != nil {
		return err
	}
	tagger, err := collision.NewTagger(s.cfg.Collision.Store)
	if err != nil {
		return err
	}
	sum, err := tagger.MarkAll(s.scene.Selected())
	if err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("Tagged %d objects as collision (%d via fallback, %d skipped)\n",
		sum.Marked, sum.Fallback, sum.Skipped)
	return nil
}

func cmdRename(args []string) error {
	s, err := open("rename", args, 2, "<scene> <base>")
	if err != nil {
		return err
	}
	n, err := scene.BatchRename(s.scene.Selected(), s.args[0])
	if err != nil {
		return err
	}
	return s.report(n, "Renamed")
}

func cmdResetPos(args []string) error {
	s, err := open("reset-pos", args, 1, "<scene>")
	if err != nil {
		return err
	}
	n, err := scene.ResetLocation(s.scene.Selected())
	if err != nil {
		return err
	}
	return s.report(n, "Reset location of")
}

func cmdRemoveMats(args []string) error {
	s, err := open("remove-mats", args, 1, "<scene>")
	if err != nil {
		return err
	}
	n, err := scene.RemoveMaterials(s.scene.Selected())
	if err != nil {
		return err
	}
	return s.report(n, "Removed materials from")
}

func cmdSetTXD(args []string) error {
	s, err := open("set-txd", args, 2, "<scene> <txd>")
	if err != nil {
		return err
	}
	n, err := scene.SetTexture(s.scene.Selected(), s.args[0])
	if err != nil {
		return err
	}
	return s.report(n, "Set texture on")
}

// report saves the scene after an edit and prints what changed.
func (s *session) report(n int, action string) error {
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("%s %d objects\n", action, n)
	return nil
}

// cmdConfig writes the merged defaults, file, env and flag settings as YAML.
func cmdConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	flags := config.Register(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	path := flags.Output
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}

func cmdFlags() {
	fmt.Printf("%-10s %-22s %s\n", "Value", "Name", "Description")
	fmt.Println(strings.Repeat("-", 72))
	for _, f := range formats.IDEFlags {
		fmt.Printf("%-10d %-22s %s\n", uint32(f.Value), f.Label, f.Description)
	}
}
