package config

import "flag"

// Flags holds the command-line overrides shared by every subcommand.
type Flags struct {
	Config        string
	Debug         bool
	StartID       int
	Output        string
	Encoding      string
	Comment       string
	Normalize     bool
	SkipCollision bool
}

// Register adds the shared flags to fs and returns their destination.
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.StartID, "start-id", -1, "First model ID (default from config or scene)")
	fs.StringVar(&f.Output, "o", "", "Output file path")
	fs.StringVar(&f.Encoding, "encoding", "", "Output text encoding (utf-8, windows-1252)")
	fs.StringVar(&f.Comment, "comment", "", "Comment line written before the IPL inst header")
	fs.BoolVar(&f.Normalize, "normalize", false, "Normalize rotations before writing")
	fs.BoolVar(&f.SkipCollision, "skip-collision", false, "Leave collision-tagged objects out of the export")
	return f
}

// StartIDSet reports whether --start-id was given.
func (f *Flags) StartIDSet() bool {
	return f != nil && f.StartID >= 0
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.StartIDSet() {
		cfg.Export.StartID = f.StartID
		cfg.startIDSet = true
	}
	if f.Encoding != "" {
		cfg.Export.Encoding = f.Encoding
	}
	if f.Comment != "" {
		cfg.Export.HeaderComment = f.Comment
	}
	if f.Normalize {
		cfg.Export.NormalizeRotation = true
	}
	if f.SkipCollision {
		cfg.Export.SkipCollision = true
	}
}
