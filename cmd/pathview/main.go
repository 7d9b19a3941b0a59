// Command pathview shows followers moving along preset 3D paths in the
// terminal.
//
// Usage:
//
//	pathview [-config file.toml] [-log file] [-fps n] [-duration s] [-samples n] [-loop] [-reverse] [-uniform]
//
// Flags override values read from the config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func newFlags() *flag.FlagSet {
	def := DefaultConfig()
	fs := flag.NewFlagSet("pathview", flag.ContinueOnError)
	fs.String("config", "", "TOML config `file`")
	fs.String("log", "", "write logs to `file`")
	fs.Int("fps", def.FPS, "frames per second")
	fs.Float64("duration", def.Duration, "seconds for one traversal at speed 1")
	fs.Int("samples", def.SamplesPerSegment, "arc table samples per segment")
	fs.Bool("loop", def.Loop, "wrap around at the ends")
	fs.Bool("reverse", def.Reverse, "move from the end towards the start")
	fs.Bool("uniform", def.Uniform, "move at constant speed along the length")
	return fs
}

// applyFlags copies the flags set on the command line into cfg.
func applyFlags(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "fps":
			cfg.FPS = g.Get().(int)
		case "duration":
			cfg.Duration = g.Get().(float64)
		case "samples":
			cfg.SamplesPerSegment = g.Get().(int)
		case "loop":
			cfg.Loop = g.Get().(bool)
		case "reverse":
			cfg.Reverse = g.Get().(bool)
		case "uniform":
			cfg.Uniform = g.Get().(bool)
		}
	})
}

func parseConfig(args []string) (Config, string, error) {
	fs := newFlags()
	if err := fs.Parse(args); err != nil {
		return Config{}, "", err
	}
	cfg := DefaultConfig()
	if path := fs.Lookup("config").Value.String(); path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return Config{}, "", err
		}
	}
	applyFlags(&cfg, fs)
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, fs.Lookup("log").Value.String(), nil
}

func openLog(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}

func run(args []string) error {
	cfg, logPath, err := parseConfig(args)
	if err != nil {
		return err
	}
	log, closer, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	v, err := newViewer(cfg, log)
	if err != nil {
		return err
	}
	defer v.close()
	v.run()
	log.Info("viewer stopped")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "pathview: %v\n", err)
		os.Exit(1)
	}
}
