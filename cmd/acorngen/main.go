// Command acorngen writes the arity helpers (Inject0..InjectN, Act0..ActN,
// List1..ListN) of package acorn. Go has no variadic type parameters, so
// each dependency-list length gets its own function.
//
// Typical go:generate usage:
//
//	//go:generate go run ./cmd/acorngen -out arity_gen.go -max 16
//
// Settings can also come from a config file (-config) or ACORNGEN_*
// environment variables; flags win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("acorngen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("out", "", "output .go file path")
	fs.Int("max", maxSupportedArity, "highest arity to generate")
	fs.String("package", "acorn", "package clause of the generated file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	overrides := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out", "max", "package":
			overrides[f.Name] = f.Value.String()
		case "log-level":
			overrides["log_level"] = f.Value.String()
		}
	})

	cfg, err := loadConfig(*configPath, overrides)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel, stderr)

	log.Debug().Str("package", cfg.Package).Int("max", cfg.MaxArity).Msg("rendering arity helpers")
	src, err := Render(cfg.Package, cfg.MaxArity)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	log.Info().
		Str("out", cfg.Output).
		Int("max", cfg.MaxArity).
		Int("bytes", len(src)).
		Msg("generated arity helpers")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log := newLogger("error", os.Stderr)
		log.Error().Err(err).Msg("acorngen failed")
		os.Exit(1)
	}
}
