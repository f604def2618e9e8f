package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/wallacegibbon/skillkit/internal/bundle"
	"github.com/wallacegibbon/skillkit/internal/logging"
)

const Version = "0.2.0"

// ReleaseTag is the suffix of default archive names. It tracks the tool
// release, not the version declared in a skill manifest.
const ReleaseTag = "v" + Version

const (
	// EnvSchema points at a bundle schema file replacing the built-in one
	EnvSchema = "SKILLKIT_SCHEMA"
	// EnvNoColor disables colored output when set to any value
	EnvNoColor = "NO_COLOR"
)

// Settings holds configuration shared by the CLI tools
type Settings struct {
	SchemaPath  string
	LogLevel    slog.Level
	NoColor     bool
	ShellSyntax bool
}

// FromEnv returns settings seeded from the environment
func FromEnv() *Settings {
	s := &Settings{
		SchemaPath: strings.TrimSpace(os.Getenv(EnvSchema)),
		LogLevel:   logging.DefaultLevel,
		NoColor:    os.Getenv(EnvNoColor) != "",
	}
	if lvl, ok := logging.ParseLevel(os.Getenv(logging.EnvLogLevel)); ok {
		s.LogLevel = lvl
	}
	return s
}

// BindFlags registers the flags common to every tool
func (s *Settings) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.SchemaPath, "schema", s.SchemaPath, "Bundle schema YAML file (default: built-in schema)")
}

// BindValidateFlags registers flags specific to validation
func (s *Settings) BindValidateFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.NoColor, "no-color", s.NoColor, "Disable colored output")
	fs.BoolVar(&s.ShellSyntax, "shell-syntax", s.ShellSyntax, "Also check that bundled shell scripts parse")
}

// Schema loads the configured bundle schema, falling back to the default
func (s *Settings) Schema() (*bundle.Schema, error) {
	if s.SchemaPath == "" {
		return bundle.Default(), nil
	}
	return bundle.Load(s.SchemaPath)
}
