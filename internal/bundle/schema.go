// Package bundle describes which files make up a skill bundle: the files that
// must exist for validation and the files copied into the packaged archive.
package bundle

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// RoleManifest names the entry holding the SKILL.md manifest
	RoleManifest = "manifest"
	// RoleMetadata names the entry holding the package.json metadata
	RoleMetadata = "metadata"
)

// ErrInvalidSchema wraps every schema decoding or validation failure
var ErrInvalidSchema = errors.New("invalid bundle schema")

//go:embed schema.yaml
var defaultSchema []byte

// Entry binds a logical role to either a single file or a directory prefix
type Entry struct {
	Role     string `yaml:"role"`
	Path     string `yaml:"path,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Required bool   `yaml:"required,omitempty"`
	Include  bool   `yaml:"include,omitempty"`
}

// Schema is shared by the packager and the validator
type Schema struct {
	ManifestFields []string `yaml:"manifest_fields"`
	MetadataFields []string `yaml:"metadata_fields"`
	Entries        []Entry  `yaml:"entries"`
}

// Default returns the built-in schema
func Default() *Schema {
	s, err := Parse(defaultSchema)
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads a schema from a YAML file
func Load(file string) (*Schema, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML schema
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the structural rules every schema must satisfy
func (s *Schema) Validate() error {
	roles := make(map[string]bool, len(s.Entries))
	for i, e := range s.Entries {
		if e.Role == "" {
			return fmt.Errorf("%w: entry %d has no role", ErrInvalidSchema, i)
		}
		if roles[e.Role] {
			return fmt.Errorf("%w: duplicate role %q", ErrInvalidSchema, e.Role)
		}
		roles[e.Role] = true

		switch {
		case e.Path != "" && e.Prefix != "":
			return fmt.Errorf("%w: role %q sets both path and prefix", ErrInvalidSchema, e.Role)
		case e.Path != "":
			if err := checkRelative(e.Path); err != nil {
				return fmt.Errorf("%w: role %q: %v", ErrInvalidSchema, e.Role, err)
			}
			if strings.HasSuffix(e.Path, "/") {
				return fmt.Errorf("%w: role %q: path %q names a directory, use prefix", ErrInvalidSchema, e.Role, e.Path)
			}
		case e.Prefix != "":
			// Without the separator "scripts" would also match "scripts-extra/".
			if !strings.HasSuffix(e.Prefix, "/") {
				return fmt.Errorf("%w: role %q: prefix %q must end with \"/\"", ErrInvalidSchema, e.Role, e.Prefix)
			}
			if err := checkRelative(strings.TrimSuffix(e.Prefix, "/")); err != nil {
				return fmt.Errorf("%w: role %q: %v", ErrInvalidSchema, e.Role, err)
			}
			if e.Required {
				return fmt.Errorf("%w: role %q: only path entries can be required", ErrInvalidSchema, e.Role)
			}
		default:
			return fmt.Errorf("%w: role %q needs a path or a prefix", ErrInvalidSchema, e.Role)
		}
	}

	for _, role := range []string{RoleManifest, RoleMetadata} {
		if s.PathFor(role) == "" {
			return fmt.Errorf("%w: missing %q path entry", ErrInvalidSchema, role)
		}
	}
	return nil
}

func checkRelative(p string) error {
	if p == "" || strings.Contains(p, `\`) {
		return fmt.Errorf("%q is not a slash-separated path", p)
	}
	if path.IsAbs(p) || path.Clean(p) != p {
		return fmt.Errorf("%q must be a clean relative path", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("%q escapes the skill directory", p)
		}
	}
	return nil
}

// PathFor returns the file path bound to role, or "" if there is none
func (s *Schema) PathFor(role string) string {
	for _, e := range s.Entries {
		if e.Role == role {
			return e.Path
		}
	}
	return ""
}

// RequiredFiles lists the paths that must exist, in schema order
func (s *Schema) RequiredFiles() []string {
	var files []string
	for _, e := range s.Entries {
		if e.Required && e.Path != "" {
			files = append(files, e.Path)
		}
	}
	return files
}

// Includes reports whether the slash-separated relative path rel belongs in
// the archive. Prefixes are plain string-prefix tests, not globs.
func (s *Schema) Includes(rel string) bool {
	for _, e := range s.Entries {
		if !e.Include {
			continue
		}
		if e.Path != "" && rel == e.Path {
			return true
		}
		if e.Prefix != "" && strings.HasPrefix(rel, e.Prefix) {
			return true
		}
	}
	return false
}

// MayInclude reports whether any file below the slash-terminated directory
// dir could be admitted by Includes.
func (s *Schema) MayInclude(dir string) bool {
	for _, e := range s.Entries {
		if !e.Include {
			continue
		}
		if e.Path != "" && strings.HasPrefix(e.Path, dir) {
			return true
		}
		if e.Prefix != "" && (strings.HasPrefix(e.Prefix, dir) || strings.HasPrefix(dir, e.Prefix)) {
			return true
		}
	}
	return false
}
