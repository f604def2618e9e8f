package skills

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads the manifest of the skill rooted at dir
func Load(dir string) (Skill, error) {
	return LoadManifest(dir, ManifestFile)
}

// LoadManifest reads the manifest stored at the skill-relative path rel.
// A missing manifest is reported as ErrMissingManifest.
func LoadManifest(dir, rel string) (Skill, error) {
	location := filepath.Join(dir, filepath.FromSlash(rel))

	content, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Skill{}, fmt.Errorf("%w: %s not found in %s", ErrMissingManifest, rel, dir)
		}
		return Skill{}, fmt.Errorf("read manifest: %w", err)
	}

	return Skill{
		Dir:         dir,
		Location:    location,
		Content:     string(content),
		Frontmatter: ParseFrontmatter(string(content)),
	}, nil
}

// NameOr returns the manifest name, or fallback when none is declared
func (s Skill) NameOr(fallback string) string {
	if name, ok := s.Frontmatter.Name(); ok {
		return name
	}
	return fallback
}
