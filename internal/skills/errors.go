package skills

import "errors"

var (
	ErrMissingManifest         = errors.New("missing manifest")
	ErrNoFrontmatter           = errors.New("missing YAML frontmatter")
	ErrUnterminatedFrontmatter = errors.New("invalid YAML frontmatter: missing closing delimiter")
)
