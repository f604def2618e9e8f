package skills

// ManifestFile is the file name of a skill manifest
const ManifestFile = "SKILL.md"

// Status describes how far the frontmatter scan got
type Status int

const (
	// StatusValid means both delimiters were found
	StatusValid Status = iota
	// StatusNoFrontmatter means the text does not start with a delimiter
	StatusNoFrontmatter
	// StatusUnterminated means the closing delimiter is missing
	StatusUnterminated
)

// Frontmatter is the typed result of reading a manifest's frontmatter block
type Frontmatter struct {
	Status Status
	fields map[string]string
}

// Skill represents a loaded skill manifest
type Skill struct {
	Dir         string
	Location    string
	Content     string
	Frontmatter Frontmatter
}
