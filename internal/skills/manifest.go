package skills

import (
	"strings"
)

const delimiter = "---"

type scanState int

const (
	beforeFrontmatter scanState = iota
	inFrontmatter
	afterFrontmatter
)

// ParseFrontmatter reads the key: value block delimited by "---" at the start
// of content. Malformed content is reported through Status, never as an error.
func ParseFrontmatter(content string) Frontmatter {
	fm := Frontmatter{fields: map[string]string{}}

	lines := strings.Split(content, "\n")
	state := beforeFrontmatter
	for i := 0; i < len(lines) && state != afterFrontmatter; i++ {
		line := lines[i]
		if state == beforeFrontmatter {
			if !strings.HasPrefix(line, delimiter) {
				break
			}
			line = line[len(delimiter):]
			state = inFrontmatter
		}
		// The closing delimiter may sit mid-line; what precedes it still counts.
		if end := strings.Index(line, delimiter); end >= 0 {
			line = line[:end]
			state = afterFrontmatter
		}
		fm.addLine(line)
	}

	switch state {
	case beforeFrontmatter:
		fm.Status = StatusNoFrontmatter
	case inFrontmatter:
		fm.Status = StatusUnterminated
	default:
		fm.Status = StatusValid
		return fm
	}
	fm.fields = map[string]string{}
	return fm
}

func (f *Frontmatter) addLine(line string) {
	line = strings.TrimSpace(line)
	key, value, ok := strings.Cut(line, ":")
	if !ok || key == "" || strings.ContainsAny(key, " \t") {
		return
	}
	if _, seen := f.fields[key]; seen {
		return
	}
	f.fields[key] = unquote(strings.TrimSpace(value))
}

// unquote strips one matching pair of surrounding single or double quotes
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Valid reports whether both frontmatter delimiters were found
func (f Frontmatter) Valid() bool {
	return f.Status == StatusValid
}

// Err maps the scan status to ErrNoFrontmatter or ErrUnterminatedFrontmatter
func (f Frontmatter) Err() error {
	switch f.Status {
	case StatusNoFrontmatter:
		return ErrNoFrontmatter
	case StatusUnterminated:
		return ErrUnterminatedFrontmatter
	}
	return nil
}

// Get returns the value of the first line declaring key. A key whose first
// declaration is empty is reported as absent.
func (f Frontmatter) Get(key string) (string, bool) {
	v := f.fields[key]
	return v, v != ""
}

func (f Frontmatter) Name() (string, bool)        { return f.Get("name") }
func (f Frontmatter) Version() (string, bool)     { return f.Get("version") }
func (f Frontmatter) Description() (string, bool) { return f.Get("description") }

// Missing returns the keys absent from the frontmatter, in the given order
func (f Frontmatter) Missing(keys []string) []string {
	var missing []string
	for _, k := range keys {
		if _, ok := f.Get(k); !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
