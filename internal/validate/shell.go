package validate

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CheckShellSyntax parses every bundled .sh file as bash and fails on the
// first script that does not parse.
func (v *Validator) CheckShellSyntax() Result {
	var scripts []string
	err := filepath.WalkDir(v.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".sh") {
			return nil
		}
		rel, err := filepath.Rel(v.Dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if v.Schema.Includes(rel) {
			scripts = append(scripts, rel)
		}
		return nil
	})
	if err != nil {
		return fail("shell", "Cannot scan shell scripts: %v", err)
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	for _, rel := range scripts {
		if err := parseScript(parser, v.path(rel), rel); err != nil {
			return fail("shell", "Shell syntax error in %s", err)
		}
	}

	if len(scripts) == 0 {
		return pass("shell", "No shell scripts to check")
	}
	return pass("shell", "Shell scripts parse: %s", strings.Join(scripts, ", "))
}

func parseScript(parser *syntax.Parser, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = parser.Parse(f, name)
	return err
}
