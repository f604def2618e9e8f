// Package validate checks that a skill directory is ready for publication.
//
// Every check runs independently and reports a Result instead of an error,
// so a single run surfaces all problems at once.
package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wallacegibbon/skillkit/internal/bundle"
	"github.com/wallacegibbon/skillkit/internal/skills"
	"github.com/wallacegibbon/skillkit/internal/terminal"
)

const (
	passBanner = "🎉 All validations passed! Skill is ready for publication."
	failBanner = "💥 Some validations failed. Please fix the issues before publishing."
)

// Result is the outcome of one check
type Result struct {
	Check   string
	OK      bool
	Message string
}

func pass(check, format string, args ...any) Result {
	return Result{Check: check, OK: true, Message: fmt.Sprintf(format, args...)}
}

func fail(check, format string, args ...any) Result {
	return Result{Check: check, Message: fmt.Sprintf(format, args...)}
}

// Validator runs bundle checks against one skill directory
type Validator struct {
	Dir    string
	Schema *bundle.Schema

	// ShellSyntax adds the shell script parse check to Run
	ShellSyntax bool
}

// New creates a Validator; a nil schema selects the default one
func New(dir string, schema *bundle.Schema) *Validator {
	if schema == nil {
		schema = bundle.Default()
	}
	return &Validator{Dir: dir, Schema: schema}
}

// Checks returns the checks Run executes, in order
func (v *Validator) Checks() []func() Result {
	checks := []func() Result{
		v.CheckStructure,
		v.CheckManifest,
		v.CheckMetadata,
	}
	if v.ShellSyntax {
		checks = append(checks, v.CheckShellSyntax)
	}
	return checks
}

// Run executes every check, printing one line per check, and reports whether
// all of them passed. A failing check never prevents later ones from running.
func (v *Validator) Run(p *terminal.Printer) bool {
	p.Line("Validating skill in: %s", v.Dir)
	p.Rule()

	allPassed := true
	for _, check := range v.Checks() {
		res := check()
		if res.OK {
			p.Pass(res.Message)
		} else {
			p.Fail(res.Message)
			allPassed = false
		}
	}

	p.Rule()
	if allPassed {
		p.Banner(passBanner)
	} else {
		p.Banner(failBanner)
	}
	return allPassed
}

// CheckStructure verifies that every required file exists
func (v *Validator) CheckStructure() Result {
	var missing []string
	for _, rel := range v.Schema.RequiredFiles() {
		if _, err := os.Stat(v.path(rel)); err != nil {
			missing = append(missing, rel)
		}
	}
	if len(missing) > 0 {
		return fail("structure", "Missing required files: %s", strings.Join(missing, ", "))
	}
	return pass("structure", "All required files present")
}

// CheckManifest verifies the manifest frontmatter and its required fields
func (v *Validator) CheckManifest() Result {
	rel := v.Schema.PathFor(bundle.RoleManifest)
	content, err := os.ReadFile(v.path(rel))
	if err != nil {
		return fail("manifest", "Cannot read %s: %v", rel, err)
	}

	fm := skills.ParseFrontmatter(string(content))
	switch fm.Status {
	case skills.StatusNoFrontmatter:
		return fail("manifest", "Missing YAML frontmatter in %s", rel)
	case skills.StatusUnterminated:
		return fail("manifest", "Invalid YAML frontmatter in %s", rel)
	}

	for _, field := range v.Schema.ManifestFields {
		if _, ok := fm.Get(field); !ok {
			return fail("manifest", "Missing %s in %s", field, rel)
		}
	}

	name, _ := fm.Name()
	version, _ := fm.Version()
	return pass("manifest", "Skill manifest valid: %s v%s", name, version)
}

// CheckMetadata verifies that the metadata file is a JSON object holding
// every required key. A parse failure is reported on its own.
func (v *Validator) CheckMetadata() Result {
	rel := v.Schema.PathFor(bundle.RoleMetadata)
	content, err := os.ReadFile(v.path(rel))
	if err != nil {
		return fail("metadata", "Cannot read %s: %v", rel, err)
	}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fail("metadata", "Invalid JSON in %s: %v", rel, describeJSONError(content, err))
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return fail("metadata", "%s must contain a JSON object", rel)
	}

	var missing []string
	for _, field := range v.Schema.MetadataFields {
		if _, ok := obj[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fail("metadata", "Missing required fields in %s: %s", rel, strings.Join(missing, ", "))
	}
	return pass("metadata", "%s valid", rel)
}

func (v *Validator) path(rel string) string {
	return filepath.Join(v.Dir, filepath.FromSlash(rel))
}

// describeJSONError adds a line and column to syntax errors
func describeJSONError(content []byte, err error) string {
	serr, ok := err.(*json.SyntaxError)
	if !ok {
		return err.Error()
	}
	line, col := 1, 1
	for _, b := range content[:min(int(serr.Offset), len(content))] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%v (line %d, column %d)", serr, line, col)
}
