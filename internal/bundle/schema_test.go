package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := Default()

	assert.Equal(t, "SKILL.md", s.PathFor(RoleManifest))
	assert.Equal(t, "package.json", s.PathFor(RoleMetadata))
	assert.Equal(t, []string{"name", "version", "description"}, s.ManifestFields)
	assert.Equal(t, []string{"name", "version", "description", "keywords"}, s.MetadataFields)
	assert.Equal(t, []string{
		"SKILL.md",
		"README.md",
		"package.json",
		"LICENSE",
		"CONTRIBUTING.md",
		"scripts/package_skill.py",
		"scripts/install.sh",
	}, s.RequiredFiles())
}

func TestIncludes(t *testing.T) {
	s := Default()

	tests := []struct {
		rel  string
		want bool
	}{
		{"SKILL.md", true},
		{"README.md", true},
		{"package.json", true},
		{"LICENSE", true},
		{"CONTRIBUTING.md", true},
		{"src/a.txt", true},
		{"src/nested/deep.js", true},
		{"scripts/install.sh", true},
		{"notes/private.txt", false},
		{"docs/README.md", false},
		{"scripts-extra/evil.sh", false},
		{"srcx/a.txt", false},
		{"validate.py", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Includes(tt.rel), tt.rel)
	}
}

func TestMayInclude(t *testing.T) {
	s, err := Parse([]byte(`
entries:
  - {role: manifest, path: SKILL.md, include: true}
  - {role: metadata, path: package.json}
  - {role: docs, path: docs/guide/intro.md, include: true}
  - {role: source, prefix: src/lib/, include: true}
`))
	require.NoError(t, err)

	tests := []struct {
		dir  string
		want bool
	}{
		{"docs/", true},
		{"docs/guide/", true},
		{"docs/other/", false},
		{"src/", true},
		{"src/lib/", true},
		{"src/lib/deep/", true},
		{"src/test/", false},
		{"notes/", false},
		{"srcx/", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.MayInclude(tt.dir), tt.dir)
	}
	assert.False(t, Default().MayInclude("notes/"))
	assert.True(t, Default().MayInclude("scripts/"))
}

func TestValidateRejectsPrefixWithoutSeparator(t *testing.T) {
	_, err := Parse([]byte(`
entries:
  - {role: manifest, path: SKILL.md}
  - {role: metadata, path: package.json}
  - {role: scripts, prefix: scripts, include: true}
`))
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), `must end with "/"`)
}

func TestValidateRejectsBadEntries(t *testing.T) {
	tests := map[string]string{
		"both path and prefix": "  - {role: x, path: a, prefix: b/}\n",
		"neither":              "  - {role: x}\n",
		"escaping path":        "  - {role: x, path: ../secret}\n",
		"absolute path":        "  - {role: x, path: /etc/passwd}\n",
		"required prefix":      "  - {role: x, prefix: src/, required: true}\n",
		"duplicate role":       "  - {role: manifest, path: OTHER.md}\n",
		"no role":              "  - {path: a.txt}\n",
	}

	for name, extra := range tests {
		t.Run(name, func(t *testing.T) {
			data := "entries:\n  - {role: manifest, path: SKILL.md}\n  - {role: metadata, path: package.json}\n" + extra
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestValidateRequiresManifestAndMetadata(t *testing.T) {
	_, err := Parse([]byte("entries:\n  - {role: manifest, path: SKILL.md}\n"))
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), "metadata")
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("entries: [unclosed"))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
manifest_fields: [name]
entries:
  - {role: manifest, path: SKILL.md, required: true, include: true}
  - {role: metadata, path: package.json, include: true}
  - {role: assets, prefix: assets/, include: true}
`), 0644))

	s, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, s.ManifestFields)
	assert.Empty(t, s.MetadataFields)
	assert.Equal(t, []string{"SKILL.md"}, s.RequiredFiles())
	assert.True(t, s.Includes("assets/logo.png"))
	assert.False(t, s.Includes("src/a.txt"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
