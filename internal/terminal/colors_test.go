package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Line("Validating skill in: %s", "/tmp/demo")
	p.Rule()
	p.Pass("All required files present")
	p.Fail("Missing name in SKILL.md")
	p.Banner("done")

	want := strings.Join([]string{
		"Validating skill in: /tmp/demo",
		strings.Repeat("-", 40),
		"✅ All required files present",
		"❌ Missing name in SKILL.md",
		"done",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrinterDetectsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Pass("ok")
	assert.Equal(t, "✅ ok\n", buf.String())
}
