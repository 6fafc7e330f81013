package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestPrintBuildData_Injected(t *testing.T) {
	origV, origD, origC := Version, Date, Commit
	t.Cleanup(func() { Version, Date, Commit = origV, origD, origC })

	Version, Date, Commit = "v1.2.0", "2026-10-18", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-18\nBuild commit: abc123\n", buf.String())
}
