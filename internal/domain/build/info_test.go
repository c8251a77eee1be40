package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := NewInfo("1.2.0", "abc123", "2026-10-01")

	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "1.2.0 (commit abc123, built 2026-10-01, "+runtime.Version()+")", info.String())
}
