package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMemUsage(t *testing.T) {
	assert.Contains(t, GetMemUsage(), "MiB")
	assert.Regexp(t, `^Alloc = \d+ MiB TotalAlloc = \d+ MiB Sys = \d+ MiB NumGC = \d+$`, GetMemUsage())
}
