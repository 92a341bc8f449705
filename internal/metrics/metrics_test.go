package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementsShowInSnapshot(t *testing.T) {
	before := Snapshot()

	IncrLLMCall()
	IncrLLMCall()
	IncrFallback()

	after := Snapshot()
	assert.Equal(t, before["llm_calls"]+2, after["llm_calls"])
	assert.Equal(t, before["fallback_decodes"]+1, after["fallback_decodes"])
}

func TestFormatStableOrder(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Format()), "\n")
	assert.Len(t, lines, len(keys))
	for i, k := range keys {
		assert.True(t, strings.HasPrefix(lines[i], k+" "), "line %d = %q", i, lines[i])
	}
}
