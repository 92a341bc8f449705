package metrics

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var counters struct {
	TranscribeRequests atomic.Int64
	TutorialRequests   atomic.Int64
	ConvertRequests    atomic.Int64
	StreamSessions     atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	FallbackDecodes    atomic.Int64
}

var keys = []string{
	"transcribe_requests", "tutorial_requests", "convert_requests", "stream_sessions",
	"llm_calls", "llm_errors", "fallback_decodes",
}

func IncrTranscribe()    { counters.TranscribeRequests.Add(1) }
func IncrTutorial()      { counters.TutorialRequests.Add(1) }
func IncrConvert()       { counters.ConvertRequests.Add(1) }
func IncrStreamSession() { counters.StreamSessions.Add(1) }
func IncrLLMCall()       { counters.LLMCalls.Add(1) }
func IncrLLMError()      { counters.LLMErrors.Add(1) }
func IncrFallback()      { counters.FallbackDecodes.Add(1) }

// Snapshot returns the current value of every counter.
func Snapshot() map[string]int64 {
	return map[string]int64{
		"transcribe_requests": counters.TranscribeRequests.Load(),
		"tutorial_requests":   counters.TutorialRequests.Load(),
		"convert_requests":    counters.ConvertRequests.Load(),
		"stream_sessions":     counters.StreamSessions.Load(),
		"llm_calls":           counters.LLMCalls.Load(),
		"llm_errors":          counters.LLMErrors.Load(),
		"fallback_decodes":    counters.FallbackDecodes.Load(),
	}
}

// Format renders the counters as "name value" lines in a stable order.
func Format() string {
	m := Snapshot()
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
