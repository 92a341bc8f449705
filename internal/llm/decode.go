package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError reports a completion that could not be turned into the
// expected structure
type DecodeError struct {
	Target string
	Raw    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StripFences removes markdown code fences around a completion
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeJSON parses a completion into T. validate may be nil; a non-nil
// error from it is reported as a decode failure too.
func DecodeJSON[T any](target, raw string, validate func(*T) error) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(StripFences(raw)), &out); err != nil {
		var zero T
		return zero, &DecodeError{Target: target, Raw: raw, Err: err}
	}
	if validate != nil {
		if err := validate(&out); err != nil {
			var zero T
			return zero, &DecodeError{Target: target, Raw: raw, Err: err}
		}
	}
	return out, nil
}
