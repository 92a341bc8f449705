package tutorial

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JT6820/TutorialTube/internal/llm"
	"github.com/JT6820/TutorialTube/internal/types"
)

// Analysis is the structure expected from the analysis completion
type Analysis struct {
	Summary           string    `json:"summary"`
	KeyTopics         topicList `json:"keyTopics"`
	CleanedTranscript string    `json:"cleanedTranscript"`
}

// topicList accepts either a JSON array or a comma-separated string.
// Models asked for "a comma-separated list" return both.
type topicList []string

func (l *topicList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = cleanList(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("keyTopics: want array or string, got %s", string(data))
	}
	*l = cleanList(strings.Split(joined, ","))
	return nil
}

// DecodeAnalysis parses and validates an analysis completion
func DecodeAnalysis(raw string) (Analysis, error) {
	return llm.DecodeJSON("analysis", raw, validateAnalysis)
}

func validateAnalysis(a *Analysis) error {
	a.Summary = strings.TrimSpace(a.Summary)
	a.CleanedTranscript = strings.TrimSpace(a.CleanedTranscript)
	if a.Summary == "" {
		return errors.New("summary is empty")
	}
	if a.CleanedTranscript == "" {
		return errors.New("cleanedTranscript is empty")
	}
	if a.KeyTopics == nil {
		a.KeyTopics = topicList{}
	}
	return nil
}

// DecodeTutorial parses and validates a tutorial completion
func DecodeTutorial(raw string) (types.Tutorial, error) {
	return llm.DecodeJSON("tutorial", raw, validateTutorial)
}

func validateTutorial(t *types.Tutorial) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is empty")
	}
	if len(t.Steps) == 0 {
		return errors.New("no steps")
	}
	for i, step := range t.Steps {
		if step.StepNumber <= 0 {
			return fmt.Errorf("step %d: stepNumber %d is not positive", i, step.StepNumber)
		}
		if strings.TrimSpace(step.Title) == "" {
			return fmt.Errorf("step %d: title is empty", i)
		}
		if strings.TrimSpace(step.Description) == "" {
			return fmt.Errorf("step %d: description is empty", i)
		}
	}

	t.Prerequisites = cleanList(t.Prerequisites)
	t.Materials = cleanList(t.Materials)
	t.AdditionalResources = cleanList(t.AdditionalResources)
	return nil
}

// cleanList trims entries and drops blanks. Never returns nil.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
