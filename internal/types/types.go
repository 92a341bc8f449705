package types

// Source values tag where an analysis or tutorial came from
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// Difficulty labels suggested to the model. They are not enforced.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// VideoInfo describes the video being converted
type VideoInfo struct {
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
}

// TranscriptionResult is the response of the transcribe endpoint
type TranscriptionResult struct {
	VideoInfo  VideoInfo `json:"videoInfo"`
	Summary    string    `json:"summary"`
	KeyTopics  []string  `json:"keyTopics"`
	Transcript string    `json:"transcript"`
	Source     string    `json:"source,omitempty"`
}

// TutorialRequest is the body of the generate-tutorial endpoint
type TutorialRequest struct {
	Transcript string   `json:"transcript"`
	VideoTitle string   `json:"videoTitle,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	KeyTopics  []string `json:"keyTopics,omitempty"`
}

// Tutorial is a structured step-by-step guide
type Tutorial struct {
	Title               string   `json:"title"`
	Difficulty          string   `json:"difficulty"`
	EstimatedTime       string   `json:"estimatedTime"`
	Description         string   `json:"description"`
	Prerequisites       []string `json:"prerequisites"`
	Materials           []string `json:"materials"`
	Steps               []Step   `json:"steps"`
	AdditionalResources []string `json:"additionalResources"`
}

// Step is a single instruction of a tutorial
type Step struct {
	StepNumber  int      `json:"stepNumber"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips,omitempty"`
}

// TutorialResponse is the response of the generate-tutorial endpoint
type TutorialResponse struct {
	Tutorial Tutorial `json:"tutorial"`
	Source   string   `json:"source,omitempty"`
}

// ConvertRequest is the body of the single-call convert endpoint
type ConvertRequest struct {
	YouTubeURL string `json:"youtubeUrl"`
}

// ConvertStep is the flattened step shape returned by the convert endpoint
type ConvertStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

// ConvertResponse is the response of the convert endpoint
type ConvertResponse struct {
	Tutorial   []ConvertStep `json:"tutorial"`
	VideoTitle string        `json:"videoTitle"`
	Source     string        `json:"source,omitempty"`
}
