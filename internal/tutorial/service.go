package tutorial

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JT6820/TutorialTube/internal/llm"
	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/types"
	"github.com/JT6820/TutorialTube/internal/youtube"
)

// Input errors. Anything else returned by Service is an internal failure.
var (
	ErrURLRequired        = errors.New("url is required")
	ErrInvalidURL         = errors.New("invalid youtube url")
	ErrTranscriptRequired = errors.New("transcript is required")
)

// Service turns a video URL into an analysed transcript and a transcript
// into a tutorial, one completion per call
type Service struct {
	llm    llm.Completer
	strict bool
}

// NewService creates a tutorial service. With strict set, a completion that
// cannot be decoded is returned as an error instead of being replaced by
// the fallback constant.
func NewService(completer llm.Completer, strict bool) *Service {
	return &Service{
		llm:    completer,
		strict: strict,
	}
}

// Transcribe validates the URL and returns the mock video with an
// LLM-generated summary of its transcript
func (s *Service) Transcribe(ctx context.Context, rawURL string) (*types.TranscriptionResult, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil, ErrURLRequired
	}

	videoID := youtube.ExtractVideoID(url)
	if videoID == "" {
		return nil, ErrInvalidURL
	}

	slog.Info("transcribing video", slog.String("video_id", videoID))

	completion, err := s.llm.Complete(ctx, fmt.Sprintf(analysisPrompt, youtube.MockTranscript))
	if err != nil {
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}

	source := types.SourceLive
	analysis, err := DecodeAnalysis(completion)
	if err != nil {
		if s.strict {
			return nil, err
		}
		slog.Warn("analysis not decodable, using fallback",
			slog.String("video_id", videoID), slog.Any("error", err))
		metrics.IncrFallback()
		analysis = FallbackAnalysis()
		source = types.SourceFallback
	}

	return &types.TranscriptionResult{
		VideoInfo:  youtube.MockVideoInfo(),
		Summary:    analysis.Summary,
		KeyTopics:  []string(analysis.KeyTopics),
		Transcript: analysis.CleanedTranscript,
		Source:     source,
	}, nil
}

// Generate asks the model for a tutorial built from the transcript
func (s *Service) Generate(ctx context.Context, req types.TutorialRequest) (*types.TutorialResponse, error) {
	if req.Transcript == "" {
		return nil, ErrTranscriptRequired
	}

	prompt := fmt.Sprintf(tutorialPrompt,
		req.VideoTitle, req.Summary, strings.Join(req.KeyTopics, ", "), req.Transcript)

	completion, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate tutorial: %w", err)
	}

	source := types.SourceLive
	tutorial, err := DecodeTutorial(completion)
	if err != nil {
		if s.strict {
			return nil, err
		}
		slog.Warn("tutorial not decodable, using fallback", slog.Any("error", err))
		metrics.IncrFallback()
		tutorial = FallbackTutorial()
		source = types.SourceFallback
	}

	slog.Info("tutorial generated",
		slog.String("title", tutorial.Title),
		slog.Int("steps", len(tutorial.Steps)),
		slog.String("source", source),
	)

	return &types.TutorialResponse{Tutorial: tutorial, Source: source}, nil
}

// Convert runs both stages for a single URL and flattens the steps
func (s *Service) Convert(ctx context.Context, rawURL string) (*types.ConvertResponse, error) {
	result, err := s.Transcribe(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.Generate(ctx, RequestFor(result))
	if err != nil {
		return nil, err
	}

	steps := make([]types.ConvertStep, len(resp.Tutorial.Steps))
	for i, step := range resp.Tutorial.Steps {
		steps[i] = types.ConvertStep{
			Step:        step.StepNumber,
			Description: step.Description,
		}
	}

	source := resp.Source
	if result.Source == types.SourceFallback {
		source = types.SourceFallback
	}

	return &types.ConvertResponse{
		Tutorial:   steps,
		VideoTitle: result.VideoInfo.Title,
		Source:     source,
	}, nil
}

// RequestFor builds the tutorial request a front-end sends after transcribing
func RequestFor(result *types.TranscriptionResult) types.TutorialRequest {
	return types.TutorialRequest{
		Transcript: result.Transcript,
		VideoTitle: result.VideoInfo.Title,
		Summary:    result.Summary,
		KeyTopics:  result.KeyTopics,
	}
}
