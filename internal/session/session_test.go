package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JT6820/TutorialTube/internal/export"
	"github.com/JT6820/TutorialTube/internal/types"
)

type fakeBackend struct {
	result      *types.TranscriptionResult
	tutorial    *types.TutorialResponse
	transErr    error
	tutErr      error
	gotURL      string
	gotRequest  types.TutorialRequest
	block       chan struct{}
	transcribed int
}

func (f *fakeBackend) Transcribe(_ context.Context, url string) (*types.TranscriptionResult, error) {
	f.gotURL = url
	f.transcribed++
	if f.block != nil {
		<-f.block
	}
	return f.result, f.transErr
}

func (f *fakeBackend) GenerateTutorial(_ context.Context, req types.TutorialRequest) (*types.TutorialResponse, error) {
	f.gotRequest = req
	return f.tutorial, f.tutErr
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func newBackend() *fakeBackend {
	return &fakeBackend{
		result: &types.TranscriptionResult{
			VideoInfo:  types.VideoInfo{Title: "Video", Duration: "15:30"},
			Summary:    "summary",
			KeyTopics:  []string{"a", "b"},
			Transcript: "transcript",
			Source:     types.SourceLive,
		},
		tutorial: &types.TutorialResponse{
			Tutorial: types.Tutorial{
				Title: "Tutorial",
				Steps: []types.Step{{StepNumber: 1, Title: "Do", Description: "It"}},
			},
			Source: types.SourceFallback,
		},
	}
}

func TestHappyPath(t *testing.T) {
	backend := newBackend()
	var states []State
	s := New(backend, WithOnChange(func(v View) { states = append(states, v.State) }))

	assert.Equal(t, StateIdle, s.View().State)

	require.NoError(t, s.Transcribe(context.Background(), "  https://youtu.be/abc  "))
	assert.Equal(t, "https://youtu.be/abc", backend.gotURL)
	assert.Equal(t, StateTranscribed, s.View().State)

	require.NoError(t, s.GenerateTutorial(context.Background()))
	assert.Equal(t, types.TutorialRequest{
		Transcript: "transcript",
		VideoTitle: "Video",
		Summary:    "summary",
		KeyTopics:  []string{"a", "b"},
	}, backend.gotRequest)

	v := s.View()
	assert.Equal(t, StateTutorialReady, v.State)
	require.NotNil(t, v.Tutorial)
	assert.Equal(t, "Tutorial", v.Tutorial.Title)
	assert.Equal(t, types.SourceFallback, v.TutorialSource)

	assert.Equal(t, []State{StateTranscribing, StateTranscribed, StateGenerating, StateTutorialReady}, states)
}

func TestTranscribeEmptyURLIsNoop(t *testing.T) {
	backend := newBackend()
	s := New(backend)

	assert.ErrorIs(t, s.Transcribe(context.Background(), "   "), ErrEmptyURL)
	assert.Equal(t, StateIdle, s.View().State)
	assert.Zero(t, backend.transcribed)
}

func TestTranscribeFailure(t *testing.T) {
	backend := newBackend()
	backend.transErr = errors.New("Failed to transcribe video")
	s := New(backend)

	err := s.Transcribe(context.Background(), "https://youtu.be/abc")
	require.Error(t, err)

	v := s.View()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "Failed to transcribe video", v.Error)
	assert.Nil(t, v.Result)

	// error is not terminal
	backend.transErr = nil
	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	assert.Equal(t, StateTranscribed, s.View().State)
	assert.Empty(t, s.View().Error)
}

func TestGenerateFailureKeepsTranscription(t *testing.T) {
	backend := newBackend()
	backend.tutErr = errors.New("Failed to generate tutorial")
	s := New(backend)

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.Error(t, s.GenerateTutorial(context.Background()))

	v := s.View()
	assert.Equal(t, StateError, v.State)
	assert.NotNil(t, v.Result)
	assert.Nil(t, v.Tutorial)

	backend.tutErr = nil
	require.NoError(t, s.GenerateTutorial(context.Background()))
	assert.Equal(t, StateTutorialReady, s.View().State)
}

func TestGenerateWithoutTranscription(t *testing.T) {
	s := New(newBackend())
	assert.ErrorIs(t, s.GenerateTutorial(context.Background()), ErrNoTranscription)
	assert.Equal(t, StateIdle, s.View().State)
}

func TestNewTranscriptionClearsTutorial(t *testing.T) {
	s := New(newBackend())
	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.NoError(t, s.GenerateTutorial(context.Background()))
	require.NotNil(t, s.View().Tutorial)

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/def"))
	v := s.View()
	assert.Nil(t, v.Tutorial)
	assert.Equal(t, "https://youtu.be/def", v.URL)
}

func TestRejectsConcurrentSubmission(t *testing.T) {
	backend := newBackend()
	backend.block = make(chan struct{})

	started := make(chan struct{})
	s := New(backend, WithOnChange(func(v View) {
		if v.State == StateTranscribing {
			close(started)
		}
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	}()

	<-started
	assert.True(t, s.View().InFlight())
	assert.ErrorIs(t, s.Transcribe(context.Background(), "https://youtu.be/other"), ErrBusy)
	assert.ErrorIs(t, s.GenerateTutorial(context.Background()), ErrBusy)

	close(backend.block)
	wg.Wait()

	assert.Equal(t, 1, backend.transcribed)
	assert.Equal(t, StateTranscribed, s.View().State)
}

func TestCopyTutorial(t *testing.T) {
	clip := &fakeClipboard{}
	s := New(newBackend(), WithClipboard(clip))

	var reset func()
	var delay time.Duration
	s.afterFunc = func(d time.Duration, f func()) *time.Timer {
		delay, reset = d, f
		return time.NewTimer(time.Hour)
	}

	_, err := s.CopyTutorial()
	assert.ErrorIs(t, err, ErrNoTutorial)

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.NoError(t, s.GenerateTutorial(context.Background()))

	text, err := s.CopyTutorial()
	require.NoError(t, err)
	assert.Equal(t, export.Markdown(*s.View().Tutorial), text)
	assert.Equal(t, text, clip.text)
	assert.True(t, s.View().Copied)
	assert.Equal(t, CopiedFor, delay)

	reset()
	assert.False(t, s.View().Copied)
}

func TestCopyTutorialStaleTimer(t *testing.T) {
	s := New(newBackend(), WithClipboard(&fakeClipboard{}))

	var resets []func()
	s.afterFunc = func(_ time.Duration, f func()) *time.Timer {
		resets = append(resets, f)
		return time.NewTimer(time.Hour)
	}

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.NoError(t, s.GenerateTutorial(context.Background()))

	_, err := s.CopyTutorial()
	require.NoError(t, err)
	_, err = s.CopyTutorial()
	require.NoError(t, err)
	require.Len(t, resets, 2)

	// the first timer firing late must not clear the second copy
	resets[0]()
	assert.True(t, s.View().Copied)
	resets[1]()
	assert.False(t, s.View().Copied)
}

func TestCopyTutorialClipboardError(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	s := New(newBackend(), WithClipboard(clip))

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.NoError(t, s.GenerateTutorial(context.Background()))

	text, err := s.CopyTutorial()
	require.Error(t, err)
	assert.NotEmpty(t, text)
	assert.False(t, s.View().Copied)
}
