package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JT6820/TutorialTube/internal/session"
	"github.com/JT6820/TutorialTube/internal/types"
)

type stubBackend struct {
	err error
}

func (b stubBackend) Transcribe(context.Context, string) (*types.TranscriptionResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &types.TranscriptionResult{VideoInfo: types.VideoInfo{Title: "Video"}, Transcript: "t"}, nil
}

func (b stubBackend) GenerateTutorial(context.Context, types.TutorialRequest) (*types.TutorialResponse, error) {
	return &types.TutorialResponse{
		Tutorial: types.Tutorial{
			Title: "Build a React App",
			Steps: []types.Step{{StepNumber: 1, Title: "Install", Description: "Install Node."}},
		},
		Source: types.SourceLive,
	}, nil
}

func TestRunSavesMarkdown(t *testing.T) {
	dir := t.TempDir()
	s := session.New(stubBackend{})

	require.NoError(t, run(context.Background(), s, "https://youtu.be/abc", false, dir))

	var saved []string
	require.NoError(t, filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			saved = append(saved, path)
		}
		return err
	}))
	require.Len(t, saved, 1)
	assert.True(t, strings.HasSuffix(saved[0], "_build_a_react_app.md"), saved[0])

	data, err := os.ReadFile(saved[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "### Step 1: Install")
}

func TestRunReportsBackendError(t *testing.T) {
	s := session.New(stubBackend{err: errors.New("Invalid YouTube URL")})
	err := run(context.Background(), s, "https://example.com", false, "")
	require.EqualError(t, err, "Invalid YouTube URL")
	assert.Equal(t, session.StateError, s.View().State)
}

func TestRunEmptyURL(t *testing.T) {
	err := run(context.Background(), session.New(stubBackend{}), "  ", false, "")
	require.EqualError(t, err, "URL is required")
}

type fakeClipboard struct {
	available bool
	text      string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func (c *fakeClipboard) Available() bool { return c.available }

func TestClipboardFor(t *testing.T) {
	working := &fakeClipboard{available: true}
	missing := &fakeClipboard{available: false}

	assert.Nil(t, clipboardFor(false, working))
	assert.Nil(t, clipboardFor(true, missing))
	assert.Equal(t, working, clipboardFor(true, working))
}

func TestRunCopiesToClipboard(t *testing.T) {
	clip := &fakeClipboard{available: true}
	s := session.New(stubBackend{}, session.WithClipboard(clipboardFor(true, clip)))

	require.NoError(t, run(context.Background(), s, "https://youtu.be/abc", true, ""))
	assert.True(t, strings.HasPrefix(clip.text, "# Build a React App\n"))
	assert.True(t, s.View().Copied)
}
