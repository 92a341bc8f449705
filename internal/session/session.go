package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/JT6820/TutorialTube/internal/export"
	"github.com/JT6820/TutorialTube/internal/tutorial"
	"github.com/JT6820/TutorialTube/internal/types"
)

// State is the position of a session in the convert flow
type State string

const (
	StateIdle          State = "idle"
	StateTranscribing  State = "transcribing"
	StateTranscribed   State = "transcribed"
	StateGenerating    State = "generating-tutorial"
	StateTutorialReady State = "tutorial-ready"
	StateError         State = "error"
)

// CopiedFor is how long the "copied" acknowledgment stays set
const CopiedFor = 2 * time.Second

var (
	ErrEmptyURL        = errors.New("session: url is empty")
	ErrBusy            = errors.New("session: a request is already in flight")
	ErrNoTranscription = errors.New("session: nothing transcribed yet")
	ErrNoTutorial      = errors.New("session: no tutorial to copy")
)

// Backend performs the two network calls a session depends on
type Backend interface {
	Transcribe(ctx context.Context, url string) (*types.TranscriptionResult, error)
	GenerateTutorial(ctx context.Context, req types.TutorialRequest) (*types.TutorialResponse, error)
}

// View is a snapshot of the session shown to the user
type View struct {
	State          State                      `json:"state"`
	URL            string                     `json:"url,omitempty"`
	Result         *types.TranscriptionResult `json:"result,omitempty"`
	Tutorial       *types.Tutorial            `json:"tutorial,omitempty"`
	TutorialSource string                     `json:"tutorialSource,omitempty"`
	Error          string                     `json:"error,omitempty"`
	Copied         bool                       `json:"copied,omitempty"`
}

// InFlight reports whether the trigger controls should be disabled
func (v View) InFlight() bool {
	return v.State == StateTranscribing || v.State == StateGenerating
}

// Session holds the view state of one user and moves it between states as
// backend calls complete
type Session struct {
	backend   Backend
	clipboard export.Clipboard
	onChange  func(View)
	afterFunc func(time.Duration, func()) *time.Timer

	mu        sync.Mutex
	view      View
	copyTimer *time.Timer
	copyEpoch int
}

// Option customizes a Session
type Option func(*Session)

// WithClipboard sets where CopyTutorial writes
func WithClipboard(c export.Clipboard) Option {
	return func(s *Session) {
		s.clipboard = c
	}
}

// WithOnChange registers an observer called with every new view. It runs
// outside the session lock.
func WithOnChange(fn func(View)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// New creates an idle session
func New(backend Backend, opts ...Option) *Session {
	s := &Session{
		backend:   backend,
		afterFunc: time.AfterFunc,
		view:      View{State: StateIdle},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns the current snapshot
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Transcribe submits a URL. The previous result, tutorial and error are
// cleared before the call starts.
func (s *Session) Transcribe(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	if err := s.begin(func(v *View) error {
		*v = View{State: StateTranscribing, URL: url}
		return nil
	}); err != nil {
		return err
	}

	result, err := s.backend.Transcribe(ctx, url)

	s.update(func(v *View) {
		if err != nil {
			v.State = StateError
			v.Error = err.Error()
			return
		}
		v.State = StateTranscribed
		v.Result = result
	})
	return err
}

// GenerateTutorial asks for a tutorial for the current transcription. On
// failure the transcription is kept so the user can try again.
func (s *Session) GenerateTutorial(ctx context.Context) error {
	var req types.TutorialRequest
	if err := s.begin(func(v *View) error {
		if v.Result == nil {
			return ErrNoTranscription
		}
		req = tutorial.RequestFor(v.Result)
		v.State = StateGenerating
		v.Error = ""
		return nil
	}); err != nil {
		return err
	}

	resp, err := s.backend.GenerateTutorial(ctx, req)

	s.update(func(v *View) {
		if err != nil {
			v.State = StateError
			v.Error = err.Error()
			return
		}
		t := resp.Tutorial
		v.State = StateTutorialReady
		v.Tutorial = &t
		v.TutorialSource = resp.Source
	})
	return err
}

// CopyTutorial writes the Markdown rendering of the tutorial to the
// clipboard and sets the copied flag for CopiedFor
func (s *Session) CopyTutorial() (string, error) {
	s.mu.Lock()
	if s.view.Tutorial == nil {
		s.mu.Unlock()
		return "", ErrNoTutorial
	}
	text := export.Markdown(*s.view.Tutorial)
	s.mu.Unlock()

	if s.clipboard != nil {
		if err := s.clipboard.WriteAll(text); err != nil {
			return text, err
		}
	}

	s.update(func(v *View) {
		v.Copied = true
		s.copyEpoch++
		epoch := s.copyEpoch
		if s.copyTimer != nil {
			s.copyTimer.Stop()
		}
		s.copyTimer = s.afterFunc(CopiedFor, func() {
			s.update(func(v *View) {
				if s.copyEpoch == epoch {
					v.Copied = false
				}
			})
		})
	})
	return text, nil
}

// begin applies fn to the view unless a call is already in flight or fn
// rejects the current view
func (s *Session) begin(fn func(*View) error) error {
	s.mu.Lock()
	if s.view.InFlight() {
		s.mu.Unlock()
		return ErrBusy
	}
	if err := fn(&s.view); err != nil {
		s.mu.Unlock()
		return err
	}
	view := s.view
	s.mu.Unlock()

	s.notify(view)
	return nil
}

func (s *Session) update(fn func(*View)) {
	s.mu.Lock()
	fn(&s.view)
	view := s.view
	s.mu.Unlock()

	s.notify(view)
}

func (s *Session) notify(v View) {
	if s.onChange != nil {
		s.onChange(v)
	}
}
