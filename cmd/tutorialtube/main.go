// Command tutorialtube converts a YouTube URL into a tutorial through a
// running Tutorial Tube server and prints it as Markdown.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/JT6820/TutorialTube/internal/client"
	"github.com/JT6820/TutorialTube/internal/export"
	"github.com/JT6820/TutorialTube/internal/logging"
	"github.com/JT6820/TutorialTube/internal/session"
	"github.com/JT6820/TutorialTube/internal/types"
)

func main() {
	var (
		serverURL = flag.String("server", env.Str("TUTORIALTUBE_SERVER", "http://localhost:3000"), "Tutorial Tube server URL")
		timeout   = flag.Duration("timeout", 2*time.Minute, "per-request timeout")
		copyOut   = flag.Bool("copy", false, "copy the Markdown tutorial to the clipboard")
		outDir    = flag.String("out", "", "also save the Markdown tutorial under this directory")
		logLevel  = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tutorialtube [flags] <youtube-url>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, _ := logging.Setup(*logLevel, true, nil)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var opts []session.Option
	clip := clipboardFor(*copyOut, export.SystemClipboard{})
	if clip != nil {
		opts = append(opts, session.WithClipboard(clip))
	} else if *copyOut {
		logger.Warn("no clipboard utility found, skipping copy")
	}
	opts = append(opts, session.WithOnChange(func(v session.View) {
		logger.Debug("state changed", slog.String("state", string(v.State)))
		switch v.State {
		case session.StateTranscribing:
			fmt.Fprintln(os.Stderr, "Transcribing...")
		case session.StateTranscribed:
			fmt.Fprintf(os.Stderr, "%s (%s)\n%s\n", v.Result.VideoInfo.Title, v.Result.VideoInfo.Duration, v.Result.Summary)
		case session.StateGenerating:
			fmt.Fprintln(os.Stderr, "Generating tutorial...")
		}
	}))

	s := session.New(client.New(*serverURL, *timeout), opts...)
	if err := run(context.Background(), s, flag.Arg(0), clip != nil, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// availableClipboard is a clipboard that can tell whether it works here
type availableClipboard interface {
	export.Clipboard
	Available() bool
}

// clipboardFor returns nil unless a copy was requested and clip is usable
func clipboardFor(requested bool, clip availableClipboard) export.Clipboard {
	if !requested || !clip.Available() {
		return nil
	}
	return clip
}

// run converts url and prints the Markdown. copyOut must only be set when
// s has a clipboard attached.
func run(ctx context.Context, s *session.Session, url string, copyOut bool, outDir string) error {
	if err := s.Transcribe(ctx, url); err != nil {
		if errors.Is(err, session.ErrEmptyURL) {
			return errors.New("URL is required")
		}
		return err
	}
	if err := s.GenerateTutorial(ctx); err != nil {
		return err
	}

	v := s.View()
	if v.TutorialSource == types.SourceFallback {
		fmt.Fprintln(os.Stderr, "warning: the model reply could not be used, showing the sample tutorial")
	}

	text := export.Markdown(*v.Tutorial)
	if copyOut {
		if _, err := s.CopyTutorial(); err != nil {
			return fmt.Errorf("copy tutorial: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Copied!")
	}

	if outDir != "" {
		path, err := export.SaveMarkdown(outDir, v.Tutorial.Title, text, time.Now())
		if err != nil {
			return fmt.Errorf("save tutorial: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved %s\n", path)
	}

	fmt.Print(text)
	return nil
}

