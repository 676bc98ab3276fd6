package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/skillsenselab/scribekit/pipeline"
)

// RunCmd transcribes one local recording and writes the transcript files
// next to it (or at --output).
type RunCmd struct {
	Audio       string  `arg:"" help:"Path to the audio or video file." type:"path"`
	Output      string  `help:"Output prefix; writes <prefix>.srt and <prefix>.json. Defaults to the input path without extension." short:"o" type:"path"`
	Language    string  `help:"Language hint for transcription (empty = auto-detect)." short:"l"`
	ModelDir    string  `help:"Override the local Whisper model directory." type:"path"`
	NumSpeakers int     `help:"Exact number of speakers, when known." placeholder:"N"`
	MergeGap    float64 `help:"Merge consecutive same-speaker segments closer than this many seconds." default:"-1"`
	Quiet       bool    `help:"Disable the progress bar." short:"q"`
}

func (r *RunCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if r.ModelDir != "" {
		cfg.Transcription.Whisper.ModelDir = r.ModelDir
	}

	transcriber, err := buildTranscriber(ctx, cfg)
	if err != nil {
		return err
	}
	diarizer, err := buildDiarizer(ctx, cfg)
	if err != nil {
		return err
	}

	opts := pipelineOptions(cfg)
	if r.Language != "" {
		opts.Language = r.Language
	}
	if r.NumSpeakers > 0 {
		opts.NumSpeakers = r.NumSpeakers
	}
	if r.MergeGap >= 0 {
		opts.MergeGap = r.MergeGap
	}

	var bar *progressbar.ProgressBar
	if !r.Quiet {
		bar = progressbar.NewOptions(1000,
			progressbar.OptionSetDescription("transcribing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		opts.Progress = func(fraction float64, eta time.Duration) {
			_ = bar.Set(int(fraction * 1000))
			if eta > 0 {
				bar.Describe(fmt.Sprintf("transcribing (eta %s)", eta.Round(time.Second)))
			}
		}
	}

	prefix := r.Output
	if prefix == "" {
		prefix = strings.TrimSuffix(r.Audio, filepath.Ext(r.Audio))
	}

	runner := pipeline.NewRunner(transcriber, diarizer)
	result, err := runner.RunToFiles(ctx, r.Audio, prefix, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s.srt and %s.json (%d segments, %.1fs of audio)\n",
		prefix, prefix, len(result.Segments), result.Duration)
	return nil
}
