package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/process"
)

const ffmpegBinary = "ffmpeg"

// Available reports whether ffmpeg can be resolved via PATH.
func Available() bool {
	return process.LookPath(ffmpegBinary)
}

// Extract uses ffmpeg to extract mono 16 kHz WAV audio from an input file
// (audio or video). Returns the path of the extracted file inside dir.
func Extract(ctx context.Context, inputPath, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	out := filepath.Join(dir, base+"_16k.wav")

	_, err := process.Run(ctx, process.Command{
		Binary: ffmpegBinary,
		Args: []string{
			"-y", "-i", inputPath,
			"-vn",
			"-ac", "1", "-ar", "16000",
			"-f", "wav",
			out,
		},
	})
	if err != nil {
		return "", errors.MediaToolFailed("extract", err)
	}
	return out, nil
}

// Slice cuts the [start, end) window (seconds) out of a WAV file into a
// uniquely named temp file inside dir. The caller is responsible for
// removing the returned file.
func Slice(ctx context.Context, inputPath string, start, end float64, dir string) (string, error) {
	if end <= start {
		return "", errors.Validation(fmt.Sprintf("invalid slice window [%g, %g)", start, end))
	}
	if dir == "" {
		dir = os.TempDir()
	}
	out := filepath.Join(dir, fmt.Sprintf("turn_%s.wav", uuid.New().String()))

	_, err := process.Run(ctx, process.Command{
		Binary: ffmpegBinary,
		Args: []string{
			"-y",
			"-ss", fmt.Sprintf("%.3f", start),
			"-to", fmt.Sprintf("%.3f", end),
			"-i", inputPath,
			"-ac", "1", "-ar", "16000",
			"-f", "wav",
			out,
		},
	})
	if err != nil {
		return "", errors.MediaToolFailed("slice", err)
	}
	return out, nil
}
