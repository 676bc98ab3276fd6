package media

import (
	"os"

	"github.com/go-audio/wav"

	"github.com/skillsenselab/scribekit/errors"
)

// Duration returns the length of a WAV file in seconds, read from its header.
func Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.AudioDecodeFailed(path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	d, err := decoder.Duration()
	if err != nil {
		return 0, errors.AudioDecodeFailed(path, err)
	}
	return d.Seconds(), nil
}
