package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes the transcript's segments as a JSON array of records
// {start, end, speaker, text}.
func WriteJSON(w io.Writer, t *Transcript) error {
	segments := t.Segments
	if segments == nil {
		segments = []Segment{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(segments); err != nil {
		return fmt.Errorf("encode transcript json: %w", err)
	}
	return nil
}

// SaveFiles writes <prefix>.srt and <prefix>.json next to each other.
// Returns the two paths written.
func SaveFiles(prefix string, t *Transcript) (srtPath, jsonPath string, err error) {
	srtPath = prefix + ".srt"
	jsonPath = prefix + ".json"

	srtFile, err := os.Create(srtPath)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", srtPath, err)
	}
	defer srtFile.Close()
	if err := WriteSRT(srtFile, t); err != nil {
		return "", "", err
	}

	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", jsonPath, err)
	}
	defer jsonFile.Close()
	if err := WriteJSON(jsonFile, t); err != nil {
		return "", "", err
	}

	return srtPath, jsonPath, nil
}
