package transcript

import (
	"sort"
	"strings"
)

// Segment represents a speaker-attributed, time-aligned portion of a transcript.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Speaker is the identified speaker label.
	Speaker string `json:"speaker"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Transcript is an ordered collection of segments with source metadata.
type Transcript struct {
	// Source is the path of the audio the transcript was produced from.
	Source string `json:"source,omitempty"`
	// Language is the detected or requested language.
	Language string `json:"language,omitempty"`
	// Duration is the total audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Segments are the speaker turns in start-time order.
	Segments []Segment `json:"segments"`
}

// SortSegments orders segments by start time. The sort is stable so
// same-start segments keep their input order.
func SortSegments(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
}

// MergeAdjacent coalesces consecutive segments that share a speaker and are
// separated by a gap of at most maxGap seconds. Segments must already be
// sorted by start time.
func MergeAdjacent(segments []Segment, maxGap float64) []Segment {
	if len(segments) == 0 {
		return nil
	}
	merged := make([]Segment, 0, len(segments))
	current := segments[0]
	for _, seg := range segments[1:] {
		gap := seg.Start - current.End
		if seg.Speaker == current.Speaker && gap <= maxGap {
			if seg.End > current.End {
				current.End = seg.End
			}
			current.Text = joinText(current.Text, seg.Text)
			continue
		}
		merged = append(merged, current)
		current = seg
	}
	return append(merged, current)
}

func joinText(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
