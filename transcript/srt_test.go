package transcript

import (
	"strings"
	"testing"
)

func TestFormatTimestamp_Zero(t *testing.T) {
	if got := FormatTimestamp(0); got != "00:00:00,000" {
		t.Errorf("expected 00:00:00,000, got %q", got)
	}
}

func TestFormatTimestamp_Values(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.001, "00:00:00,001"},
		{1.5, "00:00:01,500"},
		{59.999, "00:00:59,999"},
		{60, "00:01:00,000"},
		{61.25, "00:01:01,250"},
		{3599.5, "00:59:59,500"},
		{3600, "01:00:00,000"},
		{3723.042, "01:02:03,042"},
		{36000.5, "10:00:00,500"},
		{-5, "00:00:00,000"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestWriteSRT_SpeakerPrefix(t *testing.T) {
	tr := &Transcript{
		Segments: []Segment{
			{Start: 0, End: 1.5, Speaker: "SPEAKER_00", Text: "Hello there."},
			{Start: 2, End: 3.042, Speaker: "SPEAKER_01", Text: "Hi."},
		},
	}
	var buf strings.Builder
	if err := WriteSRT(&buf, tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,500\n" +
		"[SPEAKER_00] Hello there.\n" +
		"\n" +
		"2\n" +
		"00:00:02,000 --> 00:00:03,042\n" +
		"[SPEAKER_01] Hi.\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("unexpected srt output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteSRT_NoSpeaker(t *testing.T) {
	tr := &Transcript{
		Segments: []Segment{{Start: 0, End: 1, Text: "untagged"}},
	}
	var buf strings.Builder
	if err := WriteSRT(&buf, tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "[") {
		t.Errorf("expected no speaker brackets, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "untagged") {
		t.Errorf("expected cue text, got:\n%s", buf.String())
	}
}

func TestWriteSRT_Empty(t *testing.T) {
	var buf strings.Builder
	if err := WriteSRT(&buf, &Transcript{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}
