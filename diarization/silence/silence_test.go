package silence

import (
	"testing"
)

const sampleStderr = `
[silencedetect @ 0x55d] silence_start: 4.0
[silencedetect @ 0x55d] silence_end: 6.0 | silence_duration: 2.0
[silencedetect @ 0x55d] silence_start: 8.5
[silencedetect @ 0x55d] silence_end: 9.0 | silence_duration: 0.5
`

func TestParseSilences(t *testing.T) {
	gaps := parseSilences(sampleStderr)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	if gaps[0].start != 4.0 || gaps[0].end != 6.0 {
		t.Errorf("unexpected first gap: %+v", gaps[0])
	}
	if gaps[1].start != 8.5 || gaps[1].end != 9.0 {
		t.Errorf("unexpected second gap: %+v", gaps[1])
	}
}

func TestParseSilences_DanglingStart(t *testing.T) {
	gaps := parseSilences("[silencedetect] silence_start: 3.0\n")
	if len(gaps) != 0 {
		t.Fatalf("expected unterminated silence to be dropped, got %v", gaps)
	}
}

func TestBuildTurns_AlternatesOnLongGap(t *testing.T) {
	p := NewProvider(Config{})
	gaps := []silenceGap{
		{start: 4.0, end: 6.0}, // 2s gap, switches speaker
		{start: 8.5, end: 9.0}, // 0.5s gap, same speaker
	}
	turns := p.buildTurns(gaps, 12.0, 0)
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Speaker != "SPEAKER_00" {
		t.Errorf("expected SPEAKER_00 first, got %s", turns[0].Speaker)
	}
	if turns[1].Speaker != "SPEAKER_01" {
		t.Errorf("expected switch to SPEAKER_01, got %s", turns[1].Speaker)
	}
	if turns[2].Speaker != "SPEAKER_01" {
		t.Errorf("expected SPEAKER_01 retained across short gap, got %s", turns[2].Speaker)
	}
	if turns[2].Start != 9.0 || turns[2].End != 12.0 {
		t.Errorf("expected final turn [9,12], got [%v,%v]", turns[2].Start, turns[2].End)
	}
}

func TestBuildTurns_SingleSpeakerCap(t *testing.T) {
	p := NewProvider(Config{})
	gaps := []silenceGap{{start: 2.0, end: 5.0}}
	turns := p.buildTurns(gaps, 8.0, 1)
	for _, turn := range turns {
		if turn.Speaker != "SPEAKER_00" {
			t.Errorf("expected single speaker, got %s", turn.Speaker)
		}
	}
}

func TestBuildTurns_NoGaps(t *testing.T) {
	p := NewProvider(Config{})
	turns := p.buildTurns(nil, 5.0, 0)
	if len(turns) != 1 {
		t.Fatalf("expected one full-length turn, got %d", len(turns))
	}
	if turns[0].Start != 0 || turns[0].End != 5.0 {
		t.Errorf("expected [0,5], got [%v,%v]", turns[0].Start, turns[0].End)
	}
}

func TestNewProvider_Defaults(t *testing.T) {
	p := NewProvider(Config{})
	if p.cfg.NoiseFloor != defaultNoiseFloor {
		t.Errorf("expected default noise floor, got %q", p.cfg.NoiseFloor)
	}
	if p.cfg.MinSilence != defaultMinSilence {
		t.Errorf("expected default min silence, got %v", p.cfg.MinSilence)
	}
	if p.cfg.SwitchGap != defaultSwitchGap {
		t.Errorf("expected default switch gap, got %v", p.cfg.SwitchGap)
	}
	if p.Name() != ProviderName {
		t.Errorf("unexpected provider name %q", p.Name())
	}
}
