package pipeline

import "time"

// ProgressFunc receives pipeline progress after each completed turn:
// fraction is in [0, 1], eta is the estimated wall-clock time remaining.
type ProgressFunc func(fraction float64, eta time.Duration)

// progressEstimator derives completion fraction and ETA from how far along
// the audio timeline the pipeline has advanced versus elapsed wall time.
// Tracking the timeline position rather than summed turn lengths means the
// fraction converges to 1 even when silence leaves gaps between turns.
type progressEstimator struct {
	total    float64 // total audio seconds
	position float64 // timeline seconds reached so far
	started  time.Time
}

func newProgressEstimator(totalSeconds float64) *progressEstimator {
	return &progressEstimator{
		total:   totalSeconds,
		started: time.Now(),
	}
}

// advanceTo records that the timeline has been processed up to position
// seconds and returns the new estimate. Positions never move backwards.
func (p *progressEstimator) advanceTo(position float64) (fraction float64, eta time.Duration) {
	if position > p.position {
		p.position = position
	}
	if p.total <= 0 {
		return 0, 0
	}

	fraction = p.position / p.total
	if fraction > 1 {
		fraction = 1
	}
	if p.position <= 0 {
		return fraction, 0
	}

	elapsed := time.Since(p.started)
	remaining := p.total - p.position
	if remaining < 0 {
		remaining = 0
	}
	perAudioSecond := elapsed.Seconds() / p.position
	eta = time.Duration(remaining * perAudioSecond * float64(time.Second))
	return fraction, eta
}
