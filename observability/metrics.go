package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics holds the instrument set recorded by transcript pipelines.
type PipelineMetrics struct {
	runs             metric.Int64Counter
	turnsProcessed   metric.Int64Counter
	audioSeconds     metric.Float64Counter
	stageDurationSec metric.Float64Histogram
}

// NewPipelineMetrics creates the pipeline instrument set on the global meter.
func NewPipelineMetrics() (*PipelineMetrics, error) {
	meter := otel.Meter("github.com/skillsenselab/scribekit/pipeline")

	runs, err := meter.Int64Counter("scribekit.pipeline.runs",
		metric.WithDescription("Number of pipeline runs started"))
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}
	turns, err := meter.Int64Counter("scribekit.pipeline.turns",
		metric.WithDescription("Number of speaker turns transcribed"))
	if err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}
	audio, err := meter.Float64Counter("scribekit.pipeline.audio_seconds",
		metric.WithDescription("Seconds of audio transcribed"))
	if err != nil {
		return nil, fmt.Errorf("creating audio counter: %w", err)
	}
	stage, err := meter.Float64Histogram("scribekit.pipeline.stage_duration_seconds",
		metric.WithDescription("Wall-clock duration of pipeline stages"))
	if err != nil {
		return nil, fmt.Errorf("creating stage histogram: %w", err)
	}

	return &PipelineMetrics{
		runs:             runs,
		turnsProcessed:   turns,
		audioSeconds:     audio,
		stageDurationSec: stage,
	}, nil
}

// RecordRun counts a pipeline run start.
func (m *PipelineMetrics) RecordRun(ctx context.Context) {
	if m == nil {
		return
	}
	m.runs.Add(ctx, 1)
}

// RecordTurn counts one transcribed turn and its audio length.
func (m *PipelineMetrics) RecordTurn(ctx context.Context, speaker string, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("speaker", speaker))
	m.turnsProcessed.Add(ctx, 1, attrs)
	m.audioSeconds.Add(ctx, seconds, attrs)
}

// RecordStage records the wall-clock duration of a named stage.
func (m *PipelineMetrics) RecordStage(ctx context.Context, stage string, seconds float64) {
	if m == nil {
		return
	}
	m.stageDurationSec.Record(ctx, seconds, metric.WithAttributes(attribute.String("stage", stage)))
}
