package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated particle field statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed_sec"`

	// Population at window end
	Particles int `csv:"particles"`

	// Lifecycle events during window
	Expired int `csv:"expired"`
	Spawned int `csv:"spawned"`

	// Per-frame mean opacity distribution
	OpacityMean float64 `csv:"opacity_mean"`
	OpacityP10  float64 `csv:"opacity_p10"`
	OpacityP50  float64 `csv:"opacity_p50"`
	OpacityP90  float64 `csv:"opacity_p90"`

	// Connection lines per frame
	ConnectionsMean float64 `csv:"connections_mean"`
	ConnectionsStd  float64 `csv:"connections_std"`
	ConnectionsMax  int     `csv:"connections_max"`
	LineAlphaMean   float64 `csv:"line_alpha_mean"`

	// Input
	PointerFrames int `csv:"pointer_frames"`
	Resizes       int `csv:"resizes"`
}

// Summarize returns the mean and 10th/50th/90th percentiles of values.
// Returns all zeros for an empty slice.
func Summarize(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// MeanStd returns the mean and population standard deviation of values.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("elapsed_sec", s.ElapsedSec),
		slog.Int("particles", s.Particles),
		slog.Int("expired", s.Expired),
		slog.Int("spawned", s.Spawned),
		slog.Float64("opacity_mean", s.OpacityMean),
		slog.Float64("opacity_p10", s.OpacityP10),
		slog.Float64("opacity_p50", s.OpacityP50),
		slog.Float64("opacity_p90", s.OpacityP90),
		slog.Float64("connections_mean", s.ConnectionsMean),
		slog.Float64("connections_std", s.ConnectionsStd),
		slog.Int("connections_max", s.ConnectionsMax),
		slog.Float64("line_alpha_mean", s.LineAlphaMean),
		slog.Int("pointer_frames", s.PointerFrames),
		slog.Int("resizes", s.Resizes),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
