package stats

import "strings"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Smooth returns the trailing mean of timeline over up to window samples.
func Smooth(timeline []int, window int) []float64 {
	window = max(window, 1)
	out := make([]float64, len(timeline))
	sum := 0
	for i, v := range timeline {
		sum += v
		if i >= window {
			sum -= timeline[i-window]
		}
		out[i] = float64(sum) / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders values with block characters scaled between their
// minimum and maximum. A flat series renders at mid height.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	top := len(sparkBlocks) - 1
	var b strings.Builder
	for _, v := range values {
		idx := top / 2
		if hi > lo {
			idx = roundHalfUp((v - lo) / (hi - lo) * float64(top))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// Downsample averages values into width buckets. Shorter series are
// returned unchanged.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) <= width {
		return append([]float64(nil), values...)
	}
	out := make([]float64, width)
	for i := range out {
		from, to := i*len(values)/width, (i+1)*len(values)/width
		var sum float64
		for _, v := range values[from:to] {
			sum += v
		}
		out[i] = sum / float64(to-from)
	}
	return out
}

// TimelineSparkline smooths a per-second WPM timeline and renders it within width.
func TimelineSparkline(timeline []int, window, width int) string {
	values := Smooth(timeline, window)
	if width > 0 {
		values = Downsample(values, width)
	}
	return Sparkline(values)
}
