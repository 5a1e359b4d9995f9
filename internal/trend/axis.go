package trend

import "math"

// AxisScale describes a chart y-axis: Max is always a positive multiple of
// Step and at least as large as the tallest data point.
type AxisScale struct {
	Step float64 `json:"step"`
	Max  float64 `json:"max"`
}

// ChooseStep picks a gridline increment that keeps the axis at human-friendly
// values regardless of data magnitude.
func ChooseStep(maxValue float64) float64 {
	switch {
	case maxValue <= 50:
		return 5
	case maxValue <= 200:
		return 10
	case maxValue <= 1000:
		return 50
	default:
		return 100
	}
}

// ComputeAxisMax derives the y-axis scale for a set of raw values. The
// maximum gets 5% headroom so the tallest point is not flush with the chart
// edge, then rounds up to a step multiple. All-zero or empty input falls back
// to a single step so the axis is never degenerate.
func ComputeAxisMax(rawValues []float64) AxisScale {
	rawMax := 0.0
	for _, v := range rawValues {
		if v > rawMax {
			rawMax = v
		}
	}
	paddedMax := math.Ceil(rawMax * 1.05)
	step := ChooseStep(paddedMax)
	max := math.Ceil(paddedMax/step) * step
	if max == 0 {
		max = step
	}
	return AxisScale{Step: step, Max: max}
}
