package scoring

// Range is the inclusive bound a score is clamped into.
type Range struct {
	Min float64
	Max float64
}

var (
	// TenPoint is used by the wallet and crowd-risk analyzers.
	TenPoint = Range{Min: 0, Max: 10}
	// Percent is used by the crowd-reported entry score.
	Percent = Range{Min: 0, Max: 100}
)

// Adjustment is a weighted contribution that only counts when Active.
type Adjustment struct {
	Weight float64
	Active bool
}

// Adjust is shorthand for building an Adjustment inline.
func Adjust(weight float64, active bool) Adjustment {
	return Adjustment{Weight: weight, Active: active}
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ComputeScore sums base and every active adjustment, then clamps into r.
func ComputeScore(base float64, adjustments []Adjustment, r Range) float64 {
	total := base
	for _, adj := range adjustments {
		if adj.Active {
			total += adj.Weight
		}
	}
	return Clamp(total, r.Min, r.Max)
}

// Boundary maps a minimum score onto a Level.
type Boundary struct {
	Threshold float64
	Label     Level
}

// DeriveLabel returns the label of the first boundary the score meets or
// exceeds. Boundaries must be sorted by descending threshold. When nothing
// matches the last (lowest) boundary's label is returned.
func DeriveLabel(score float64, boundaries []Boundary) Level {
	if len(boundaries) == 0 {
		return LevelUnknown
	}
	for _, b := range boundaries {
		if score >= b.Threshold {
			return b.Label
		}
	}
	return boundaries[len(boundaries)-1].Label
}
