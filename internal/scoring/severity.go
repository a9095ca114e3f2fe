package scoring

// Severity is the three-tier status used for categories, departments and individual scores.
type Severity string

const (
	SeverityHigh     Severity = "High"
	SeverityModerate Severity = "Moderate"
	SeverityLow      Severity = "Low"
)

// Thresholds per scale. The percentage pair is the mean pair divided by 5, times 100.
const (
	HighThreshold     = 4.0
	ModerateThreshold = 2.5

	HighPercentThreshold     = 80.0
	ModeratePercentThreshold = 50.0
)

// Classify is the only place scores are bucketed.
func Classify(s Score) Severity {
	if s.Scale == ScalePercentage {
		switch {
		case s.Value >= HighPercentThreshold:
			return SeverityHigh
		case s.Value >= ModeratePercentThreshold:
			return SeverityModerate
		default:
			return SeverityLow
		}
	}
	return ClassifyMean(s.Value)
}

// ClassifyMean buckets a raw mean-scale value.
func ClassifyMean(mean float64) Severity {
	switch {
	case mean >= HighThreshold:
		return SeverityHigh
	case mean >= ModerateThreshold:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
