package core

// DataPoint represents a single m/z, intensity pair inside an isotope pattern.
type DataPoint struct {
	MZ        float64
	Intensity float64
}

// PatternStatus describes the provenance of an isotope pattern.
type PatternStatus int

const (
	// PatternDetected marks patterns assembled from peaks observed in the run.
	PatternDetected PatternStatus = iota
	// PatternPredicted marks patterns derived from a theoretical model.
	PatternPredicted
)

// String returns the status name as stored in exported databases.
func (s PatternStatus) String() string {
	switch s {
	case PatternDetected:
		return "detected"
	case PatternPredicted:
		return "predicted"
	default:
		return "unknown"
	}
}

// ParsePatternStatus maps a stored status name back to its enum value.
func ParsePatternStatus(name string) PatternStatus {
	switch name {
	case "detected":
		return PatternDetected
	case "predicted":
		return PatternPredicted
	default:
		return PatternDetected
	}
}

// IsotopePattern is an ordered isotope envelope attached to a peak.
// Points are ordered seed first, then peaks found below the seed m/z in
// order of increasing distance, then peaks found above it.
type IsotopePattern struct {
	Points      []DataPoint
	Status      PatternStatus
	Description string
}

// Size returns the number of data points in the pattern.
func (ip *IsotopePattern) Size() int {
	return len(ip.Points)
}
