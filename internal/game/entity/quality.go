package entity

// QualityTier selects geometry detail for mesh construction. It is
// decided once at startup (config or flag) and passed in explicitly;
// factories never sample display state themselves.
type QualityTier uint8

const (
	TierLow QualityTier = iota
	TierHigh
)

// ParseTier maps a config string to a tier. Unknown values get TierHigh.
func ParseTier(s string) QualityTier {
	if s == "low" {
		return TierLow
	}
	return TierHigh
}

// String returns the config-file spelling of the tier.
func (q QualityTier) String() string {
	if q == TierLow {
		return "low"
	}
	return "high"
}

// WheelSegments returns the cylinder segment count for vehicle wheels.
func (q QualityTier) WheelSegments() int {
	if q == TierLow {
		return 8
	}
	return 20
}
