package assessment

// RiskTier classifies the overall balance score into one of four bands.
type RiskTier string

const (
	TierLow      RiskTier = "LOW_RISK"
	TierMedium   RiskTier = "MEDIUM_RISK"
	TierHigh     RiskTier = "HIGH_RISK"
	TierVeryHigh RiskTier = "VERY_HIGH_RISK"
)

func (t RiskTier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh, TierVeryHigh:
		return true
	}
	return false
}

// Label returns the human-readable verdict for the tier.
func (t RiskTier) Label() string {
	switch t {
	case TierLow:
		return "Low Risk / Likely to Succeed"
	case TierMedium:
		return "Medium Risk / Reasonable Chance"
	case TierHigh:
		return "High Risk / Uncertain"
	case TierVeryHigh:
		return "Very High Risk / Unlikely"
	default:
		return "Unknown"
	}
}

// Icon returns the tier marker used in rendered reports.
func (t RiskTier) Icon() string {
	switch t {
	case TierLow:
		return "🟢"
	case TierMedium:
		return "🟡"
	case TierHigh:
		return "🟠"
	case TierVeryHigh:
		return "🔴"
	default:
		return "⚪"
	}
}

// TierForScore maps a 0-100 score onto a tier by fixed thresholds.
func TierForScore(score int) RiskTier {
	switch {
	case score >= 80:
		return TierLow
	case score >= 60:
		return TierMedium
	case score >= 40:
		return TierHigh
	default:
		return TierVeryHigh
	}
}
