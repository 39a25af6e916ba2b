package policy

// Weights maps a topic name to its benefit multiplier. Topic names are
// matched against benefit text by the balance engine.
type Weights map[string]float64

// Weight bounds. Every derived weight is clamped into this range.
const (
	MinWeight = 0.5
	MaxWeight = 2.0
)

// CalculateWeights derives topic weights from the policy context. Each
// topic starts neutral at 1.0 and accumulates additive bumps from the rule
// table; the result is clamped to [MinWeight, MaxWeight]. Pure and
// deterministic: the same context always yields the same weights.
func CalculateWeights(ctx Context) Weights {
	w := Weights{"housing": 1.0, "brownfield": 1.0, "heritage": 1.0}

	switch ParseSupply(ctx.FiveYearSupply) {
	case SupplyNotDemonstrated:
		w["housing"] += 0.4
	case SupplyMarginal:
		w["housing"] += 0.2
	}

	switch ParseDelivery(ctx.HousingDelivery) {
	case DeliveryBelow75:
		w["housing"] += 0.3
	case Delivery75To95:
		w["housing"] += 0.15
	}

	switch ParsePlanStatus(ctx.LocalPlanStatus) {
	case PlanEmerging, PlanOutOfDate:
		w["housing"] += 0.2
	}

	switch ParseBrownfieldPolicy(ctx.BrownfieldPolicy) {
	case PreferenceStrong:
		w["brownfield"] += 0.3
	case PreferenceModerate:
		w["brownfield"] += 0.15
	}

	switch ParseHeritageContext(ctx.HeritageContext) {
	case PreferenceStrong:
		w["heritage"] += 0.4
	case PreferenceModerate:
		w["heritage"] += 0.2
	}

	for k, v := range w {
		w[k] = clampWeight(v)
	}
	return w
}

func clampWeight(v float64) float64 {
	if v < MinWeight {
		return MinWeight
	}
	if v > MaxWeight {
		return MaxWeight
	}
	return v
}
