package qscore

// blendParams holds the per-domain blend of classical baseline and
// quantum metric: the boost factor applied to the advantage, the score
// cap, and the confidence-interval deltas reported alongside.
type blendParams struct {
	Boost  float64
	Cap    float64
	CILow  float64
	CIHigh float64
}

var domainBlends = map[Domain]blendParams{
	DomainBusiness:   {Boost: 0.25, Cap: 0.999, CILow: 0.02, CIHigh: 0.01},
	DomainLegal:      {Boost: 0.30, Cap: 0.999, CILow: 0.015, CIHigh: 0.005},
	DomainMarketing:  {Boost: 0.35, Cap: 0.995, CILow: 0.025, CIHigh: 0.01},
	DomainContent:    {Boost: 0.40, Cap: 0.99, CILow: 0.02, CIHigh: 0.015},
	DomainCompliance: {Boost: 0.20, Cap: 0.998, CILow: 0.01, CIHigh: 0.005},
}

// BlendAccuracy combines a classical baseline with the quantum
// advantage metric: baseline + advantage*boost, clamped to [0, cap].
// Monotonic in both baseline and advantage; never exceeds the cap.
func BlendAccuracy(baseline, advantage, boost, cap float64) float64 {
	score := baseline + advantage*boost
	if score < 0 {
		return 0
	}
	if score > cap {
		return cap
	}
	return score
}

// ImprovementFactor is the ratio of the enhanced score to the baseline,
// 0 when there is no meaningful baseline.
func ImprovementFactor(baseline, enhanced float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return enhanced / baseline
}
