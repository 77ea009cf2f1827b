package scoring

import "math"

// Fixed weights for the overall match score. These sum to 1.0 and are never
// re-derived at runtime.
const (
	jdMatchWeight           = 0.60
	industryBenchmarkWeight = 0.20
	atsComplianceWeight     = 0.12
	humanVoiceWeight        = 0.08
)

// SubScores are the four 0-100 inputs to the overall score. Missing upstream
// values decode to zero, which is the intended degradation.
type SubScores struct {
	JDMatch           int `json:"jdMatch"`
	IndustryBenchmark int `json:"industryBenchmark"`
	ATSCompliance     int `json:"atsCompliance"`
	HumanVoice        int `json:"humanVoice"`
}

// Summary is the headline score with its tier and next-tier progress.
type Summary struct {
	Overall           int  `json:"overall"`
	Tier              Tier `json:"tier"`
	NextTierThreshold int  `json:"nextTierThreshold"`
	PointsToNextTier  int  `json:"pointsToNextTier"`
}

// OverallScore combines the four sub-scores with fixed weights into a single
// 0-100 integer. Out-of-range inputs are clamped rather than rejected.
func OverallScore(sub SubScores) int {
	weighted := float64(clampScore(sub.JDMatch))*jdMatchWeight +
		float64(clampScore(sub.IndustryBenchmark))*industryBenchmarkWeight +
		float64(clampScore(sub.ATSCompliance))*atsComplianceWeight +
		float64(clampScore(sub.HumanVoice))*humanVoiceWeight

	return int(math.Round(weighted))
}

// Summarize computes the overall score, its tier, and next-tier progress.
func Summarize(sub SubScores) Summary {
	overall := OverallScore(sub)
	threshold, points := NextTier(overall)
	return Summary{
		Overall:           overall,
		Tier:              ClassifyScore(overall),
		NextTierThreshold: threshold,
		PointsToNextTier:  points,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
