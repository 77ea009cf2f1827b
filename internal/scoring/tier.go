// Package scoring combines category sub-scores into the headline match score
// and maps scores to display tiers.
package scoring

// Tier is the display tier for a score band.
type Tier struct {
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

// tierBand pairs an inclusive upper bound with its tier. Bands are evaluated
// in ascending order, first match wins; the last band is the catch-all.
type tierBand struct {
	upperBound int
	tier       Tier
}

var tierBands = []tierBand{
	{20, Tier{Name: "FREEZING", Emoji: "🥶", Color: "#3B82F6", Message: "Your resume barely registers for this role. Time for a major rework."}},
	{40, Tier{Name: "COLD", Emoji: "🧊", Color: "#60A5FA", Message: "There's a long way to go. Focus on the critical gaps first."}},
	{60, Tier{Name: "LUKEWARM", Emoji: "🌡️", Color: "#FBBF24", Message: "You're on the radar, but recruiters will pass you over for stronger matches."}},
	{75, Tier{Name: "WARM", Emoji: "🌤️", Color: "#FB923C", Message: "Solid foundation. A few targeted improvements could tip the scales."}},
	{90, Tier{Name: "HOT", Emoji: "🔥", Color: "#F97316", Message: "Strong match. Polish the remaining gaps and you're interview-ready."}},
	{100, Tier{Name: "ON_FIRE", Emoji: "🚀", Color: "#EF4444", Message: "Outstanding match. Your resume was built for this role."}},
}

// ClassifyScore maps a 0-100 score to its tier. Total over all integer
// inputs; the last band catches everything above the final threshold.
func ClassifyScore(score int) Tier {
	for _, band := range tierBands[:len(tierBands)-1] {
		if score <= band.upperBound {
			return band.tier
		}
	}
	return tierBands[len(tierBands)-1].tier
}

// NextTier returns the upper bound the score must cross to reach the next
// tier and the points remaining to get there. Scores already in the top band
// report the current maximum and zero points.
func NextTier(score int) (threshold, points int) {
	top := tierBands[len(tierBands)-1].upperBound
	if score > tierBands[len(tierBands)-2].upperBound {
		return top, 0
	}
	for _, band := range tierBands {
		if band.upperBound > score {
			return band.upperBound, band.upperBound - score
		}
	}
	return top, 0
}
