// Package sentiment scores cleaned comment text with the VADER lexicon.
package sentiment

import "github.com/jonreiter/govader"

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Classification thresholds on the compound score. Both boundaries are
// inclusive of their label; the open interval between them is Neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Label is the discrete sentiment class of a comment.
type Label int

const (
	Negative Label = iota - 1
	Neutral
	Positive
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Score returns the compound polarity of the text in [-1, 1].
// Empty input scores 0.
func Score(cleaned string) float64 {
	return analyzer.PolarityScores(cleaned).Compound
}

// Classify maps a compound score to its discrete label.
func Classify(score float64) Label {
	switch {
	case score >= PositiveThreshold:
		return Positive
	case score <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
