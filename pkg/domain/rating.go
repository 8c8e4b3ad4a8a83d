package domain

// Score bounds for a rating. The store rejects anything outside this range.
const (
	MinScore = 0
	MaxScore = 10
)

// Rating is a score with an optional free-text comment. Ratings are
// immutable once stored; they can only be removed, never edited.
type Rating struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// Valid reports whether the score is inside [MinScore, MaxScore].
func (r Rating) Valid() bool {
	return r.Score >= MinScore && r.Score <= MaxScore
}

// Average computes the mean score of a rating sequence, or 0 when empty.
// Callers that need to distinguish "unrated" from "all zeros" must check
// the sequence length first.
func Average(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings))
}
