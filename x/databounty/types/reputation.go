package types

// Reputation is recomputed from scratch after every review resolution. The
// arithmetic is integer and truncating throughout so replicated execution is
// deterministic.
//
// The caller must bump the profile counters for the resolution being scored
// before invoking RecalculateReputation: on approval, TotalSubmissions and
// AcceptedSubmissions already include the current submission and
// newQualityScore is the review score; on rejection, TotalSubmissions and
// RejectedSubmissions are bumped and newQualityScore is 0.

const (
	acceptancePointsNum = 5
	acceptancePointsDen = 2
	qualityPointsNum    = 250
	qualityPointsDen    = 100
)

// RecalculateReputation folds one review outcome into the profile's running
// quality average and recomputes the reputation score.
//
// The score is NeutralReputation plus up to 250 points from the acceptance
// rate and up to 250 points from the average quality of accepted work,
// clamped to MaxReputation. It can never go below zero by construction.
func (p *ContributorProfile) RecalculateReputation(newQualityScore uint32) {
	var acceptanceRate uint64
	if p.AcceptedSubmissions > 0 {
		acceptanceRate = p.AcceptedSubmissions * 100 / p.TotalSubmissions
	}

	// Running mean over accepted submissions only, using the pre-increment
	// count. Rejections pass score 0 and leave the average untouched.
	if newQualityScore > 0 && p.AcceptedSubmissions > 0 {
		p.AverageQualityScore = (p.AverageQualityScore*(p.AcceptedSubmissions-1) +
			uint64(newQualityScore)) / p.AcceptedSubmissions
	}

	acceptancePoints := acceptanceRate * acceptancePointsNum / acceptancePointsDen
	qualityPoints := p.AverageQualityScore * qualityPointsNum / qualityPointsDen

	score := uint64(NeutralReputation) + acceptancePoints + qualityPoints
	if score > MaxReputation {
		score = MaxReputation
	}
	p.ReputationScore = score
}
