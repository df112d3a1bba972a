package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Badge is one earned achievement on a contributor profile. The badge list
// is append-only, capped at MaxBadgesPerProfile, and holds at most one badge
// per type.
type Badge struct {
	BadgeType string `json:"badge_type"`
	EarnedAt  int64  `json:"earned_at"`
}

// ContributorProfile is one identity's reputation ledger. A profile is
// created once per wallet and never destroyed; every review resolution and
// badge award mutates it.
//
// TotalSubmissions counts a submission when it enters the system and again
// when it is resolved, so Accepted+Rejected <= TotalSubmissions with strict
// inequality while any submission is unresolved.
type ContributorProfile struct {
	Wallet              string   `json:"wallet"`
	TotalSubmissions    uint64   `json:"total_submissions"`
	AcceptedSubmissions uint64   `json:"accepted_submissions"`
	RejectedSubmissions uint64   `json:"rejected_submissions"`
	AverageQualityScore uint64   `json:"average_quality_score"`
	TotalEarnings       math.Int `json:"total_earnings"`
	ReputationScore     uint64   `json:"reputation_score"`
	Badges              []Badge  `json:"badges,omitempty"`
	JoinDate            int64    `json:"join_date"`
	LastActive          int64    `json:"last_active"`
}

// NewContributorProfile returns a fresh profile at neutral reputation.
func NewContributorProfile(wallet string, now int64) ContributorProfile {
	return ContributorProfile{
		Wallet:          wallet,
		TotalEarnings:   math.ZeroInt(),
		ReputationScore: NeutralReputation,
		JoinDate:        now,
		LastActive:      now,
	}
}

// HasBadge reports whether the profile already earned the given badge type.
func (p ContributorProfile) HasBadge(badgeType string) bool {
	for _, b := range p.Badges {
		if b.BadgeType == badgeType {
			return true
		}
	}
	return false
}

// Validate checks internal consistency of a stored profile record.
func (p ContributorProfile) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Wallet); err != nil {
		return ErrInvalidAddress.Wrapf("invalid wallet address: %v", err)
	}
	if p.AcceptedSubmissions+p.RejectedSubmissions > p.TotalSubmissions {
		return ErrInvalidRequest.Wrapf(
			"accepted %d + rejected %d exceeds total submissions %d",
			p.AcceptedSubmissions, p.RejectedSubmissions, p.TotalSubmissions,
		)
	}
	if p.AverageQualityScore > MaxQualityScore {
		return ErrInvalidQualityScore.Wrapf(
			"average quality score %d exceeds maximum %d",
			p.AverageQualityScore, MaxQualityScore,
		)
	}
	if p.ReputationScore > MaxReputation {
		return ErrInvalidRequest.Wrapf(
			"reputation score %d exceeds maximum %d",
			p.ReputationScore, MaxReputation,
		)
	}
	if p.TotalEarnings.IsNil() || p.TotalEarnings.IsNegative() {
		return ErrInvalidAmount.Wrap("total earnings cannot be negative")
	}
	if len(p.Badges) > MaxBadgesPerProfile {
		return ErrTooManyBadges.Wrapf(
			"profile holds %d badges, maximum is %d",
			len(p.Badges), MaxBadgesPerProfile,
		)
	}
	seen := make(map[string]struct{}, len(p.Badges))
	for _, b := range p.Badges {
		if b.BadgeType == "" || len(b.BadgeType) > MaxBadgeTypeLength {
			return ErrInvalidRequest.Wrapf("invalid badge type %q", b.BadgeType)
		}
		if _, ok := seen[b.BadgeType]; ok {
			return ErrBadgeAlreadyEarned.Wrapf("duplicate badge type %q", b.BadgeType)
		}
		seen[b.BadgeType] = struct{}{}
	}
	return nil
}
