package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BountyStatus is the lifecycle state of a bounty pool.
type BountyStatus uint32

const (
	BountyStatusActive BountyStatus = iota
	BountyStatusPaused
	BountyStatusCompleted
	BountyStatusCancelled
)

// String returns the human-readable status name.
func (s BountyStatus) String() string {
	switch s {
	case BountyStatusActive:
		return "active"
	case BountyStatusPaused:
		return "paused"
	case BountyStatusCompleted:
		return "completed"
	case BountyStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

// Validate checks that the status is a declared variant.
func (s BountyStatus) Validate() error {
	if s > BountyStatusCancelled {
		return ErrInvalidStatus.Wrapf("unknown bounty status %d", uint32(s))
	}
	return nil
}

// IsTerminal reports whether no further status transition is allowed.
func (s BountyStatus) IsTerminal() bool {
	return s == BountyStatusCompleted || s == BountyStatusCancelled
}

// VideoRequirements describes the minimum acceptable properties of a
// submitted video. Stored verbatim; enforcement happens off chain during
// review.
type VideoRequirements struct {
	MinDurationSecs uint32 `json:"min_duration_secs"`
	MinResolution   string `json:"min_resolution"`
	MinFps          uint32 `json:"min_fps"`
}

// BountyPool is the funding and lifecycle record for one bounty.
//
// Accounting identity (checked by the pool-accounting invariant): for any
// non-cancelled bounty,
//
//	TotalPool == RemainingPool
//	           + sum of EscrowAmount over Pending/UnderReview submissions
//	           + sum of EscrowAmount over Approved submissions
type BountyPool struct {
	BountyId        string            `json:"bounty_id"`
	Authority       string            `json:"authority"`
	TaskDescription string            `json:"task_description"`
	Requirements    VideoRequirements `json:"requirements"`
	RewardPerVideo  math.Int          `json:"reward_per_video"`
	TotalPool       math.Int          `json:"total_pool"`
	RemainingPool   math.Int          `json:"remaining_pool"`
	VideosTarget    uint64            `json:"videos_target"`
	VideosCollected uint64            `json:"videos_collected"`
	Status          BountyStatus      `json:"status"`
	CreatedAt       int64             `json:"created_at"`
	ExpiresAt       int64             `json:"expires_at"`
}

// Validate checks internal consistency of a stored bounty record.
func (b BountyPool) Validate() error {
	if b.BountyId == "" || len(b.BountyId) > MaxIDLength {
		return ErrInvalidRequest.Wrapf("invalid bounty id %q", b.BountyId)
	}
	if _, err := sdk.AccAddressFromBech32(b.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("invalid authority address: %v", err)
	}
	if err := b.Status.Validate(); err != nil {
		return err
	}
	if b.RewardPerVideo.IsNil() || !b.RewardPerVideo.IsPositive() {
		return ErrInvalidAmount.Wrap("reward per video must be positive")
	}
	if b.TotalPool.IsNil() || !b.TotalPool.IsPositive() {
		return ErrInvalidAmount.Wrap("total pool must be positive")
	}
	if b.RemainingPool.IsNil() || b.RemainingPool.IsNegative() {
		return ErrInvalidAmount.Wrap("remaining pool cannot be negative")
	}
	if b.RemainingPool.GT(b.TotalPool) {
		return ErrInsufficientPool.Wrapf(
			"remaining pool %s exceeds total pool %s",
			b.RemainingPool, b.TotalPool,
		)
	}
	if b.VideosTarget == 0 {
		return ErrInvalidTarget.Wrap("videos target must be positive")
	}
	if b.VideosCollected > b.VideosTarget {
		return ErrBountyFull.Wrapf(
			"videos collected %d exceeds target %d",
			b.VideosCollected, b.VideosTarget,
		)
	}
	return nil
}
