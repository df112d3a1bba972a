package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultDenom is the denomination bounty pools and dataset sales settle in.
const DefaultDenom = "uforge"

// DefaultMaxVideosTarget caps how many videos one bounty may request. This is
// a state-spam guard, not a business rule.
const DefaultMaxVideosTarget = 100_000

// Params are the databounty module parameters, adjustable by the module
// authority.
type Params struct {
	// Denom is the denomination used for pool funding, escrow payouts and
	// dataset purchases.
	Denom string `json:"denom"`

	// MaxVideosTarget bounds the videos_target of a new bounty.
	MaxVideosTarget uint64 `json:"max_videos_target"`
}

// DefaultParams returns default parameters for the databounty module.
func DefaultParams() Params {
	return Params{
		Denom:           DefaultDenom,
		MaxVideosTarget: DefaultMaxVideosTarget,
	}
}

// Validate checks the parameter set.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if p.MaxVideosTarget == 0 {
		return fmt.Errorf("max videos target must be positive")
	}
	return nil
}
