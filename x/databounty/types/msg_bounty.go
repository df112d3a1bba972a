package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateBounty{}
	_ sdk.Msg = &MsgPauseBounty{}
	_ sdk.Msg = &MsgResumeBounty{}
	_ sdk.Msg = &MsgCompleteBounty{}
	_ sdk.Msg = &MsgCancelBounty{}
)

// MsgCreateBounty funds a new bounty pool. The total pool moves from the
// authority into module custody atomically with record creation.
type MsgCreateBounty struct {
	Authority       string            `json:"authority"`
	BountyId        string            `json:"bounty_id"`
	TaskDescription string            `json:"task_description"`
	Requirements    VideoRequirements `json:"requirements"`
	RewardPerVideo  math.Int          `json:"reward_per_video"`
	TotalPool       math.Int          `json:"total_pool"`
	VideosTarget    uint64            `json:"videos_target"`
	ExpiresAt       int64             `json:"expires_at"`
}

// NewMsgCreateBounty creates a new MsgCreateBounty instance.
func NewMsgCreateBounty(
	authority, bountyID, description string,
	requirements VideoRequirements,
	rewardPerVideo, totalPool math.Int,
	videosTarget uint64,
	expiresAt int64,
) *MsgCreateBounty {
	return &MsgCreateBounty{
		Authority:       authority,
		BountyId:        bountyID,
		TaskDescription: description,
		Requirements:    requirements,
		RewardPerVideo:  rewardPerVideo,
		TotalPool:       totalPool,
		VideosTarget:    videosTarget,
		ExpiresAt:       expiresAt,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgCreateBounty) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreateBounty) Type() string { return "create_bounty" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreateBounty) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCreateBounty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCreateBounty) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if err := validateID(msg.BountyId); err != nil {
		return sdkerrors.Wrap(err, "bounty id")
	}
	if len(msg.TaskDescription) > MaxTaskDescriptionLength {
		return sdkerrors.Wrap(ErrInvalidRequest, "task description too long")
	}
	if msg.RewardPerVideo.IsNil() || !msg.RewardPerVideo.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "reward per video must be positive")
	}
	if msg.TotalPool.IsNil() || !msg.TotalPool.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "total pool must be positive")
	}
	if msg.VideosTarget == 0 {
		return sdkerrors.Wrap(ErrInvalidTarget, "videos target must be positive")
	}
	return nil
}

// MsgPauseBounty suspends submissions against an active bounty.
type MsgPauseBounty struct {
	Authority string `json:"authority"`
	BountyId  string `json:"bounty_id"`
}

// NewMsgPauseBounty creates a new MsgPauseBounty instance.
func NewMsgPauseBounty(authority, bountyID string) *MsgPauseBounty {
	return &MsgPauseBounty{Authority: authority, BountyId: bountyID}
}

// Route implements the sdk.Msg interface.
func (msg MsgPauseBounty) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgPauseBounty) Type() string { return "pause_bounty" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgPauseBounty) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgPauseBounty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgPauseBounty) ValidateBasic() error {
	return validateAuthorityAndID(msg.Authority, msg.BountyId)
}

// MsgResumeBounty reopens a paused bounty for submissions.
type MsgResumeBounty struct {
	Authority string `json:"authority"`
	BountyId  string `json:"bounty_id"`
}

// NewMsgResumeBounty creates a new MsgResumeBounty instance.
func NewMsgResumeBounty(authority, bountyID string) *MsgResumeBounty {
	return &MsgResumeBounty{Authority: authority, BountyId: bountyID}
}

// Route implements the sdk.Msg interface.
func (msg MsgResumeBounty) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgResumeBounty) Type() string { return "resume_bounty" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgResumeBounty) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgResumeBounty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgResumeBounty) ValidateBasic() error {
	return validateAuthorityAndID(msg.Authority, msg.BountyId)
}

// MsgCompleteBounty marks a bounty as completed. Any leftover pool stays in
// module custody; see the module design notes.
type MsgCompleteBounty struct {
	Authority string `json:"authority"`
	BountyId  string `json:"bounty_id"`
}

// NewMsgCompleteBounty creates a new MsgCompleteBounty instance.
func NewMsgCompleteBounty(authority, bountyID string) *MsgCompleteBounty {
	return &MsgCompleteBounty{Authority: authority, BountyId: bountyID}
}

// Route implements the sdk.Msg interface.
func (msg MsgCompleteBounty) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCompleteBounty) Type() string { return "complete_bounty" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCompleteBounty) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCompleteBounty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCompleteBounty) ValidateBasic() error {
	return validateAuthorityAndID(msg.Authority, msg.BountyId)
}

// MsgCancelBounty cancels a bounty and refunds the remaining pool to the
// authority. Escrow already reserved for pending submissions is not touched;
// those submissions stay resolvable.
type MsgCancelBounty struct {
	Authority string `json:"authority"`
	BountyId  string `json:"bounty_id"`
}

// NewMsgCancelBounty creates a new MsgCancelBounty instance.
func NewMsgCancelBounty(authority, bountyID string) *MsgCancelBounty {
	return &MsgCancelBounty{Authority: authority, BountyId: bountyID}
}

// Route implements the sdk.Msg interface.
func (msg MsgCancelBounty) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCancelBounty) Type() string { return "cancel_bounty" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCancelBounty) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCancelBounty) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCancelBounty) ValidateBasic() error {
	return validateAuthorityAndID(msg.Authority, msg.BountyId)
}
