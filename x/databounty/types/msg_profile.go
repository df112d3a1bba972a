package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateProfile{}
	_ sdk.Msg = &MsgAwardBadge{}
)

// MsgCreateProfile registers a contributor profile at the neutral starting
// reputation.
type MsgCreateProfile struct {
	Wallet string `json:"wallet"`
}

// NewMsgCreateProfile creates a new MsgCreateProfile instance.
func NewMsgCreateProfile(wallet string) *MsgCreateProfile {
	return &MsgCreateProfile{Wallet: wallet}
}

// Route implements the sdk.Msg interface.
func (msg MsgCreateProfile) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreateProfile) Type() string { return "create_profile" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreateProfile) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Wallet)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCreateProfile) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCreateProfile) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid wallet address: %s", err)
	}
	return nil
}

// MsgAwardBadge grants an achievement badge to a contributor. Restricted to
// the module authority.
type MsgAwardBadge struct {
	Authority string `json:"authority"`
	Wallet    string `json:"wallet"`
	BadgeType string `json:"badge_type"`
}

// NewMsgAwardBadge creates a new MsgAwardBadge instance.
func NewMsgAwardBadge(authority, wallet, badgeType string) *MsgAwardBadge {
	return &MsgAwardBadge{Authority: authority, Wallet: wallet, BadgeType: badgeType}
}

// Route implements the sdk.Msg interface.
func (msg MsgAwardBadge) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgAwardBadge) Type() string { return "award_badge" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgAwardBadge) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgAwardBadge) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgAwardBadge) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid wallet address: %s", err)
	}
	if msg.BadgeType == "" {
		return sdkerrors.Wrap(ErrInvalidRequest, "badge type cannot be empty")
	}
	if len(msg.BadgeType) > MaxBadgeTypeLength {
		return sdkerrors.Wrapf(ErrInvalidRequest, "badge type exceeds %d characters", MaxBadgeTypeLength)
	}
	return nil
}
