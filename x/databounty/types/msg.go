package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func signersFromBech32(addr string) []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}

func validateID(id string) error {
	if id == "" {
		return sdkerrors.Wrap(ErrInvalidRequest, "identifier cannot be empty")
	}
	if len(id) > MaxIDLength {
		return sdkerrors.Wrapf(ErrInvalidRequest, "identifier exceeds %d characters", MaxIDLength)
	}
	return nil
}

func validateAuthorityAndID(authority, id string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return validateID(id)
}

func validateContentRef(name, ref string) error {
	if ref == "" {
		return sdkerrors.Wrapf(ErrInvalidRequest, "%s cannot be empty", name)
	}
	if len(ref) > MaxContentRefLength {
		return sdkerrors.Wrapf(ErrInvalidRequest, "%s exceeds %d characters", name, MaxContentRefLength)
	}
	return nil
}
