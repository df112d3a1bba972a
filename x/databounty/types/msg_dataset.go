package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateDataset{}
	_ sdk.Msg = &MsgPurchaseDataset{}
)

// MsgCreateDataset lists a dataset for sale under the given license terms.
type MsgCreateDataset struct {
	Creator           string      `json:"creator"`
	DatasetId         string      `json:"dataset_id"`
	LicenseType       LicenseType `json:"license_type"`
	Price             math.Int    `json:"price"`
	RoyaltyPercentage uint32      `json:"royalty_percentage"`
}

// NewMsgCreateDataset creates a new MsgCreateDataset instance.
func NewMsgCreateDataset(creator, datasetID string, licenseType LicenseType, price math.Int, royaltyPercentage uint32) *MsgCreateDataset {
	return &MsgCreateDataset{
		Creator:           creator,
		DatasetId:         datasetID,
		LicenseType:       licenseType,
		Price:             price,
		RoyaltyPercentage: royaltyPercentage,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgCreateDataset) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreateDataset) Type() string { return "create_dataset" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreateDataset) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Creator)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCreateDataset) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCreateDataset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := validateID(msg.DatasetId); err != nil {
		return sdkerrors.Wrap(err, "dataset id")
	}
	if err := msg.LicenseType.Validate(); err != nil {
		return err
	}
	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "price must be positive")
	}
	if msg.RoyaltyPercentage > MaxRoyaltyPercentage {
		return sdkerrors.Wrapf(ErrInvalidRoyalty,
			"royalty percentage %d exceeds maximum %d", msg.RoyaltyPercentage, MaxRoyaltyPercentage)
	}
	return nil
}

// MsgPurchaseDataset buys a dataset license, paying the listed price to the
// creator.
type MsgPurchaseDataset struct {
	Buyer     string `json:"buyer"`
	DatasetId string `json:"dataset_id"`
}

// NewMsgPurchaseDataset creates a new MsgPurchaseDataset instance.
func NewMsgPurchaseDataset(buyer, datasetID string) *MsgPurchaseDataset {
	return &MsgPurchaseDataset{Buyer: buyer, DatasetId: datasetID}
}

// Route implements the sdk.Msg interface.
func (msg MsgPurchaseDataset) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgPurchaseDataset) Type() string { return "purchase_dataset" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgPurchaseDataset) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Buyer)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgPurchaseDataset) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgPurchaseDataset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if err := validateID(msg.DatasetId); err != nil {
		return sdkerrors.Wrap(err, "dataset id")
	}
	return nil
}
