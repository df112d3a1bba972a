package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateBounty{}, "databounty/MsgCreateBounty", nil)
	cdc.RegisterConcrete(&MsgPauseBounty{}, "databounty/MsgPauseBounty", nil)
	cdc.RegisterConcrete(&MsgResumeBounty{}, "databounty/MsgResumeBounty", nil)
	cdc.RegisterConcrete(&MsgCompleteBounty{}, "databounty/MsgCompleteBounty", nil)
	cdc.RegisterConcrete(&MsgCancelBounty{}, "databounty/MsgCancelBounty", nil)
	cdc.RegisterConcrete(&MsgSubmitVideo{}, "databounty/MsgSubmitVideo", nil)
	cdc.RegisterConcrete(&MsgStartReview{}, "databounty/MsgStartReview", nil)
	cdc.RegisterConcrete(&MsgApproveSubmission{}, "databounty/MsgApproveSubmission", nil)
	cdc.RegisterConcrete(&MsgRejectSubmission{}, "databounty/MsgRejectSubmission", nil)
	cdc.RegisterConcrete(&MsgCreateProfile{}, "databounty/MsgCreateProfile", nil)
	cdc.RegisterConcrete(&MsgAwardBadge{}, "databounty/MsgAwardBadge", nil)
	cdc.RegisterConcrete(&MsgCreateDataset{}, "databounty/MsgCreateDataset", nil)
	cdc.RegisterConcrete(&MsgPurchaseDataset{}, "databounty/MsgPurchaseDataset", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "databounty/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's message types with the interface
// registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateBounty{},
		&MsgPauseBounty{},
		&MsgResumeBounty{},
		&MsgCompleteBounty{},
		&MsgCancelBounty{},
		&MsgSubmitVideo{},
		&MsgStartReview{},
		&MsgApproveSubmission{},
		&MsgRejectSubmission{},
		&MsgCreateProfile{},
		&MsgAwardBadge{},
		&MsgCreateDataset{},
		&MsgPurchaseDataset{},
		&MsgUpdateParams{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
