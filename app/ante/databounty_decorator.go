package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	databountykeeper "github.com/AhegaoBurger/DataForge/x/databounty/keeper"
	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// Gas charged for stateful pre-checks performed by the decorator
const (
	bountyValidationGas     uint64 = 5_000
	submissionValidationGas uint64 = 7_500
	datasetValidationGas    uint64 = 5_000
)

// DataBountyDecorator validates databounty module-specific transaction requirements
type DataBountyDecorator struct {
	keeper databountykeeper.Keeper
}

// NewDataBountyDecorator creates a new DataBountyDecorator
func NewDataBountyDecorator(keeper databountykeeper.Keeper) DataBountyDecorator {
	return DataBountyDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (dd DataBountyDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *databountytypes.MsgCreateBounty:
			if err := dd.validateCreateBounty(ctx, msg); err != nil {
				return ctx, err
			}
		case *databountytypes.MsgSubmitVideo:
			if err := dd.validateSubmitVideo(ctx, msg); err != nil {
				return ctx, err
			}
		case *databountytypes.MsgApproveSubmission:
			if err := dd.validateResolution(ctx, msg.Authority, msg.SubmissionId); err != nil {
				return ctx, err
			}
		case *databountytypes.MsgRejectSubmission:
			if err := dd.validateResolution(ctx, msg.Authority, msg.SubmissionId); err != nil {
				return ctx, err
			}
		case *databountytypes.MsgPurchaseDataset:
			if err := dd.validatePurchaseDataset(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateCreateBounty performs additional validation for bounty creation
func (dd DataBountyDecorator) validateCreateBounty(ctx sdk.Context, msg *databountytypes.MsgCreateBounty) error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(bountyValidationGas, "bounty creation validation")

	if dd.keeper.HasBounty(ctx, msg.BountyId) {
		return sdkerrors.ErrInvalidRequest.Wrapf("bounty %s already exists", msg.BountyId)
	}

	params := dd.keeper.GetParams(ctx)
	if msg.VideosTarget > params.MaxVideosTarget {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"videos target %d exceeds maximum %d", msg.VideosTarget, params.MaxVideosTarget,
		)
	}

	// ExpiresAt == 0 means the bounty never expires, matching the keeper.
	if msg.ExpiresAt != 0 && msg.ExpiresAt <= ctx.BlockTime().Unix() {
		return sdkerrors.ErrInvalidRequest.Wrap("bounty expiry must be in the future")
	}

	return nil
}

// validateSubmitVideo checks the target bounty is still accepting work before
// the message reaches the handler
func (dd DataBountyDecorator) validateSubmitVideo(ctx sdk.Context, msg *databountytypes.MsgSubmitVideo) error {
	if _, err := sdk.AccAddressFromBech32(msg.Contributor); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid contributor address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(submissionValidationGas, "video submission validation")

	bounty, found := dd.keeper.GetBounty(ctx, msg.BountyId)
	if !found {
		return sdkerrors.ErrNotFound.Wrapf("bounty %s not found", msg.BountyId)
	}

	if bounty.Status != databountytypes.BountyStatusActive {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"bounty %s is not accepting submissions: status %s", msg.BountyId, bounty.Status,
		)
	}

	if bounty.VideosCollected >= bounty.VideosTarget {
		return sdkerrors.ErrInvalidRequest.Wrapf("bounty %s has reached its collection target", msg.BountyId)
	}

	return nil
}

// validateResolution checks the submission exists and is still open
func (dd DataBountyDecorator) validateResolution(ctx sdk.Context, authority, submissionID string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(submissionValidationGas, "submission resolution validation")

	submission, found := dd.keeper.GetSubmission(ctx, submissionID)
	if !found {
		return sdkerrors.ErrNotFound.Wrapf("submission %s not found", submissionID)
	}

	if !submission.Status.IsResolvable() {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"submission %s already resolved: status %s", submissionID, submission.Status,
		)
	}

	return nil
}

// validatePurchaseDataset checks the dataset exists and is purchasable
func (dd DataBountyDecorator) validatePurchaseDataset(ctx sdk.Context, msg *databountytypes.MsgPurchaseDataset) error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid buyer address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(datasetValidationGas, "dataset purchase validation")

	dataset, found := dd.keeper.GetDataset(ctx, msg.DatasetId)
	if !found {
		return sdkerrors.ErrNotFound.Wrapf("dataset %s not found", msg.DatasetId)
	}

	if msg.Buyer == dataset.Creator {
		return sdkerrors.ErrInvalidRequest.Wrap("creator cannot purchase own dataset")
	}

	return nil
}
