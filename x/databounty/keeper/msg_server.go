package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"

	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the databounty MsgServer
// interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateBounty handles funding of a new bounty pool.
func (ms msgServer) CreateBounty(goCtx context.Context, msg *types.MsgCreateBounty) (*types.MsgCreateBountyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateBounty: validate: %w", err)
	}

	bounty, err := ms.Keeper.CreateBounty(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("CreateBounty: %w", err)
	}

	return &types.MsgCreateBountyResponse{
		BountyId:      bounty.BountyId,
		RemainingPool: bounty.RemainingPool,
	}, nil
}

// PauseBounty handles suspension of an active bounty.
func (ms msgServer) PauseBounty(goCtx context.Context, msg *types.MsgPauseBounty) (*types.MsgPauseBountyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PauseBounty: validate: %w", err)
	}

	if err := ms.Keeper.PauseBounty(goCtx, msg.Authority, msg.BountyId); err != nil {
		return nil, fmt.Errorf("PauseBounty: %w", err)
	}

	return &types.MsgPauseBountyResponse{}, nil
}

// ResumeBounty handles reopening of a paused bounty.
func (ms msgServer) ResumeBounty(goCtx context.Context, msg *types.MsgResumeBounty) (*types.MsgResumeBountyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResumeBounty: validate: %w", err)
	}

	if err := ms.Keeper.ResumeBounty(goCtx, msg.Authority, msg.BountyId); err != nil {
		return nil, fmt.Errorf("ResumeBounty: %w", err)
	}

	return &types.MsgResumeBountyResponse{}, nil
}

// CompleteBounty handles completion of a bounty.
func (ms msgServer) CompleteBounty(goCtx context.Context, msg *types.MsgCompleteBounty) (*types.MsgCompleteBountyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CompleteBounty: validate: %w", err)
	}

	if err := ms.Keeper.CompleteBounty(goCtx, msg.Authority, msg.BountyId); err != nil {
		return nil, fmt.Errorf("CompleteBounty: %w", err)
	}

	return &types.MsgCompleteBountyResponse{}, nil
}

// CancelBounty handles cancellation and pool refund of a bounty.
func (ms msgServer) CancelBounty(goCtx context.Context, msg *types.MsgCancelBounty) (*types.MsgCancelBountyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelBounty: validate: %w", err)
	}

	refund, err := ms.Keeper.CancelBounty(goCtx, msg.Authority, msg.BountyId)
	if err != nil {
		return nil, fmt.Errorf("CancelBounty: %w", err)
	}

	return &types.MsgCancelBountyResponse{Refund: refund}, nil
}

// SubmitVideo handles a new video submission with escrow reservation.
func (ms msgServer) SubmitVideo(goCtx context.Context, msg *types.MsgSubmitVideo) (*types.MsgSubmitVideoResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SubmitVideo: validate: %w", err)
	}

	submission, err := ms.Keeper.SubmitVideo(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("SubmitVideo: %w", err)
	}

	return &types.MsgSubmitVideoResponse{
		SubmissionId: submission.SubmissionId,
		EscrowAmount: submission.EscrowAmount,
	}, nil
}

// StartReview handles moving a pending submission into review.
func (ms msgServer) StartReview(goCtx context.Context, msg *types.MsgStartReview) (*types.MsgStartReviewResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("StartReview: validate: %w", err)
	}

	if err := ms.Keeper.StartReview(goCtx, msg.Authority, msg.SubmissionId); err != nil {
		return nil, fmt.Errorf("StartReview: %w", err)
	}

	return &types.MsgStartReviewResponse{}, nil
}

// ApproveSubmission handles acceptance of a submission and reward payout.
func (ms msgServer) ApproveSubmission(goCtx context.Context, msg *types.MsgApproveSubmission) (*types.MsgApproveSubmissionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApproveSubmission: validate: %w", err)
	}

	reward, reputation, err := ms.Keeper.ApproveSubmission(goCtx, msg.Authority, msg.SubmissionId, msg.QualityScore)
	if err != nil {
		return nil, fmt.Errorf("ApproveSubmission: %w", err)
	}

	return &types.MsgApproveSubmissionResponse{
		Reward:          reward,
		ReputationScore: reputation,
	}, nil
}

// RejectSubmission handles rejection of a submission and escrow return.
func (ms msgServer) RejectSubmission(goCtx context.Context, msg *types.MsgRejectSubmission) (*types.MsgRejectSubmissionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RejectSubmission: validate: %w", err)
	}

	reputation, err := ms.Keeper.RejectSubmission(goCtx, msg.Authority, msg.SubmissionId)
	if err != nil {
		return nil, fmt.Errorf("RejectSubmission: %w", err)
	}

	return &types.MsgRejectSubmissionResponse{ReputationScore: reputation}, nil
}

// CreateProfile handles contributor profile initialization.
func (ms msgServer) CreateProfile(goCtx context.Context, msg *types.MsgCreateProfile) (*types.MsgCreateProfileResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateProfile: validate: %w", err)
	}

	profile, err := ms.Keeper.CreateProfile(goCtx, msg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("CreateProfile: %w", err)
	}

	return &types.MsgCreateProfileResponse{ReputationScore: profile.ReputationScore}, nil
}

// AwardBadge handles granting of an achievement badge.
func (ms msgServer) AwardBadge(goCtx context.Context, msg *types.MsgAwardBadge) (*types.MsgAwardBadgeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AwardBadge: validate: %w", err)
	}

	if err := ms.Keeper.AwardBadge(goCtx, msg.Authority, msg.Wallet, msg.BadgeType); err != nil {
		return nil, fmt.Errorf("AwardBadge: %w", err)
	}

	return &types.MsgAwardBadgeResponse{}, nil
}

// CreateDataset handles listing of a dataset.
func (ms msgServer) CreateDataset(goCtx context.Context, msg *types.MsgCreateDataset) (*types.MsgCreateDatasetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateDataset: validate: %w", err)
	}

	dataset, err := ms.Keeper.CreateDataset(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("CreateDataset: %w", err)
	}

	return &types.MsgCreateDatasetResponse{DatasetId: dataset.DatasetId}, nil
}

// PurchaseDataset handles a dataset license purchase.
func (ms msgServer) PurchaseDataset(goCtx context.Context, msg *types.MsgPurchaseDataset) (*types.MsgPurchaseDatasetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PurchaseDataset: validate: %w", err)
	}

	dataset, err := ms.Keeper.PurchaseDataset(goCtx, msg.Buyer, msg.DatasetId)
	if err != nil {
		return nil, fmt.Errorf("PurchaseDataset: %w", err)
	}

	return &types.MsgPurchaseDatasetResponse{
		Price:      dataset.Price,
		TotalSales: dataset.TotalSales,
	}, nil
}

// UpdateParams handles a governance parameter update.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}
	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, sdkerrors.Wrapf(types.ErrUnauthorized,
			"expected authority %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}

	if err := ms.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
