package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction-handling surface of the databounty module.
type MsgServer interface {
	CreateBounty(context.Context, *MsgCreateBounty) (*MsgCreateBountyResponse, error)
	PauseBounty(context.Context, *MsgPauseBounty) (*MsgPauseBountyResponse, error)
	ResumeBounty(context.Context, *MsgResumeBounty) (*MsgResumeBountyResponse, error)
	CompleteBounty(context.Context, *MsgCompleteBounty) (*MsgCompleteBountyResponse, error)
	CancelBounty(context.Context, *MsgCancelBounty) (*MsgCancelBountyResponse, error)
	SubmitVideo(context.Context, *MsgSubmitVideo) (*MsgSubmitVideoResponse, error)
	StartReview(context.Context, *MsgStartReview) (*MsgStartReviewResponse, error)
	ApproveSubmission(context.Context, *MsgApproveSubmission) (*MsgApproveSubmissionResponse, error)
	RejectSubmission(context.Context, *MsgRejectSubmission) (*MsgRejectSubmissionResponse, error)
	CreateProfile(context.Context, *MsgCreateProfile) (*MsgCreateProfileResponse, error)
	AwardBadge(context.Context, *MsgAwardBadge) (*MsgAwardBadgeResponse, error)
	CreateDataset(context.Context, *MsgCreateDataset) (*MsgCreateDatasetResponse, error)
	PurchaseDataset(context.Context, *MsgPurchaseDataset) (*MsgPurchaseDatasetResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreateBountyResponse reports the created bounty's initial pool state.
type MsgCreateBountyResponse struct {
	BountyId      string   `json:"bounty_id"`
	RemainingPool math.Int `json:"remaining_pool"`
}

// MsgPauseBountyResponse is the empty pause acknowledgement.
type MsgPauseBountyResponse struct{}

// MsgResumeBountyResponse is the empty resume acknowledgement.
type MsgResumeBountyResponse struct{}

// MsgCompleteBountyResponse is the empty completion acknowledgement.
type MsgCompleteBountyResponse struct{}

// MsgCancelBountyResponse reports the amount refunded to the authority.
type MsgCancelBountyResponse struct {
	Refund math.Int `json:"refund"`
}

// MsgSubmitVideoResponse reports the escrow reserved for the submission.
type MsgSubmitVideoResponse struct {
	SubmissionId string   `json:"submission_id"`
	EscrowAmount math.Int `json:"escrow_amount"`
}

// MsgStartReviewResponse is the empty review-start acknowledgement.
type MsgStartReviewResponse struct{}

// MsgApproveSubmissionResponse reports the payout and updated reputation.
type MsgApproveSubmissionResponse struct {
	Reward          math.Int `json:"reward"`
	ReputationScore uint64   `json:"reputation_score"`
}

// MsgRejectSubmissionResponse reports the updated reputation.
type MsgRejectSubmissionResponse struct {
	ReputationScore uint64 `json:"reputation_score"`
}

// MsgCreateProfileResponse reports the starting reputation score.
type MsgCreateProfileResponse struct {
	ReputationScore uint64 `json:"reputation_score"`
}

// MsgAwardBadgeResponse is the empty badge acknowledgement.
type MsgAwardBadgeResponse struct{}

// MsgCreateDatasetResponse echoes the created dataset id.
type MsgCreateDatasetResponse struct {
	DatasetId string `json:"dataset_id"`
}

// MsgPurchaseDatasetResponse reports the price paid and the sale counter.
type MsgPurchaseDatasetResponse struct {
	Price      math.Int `json:"price"`
	TotalSales uint64   `json:"total_sales"`
}

// MsgUpdateParamsResponse is the empty params acknowledgement.
type MsgUpdateParamsResponse struct{}
