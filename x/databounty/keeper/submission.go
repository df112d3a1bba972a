package keeper

import (
	"context"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// SubmitVideo records a submission against an active bounty and reserves one
// reward's worth of escrow out of the bounty's remaining pool. The funds stay
// in module custody; the reservation is pure bookkeeping on the bounty record.
func (k Keeper) SubmitVideo(ctx context.Context, msg *databountytypes.MsgSubmitVideo) (*databountytypes.VideoSubmission, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasSubmission(ctx, msg.SubmissionId) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrSubmissionExists, "submission %s already exists", msg.SubmissionId)
	}

	bounty, found := k.GetBounty(ctx, msg.BountyId)
	if !found {
		return nil, sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", msg.BountyId)
	}
	if bounty.Status != databountytypes.BountyStatusActive {
		return nil, sdkerrors.Wrapf(databountytypes.ErrBountyNotActive,
			"bounty %s is %s", msg.BountyId, bounty.Status)
	}

	now := sdkCtx.BlockTime().Unix()
	if bounty.ExpiresAt != 0 && now >= bounty.ExpiresAt {
		return nil, sdkerrors.Wrapf(databountytypes.ErrBountyExpired,
			"bounty %s expired at %d", msg.BountyId, bounty.ExpiresAt)
	}
	if bounty.VideosCollected >= bounty.VideosTarget {
		return nil, sdkerrors.Wrapf(databountytypes.ErrBountyFull,
			"bounty %s already collected %d of %d videos", msg.BountyId, bounty.VideosCollected, bounty.VideosTarget)
	}
	if bounty.RemainingPool.LT(bounty.RewardPerVideo) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrInsufficientPool,
			"remaining pool %s cannot cover reward %s", bounty.RemainingPool, bounty.RewardPerVideo)
	}

	profile, found := k.GetProfile(ctx, msg.Contributor)
	if !found {
		return nil, sdkerrors.Wrapf(databountytypes.ErrProfileNotFound, "contributor %s has no profile", msg.Contributor)
	}

	remaining, err := SafeSub(bounty.RemainingPool, bounty.RewardPerVideo)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrInsufficientPool, err.Error())
	}
	bounty.RemainingPool = remaining

	total, err := SafeAddUint64(profile.TotalSubmissions, 1)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	profile.TotalSubmissions = total
	profile.LastActive = now

	submission := databountytypes.VideoSubmission{
		SubmissionId:        msg.SubmissionId,
		Contributor:         msg.Contributor,
		BountyId:            msg.BountyId,
		IpfsHash:            msg.IpfsHash,
		ArweaveTx:           msg.ArweaveTx,
		MetadataUri:         msg.MetadataUri,
		SubmissionTimestamp: now,
		Status:              databountytypes.SubmissionStatusPending,
		EscrowAmount:        bounty.RewardPerVideo,
	}

	k.SetBounty(ctx, bounty)
	k.SetSubmission(ctx, submission)
	k.SetProfile(ctx, profile)
	k.getStore(ctx).Set(SubmissionByBountyKey(msg.BountyId, msg.SubmissionId), []byte{})

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeVideoSubmitted,
			sdk.NewAttribute(databountytypes.AttributeKeySubmissionID, submission.SubmissionId),
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, submission.BountyId),
			sdk.NewAttribute(databountytypes.AttributeKeyContributor, submission.Contributor),
			sdk.NewAttribute(databountytypes.AttributeKeyEscrowAmount, submission.EscrowAmount.String()),
		),
	)

	return &submission, nil
}

// StartReview moves a pending submission into review. Only the owning
// bounty's authority may review.
func (k Keeper) StartReview(ctx context.Context, authority, submissionID string) error {
	submission, bounty, err := k.submissionForReview(ctx, authority, submissionID)
	if err != nil {
		return err
	}
	if submission.Status != databountytypes.SubmissionStatusPending {
		return sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"submission %s is %s, expected %s", submissionID, submission.Status, databountytypes.SubmissionStatusPending)
	}

	submission.Status = databountytypes.SubmissionStatusUnderReview
	k.SetSubmission(ctx, submission)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeReviewStarted,
			sdk.NewAttribute(databountytypes.AttributeKeySubmissionID, submissionID),
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, bounty.BountyId),
		),
	)
	return nil
}

// ApproveSubmission resolves a submission as accepted: the escrow is paid out
// to the contributor, the bounty's collected counter advances, and the
// contributor's profile and reputation are updated with the quality score.
// Returns the paid reward and the new reputation score.
func (k Keeper) ApproveSubmission(ctx context.Context, authority, submissionID string, qualityScore uint32) (math.Int, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	submission, bounty, err := k.submissionForReview(ctx, authority, submissionID)
	if err != nil {
		return math.Int{}, 0, err
	}
	if !submission.Status.IsResolvable() {
		return math.Int{}, 0, sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"submission %s is already %s", submissionID, submission.Status)
	}
	if qualityScore > databountytypes.MaxQualityScore {
		return math.Int{}, 0, sdkerrors.Wrapf(databountytypes.ErrInvalidQualityScore,
			"quality score %d exceeds maximum %d", qualityScore, databountytypes.MaxQualityScore)
	}
	if bounty.VideosCollected >= bounty.VideosTarget {
		return math.Int{}, 0, sdkerrors.Wrapf(databountytypes.ErrBountyFull,
			"bounty %s already collected %d of %d videos", bounty.BountyId, bounty.VideosCollected, bounty.VideosTarget)
	}

	profile, found := k.GetProfile(ctx, submission.Contributor)
	if !found {
		return math.Int{}, 0, sdkerrors.Wrapf(databountytypes.ErrProfileNotFound,
			"contributor %s has no profile", submission.Contributor)
	}

	contributor, err := sdk.AccAddressFromBech32(submission.Contributor)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
	}
	reward := submission.EscrowAmount
	coins := sdk.NewCoins(sdk.NewCoin(k.Denom(ctx), reward))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, databountytypes.ModuleName, contributor, coins); err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(err, "paying submission reward")
	}

	collected, err := SafeAddUint64(bounty.VideosCollected, 1)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	bounty.VideosCollected = collected

	total, err := SafeAddUint64(profile.TotalSubmissions, 1)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	accepted, err := SafeAddUint64(profile.AcceptedSubmissions, 1)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	earnings, err := SafeAdd(profile.TotalEarnings, reward)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	profile.TotalSubmissions = total
	profile.AcceptedSubmissions = accepted
	profile.TotalEarnings = earnings
	profile.LastActive = sdkCtx.BlockTime().Unix()
	profile.RecalculateReputation(qualityScore)

	submission.Status = databountytypes.SubmissionStatusApproved
	submission.QualityScore = qualityScore

	k.SetBounty(ctx, bounty)
	k.SetSubmission(ctx, submission)
	k.SetProfile(ctx, profile)

	k.Logger(sdkCtx).Info("submission approved",
		"submission_id", submissionID,
		"bounty_id", bounty.BountyId,
		"reward", reward.String(),
		"quality_score", qualityScore,
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeSubmissionApproved,
			sdk.NewAttribute(databountytypes.AttributeKeySubmissionID, submissionID),
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, bounty.BountyId),
			sdk.NewAttribute(databountytypes.AttributeKeyContributor, submission.Contributor),
			sdk.NewAttribute(databountytypes.AttributeKeyReward, reward.String()),
			sdk.NewAttribute(databountytypes.AttributeKeyQualityScore, strconv.FormatUint(uint64(qualityScore), 10)),
			sdk.NewAttribute(databountytypes.AttributeKeyReputationScore, strconv.FormatUint(profile.ReputationScore, 10)),
		),
	)

	return reward, profile.ReputationScore, nil
}

// RejectSubmission resolves a submission as rejected. The escrow returns to
// the bounty's remaining pool; if the bounty was cancelled in the meantime
// the escrow is refunded to the bounty authority instead, since a cancelled
// pool must stay zeroed. Returns the contributor's new reputation score.
func (k Keeper) RejectSubmission(ctx context.Context, authority, submissionID string) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	submission, bounty, err := k.submissionForReview(ctx, authority, submissionID)
	if err != nil {
		return 0, err
	}
	if !submission.Status.IsResolvable() {
		return 0, sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"submission %s is already %s", submissionID, submission.Status)
	}

	profile, found := k.GetProfile(ctx, submission.Contributor)
	if !found {
		return 0, sdkerrors.Wrapf(databountytypes.ErrProfileNotFound,
			"contributor %s has no profile", submission.Contributor)
	}

	if bounty.Status == databountytypes.BountyStatusCancelled {
		authorityAddr, err := sdk.AccAddressFromBech32(bounty.Authority)
		if err != nil {
			return 0, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
		}
		coins := sdk.NewCoins(sdk.NewCoin(k.Denom(ctx), submission.EscrowAmount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, databountytypes.ModuleName, authorityAddr, coins); err != nil {
			return 0, sdkerrors.Wrap(err, "refunding escrow of rejected submission")
		}
	} else {
		remaining, err := SafeAdd(bounty.RemainingPool, submission.EscrowAmount)
		if err != nil {
			return 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
		}
		bounty.RemainingPool = remaining
	}

	total, err := SafeAddUint64(profile.TotalSubmissions, 1)
	if err != nil {
		return 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	rejected, err := SafeAddUint64(profile.RejectedSubmissions, 1)
	if err != nil {
		return 0, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	profile.TotalSubmissions = total
	profile.RejectedSubmissions = rejected
	profile.LastActive = sdkCtx.BlockTime().Unix()
	profile.RecalculateReputation(0)

	submission.Status = databountytypes.SubmissionStatusRejected

	k.SetBounty(ctx, bounty)
	k.SetSubmission(ctx, submission)
	k.SetProfile(ctx, profile)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeSubmissionRejected,
			sdk.NewAttribute(databountytypes.AttributeKeySubmissionID, submissionID),
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, bounty.BountyId),
			sdk.NewAttribute(databountytypes.AttributeKeyContributor, submission.Contributor),
			sdk.NewAttribute(databountytypes.AttributeKeyReputationScore, strconv.FormatUint(profile.ReputationScore, 10)),
		),
	)

	return profile.ReputationScore, nil
}

// submissionForReview loads a submission with its bounty and checks that the
// caller is the bounty's authority.
func (k Keeper) submissionForReview(ctx context.Context, authority, submissionID string) (databountytypes.VideoSubmission, databountytypes.BountyPool, error) {
	submission, found := k.GetSubmission(ctx, submissionID)
	if !found {
		return databountytypes.VideoSubmission{}, databountytypes.BountyPool{},
			sdkerrors.Wrapf(databountytypes.ErrSubmissionNotFound, "submission %s", submissionID)
	}
	bounty, found := k.GetBounty(ctx, submission.BountyId)
	if !found {
		return databountytypes.VideoSubmission{}, databountytypes.BountyPool{},
			sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", submission.BountyId)
	}
	if bounty.Authority != authority {
		return databountytypes.VideoSubmission{}, databountytypes.BountyPool{},
			sdkerrors.Wrapf(databountytypes.ErrUnauthorized,
				"only the bounty authority may review submission %s", submissionID)
	}
	return submission, bounty, nil
}

// GetSubmission retrieves a video submission record.
func (k Keeper) GetSubmission(ctx context.Context, submissionID string) (databountytypes.VideoSubmission, bool) {
	store := k.getStore(ctx)
	bz := store.Get(SubmissionKey(submissionID))
	if bz == nil {
		return databountytypes.VideoSubmission{}, false
	}
	var submission databountytypes.VideoSubmission
	k.cdc.MustUnmarshal(bz, &submission)
	return submission, true
}

// SetSubmission writes a video submission record.
func (k Keeper) SetSubmission(ctx context.Context, submission databountytypes.VideoSubmission) {
	store := k.getStore(ctx)
	store.Set(SubmissionKey(submission.SubmissionId), k.cdc.MustMarshal(&submission))
}

// HasSubmission reports whether a submission record exists.
func (k Keeper) HasSubmission(ctx context.Context, submissionID string) bool {
	return k.getStore(ctx).Has(SubmissionKey(submissionID))
}

// IterateSubmissions walks all submission records, stopping when cb returns
// true.
func (k Keeper) IterateSubmissions(ctx context.Context, cb func(databountytypes.VideoSubmission) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, SubmissionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var submission databountytypes.VideoSubmission
		k.cdc.MustUnmarshal(iterator.Value(), &submission)
		if cb(submission) {
			break
		}
	}
}

// IterateSubmissionsByBounty walks the submissions of one bounty via the
// secondary index, stopping when cb returns true.
func (k Keeper) IterateSubmissionsByBounty(ctx context.Context, bountyID string, cb func(databountytypes.VideoSubmission) bool) {
	store := k.getStore(ctx)
	prefix := SubmissionByBountyIterKey(bountyID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		submissionID := string(iterator.Key()[len(prefix):])
		submission, found := k.GetSubmission(ctx, submissionID)
		if !found {
			continue
		}
		if cb(submission) {
			break
		}
	}
}
