package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// CreateBounty funds a new bounty pool. The full pool amount moves from the
// authority into module custody before the record is written, so a failed
// transfer leaves no state behind.
func (k Keeper) CreateBounty(ctx context.Context, msg *databountytypes.MsgCreateBounty) (*databountytypes.BountyPool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasBounty(ctx, msg.BountyId) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrBountyExists, "bounty %s already exists", msg.BountyId)
	}

	params := k.GetParams(ctx)
	if msg.VideosTarget > params.MaxVideosTarget {
		return nil, sdkerrors.Wrapf(databountytypes.ErrInvalidTarget,
			"videos target %d exceeds maximum %d", msg.VideosTarget, params.MaxVideosTarget)
	}
	required, err := SafeMul(msg.RewardPerVideo, math.NewIntFromUint64(msg.VideosTarget))
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrInvalidAmount, err.Error())
	}
	if msg.TotalPool.LT(required) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrInsufficientPool,
			"total pool %s cannot cover %d rewards of %s", msg.TotalPool, msg.VideosTarget, msg.RewardPerVideo)
	}

	now := sdkCtx.BlockTime().Unix()
	if msg.ExpiresAt != 0 && msg.ExpiresAt <= now {
		return nil, sdkerrors.Wrapf(databountytypes.ErrInvalidRequest,
			"expiry %d is not in the future", msg.ExpiresAt)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
	}

	funding := sdk.NewCoins(sdk.NewCoin(params.Denom, msg.TotalPool))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, authority, databountytypes.ModuleName, funding); err != nil {
		return nil, sdkerrors.Wrap(err, "funding bounty pool")
	}

	bounty := databountytypes.BountyPool{
		BountyId:        msg.BountyId,
		Authority:       msg.Authority,
		TaskDescription: msg.TaskDescription,
		Requirements:    msg.Requirements,
		RewardPerVideo:  msg.RewardPerVideo,
		TotalPool:       msg.TotalPool,
		RemainingPool:   msg.TotalPool,
		VideosTarget:    msg.VideosTarget,
		VideosCollected: 0,
		Status:          databountytypes.BountyStatusActive,
		CreatedAt:       now,
		ExpiresAt:       msg.ExpiresAt,
	}
	k.SetBounty(ctx, bounty)

	k.Logger(sdkCtx).Info("bounty created",
		"bounty_id", bounty.BountyId,
		"total_pool", bounty.TotalPool.String(),
		"videos_target", bounty.VideosTarget,
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeBountyCreated,
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, bounty.BountyId),
			sdk.NewAttribute(databountytypes.AttributeKeyAuthority, bounty.Authority),
			sdk.NewAttribute(databountytypes.AttributeKeyTotalPool, bounty.TotalPool.String()),
			sdk.NewAttribute(databountytypes.AttributeKeyRewardPerVideo, bounty.RewardPerVideo.String()),
			sdk.NewAttribute(databountytypes.AttributeKeyVideosTarget, math.NewIntFromUint64(bounty.VideosTarget).String()),
		),
	)

	return &bounty, nil
}

// PauseBounty suspends submissions on an active bounty. Only the bounty
// authority may pause.
func (k Keeper) PauseBounty(ctx context.Context, authority, bountyID string) error {
	return k.transitionBounty(ctx, authority, bountyID,
		databountytypes.BountyStatusActive, databountytypes.BountyStatusPaused)
}

// ResumeBounty reopens a paused bounty. Resuming past the expiry time is
// refused.
func (k Keeper) ResumeBounty(ctx context.Context, authority, bountyID string) error {
	bounty, found := k.GetBounty(ctx, bountyID)
	if !found {
		return sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", bountyID)
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if bounty.ExpiresAt != 0 && now >= bounty.ExpiresAt {
		return sdkerrors.Wrapf(databountytypes.ErrBountyExpired, "bounty %s expired at %d", bountyID, bounty.ExpiresAt)
	}
	return k.transitionBounty(ctx, authority, bountyID,
		databountytypes.BountyStatusPaused, databountytypes.BountyStatusActive)
}

// CompleteBounty marks a bounty completed. Leftover pool funds stay in module
// custody until outstanding submissions are resolved; the record keeps the
// remaining balance so nothing is lost on export.
func (k Keeper) CompleteBounty(ctx context.Context, authority, bountyID string) error {
	bounty, found := k.GetBounty(ctx, bountyID)
	if !found {
		return sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", bountyID)
	}
	if bounty.Authority != authority {
		return sdkerrors.Wrapf(databountytypes.ErrUnauthorized, "only the bounty authority may modify bounty %s", bountyID)
	}
	if bounty.Status.IsTerminal() {
		return sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"bounty %s is already %s", bountyID, bounty.Status)
	}

	old := bounty.Status
	bounty.Status = databountytypes.BountyStatusCompleted
	k.SetBounty(ctx, bounty)

	k.emitStatusChange(ctx, bountyID, old, bounty.Status)
	return nil
}

// CancelBounty cancels a bounty and refunds the unreserved pool to the
// authority. Escrow held for unresolved submissions stays in module custody;
// those submissions remain resolvable and a later rejection refunds the
// authority directly. Returns the refunded amount.
func (k Keeper) CancelBounty(ctx context.Context, authority, bountyID string) (math.Int, error) {
	bounty, found := k.GetBounty(ctx, bountyID)
	if !found {
		return math.Int{}, sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", bountyID)
	}
	if bounty.Authority != authority {
		return math.Int{}, sdkerrors.Wrapf(databountytypes.ErrUnauthorized, "only the bounty authority may modify bounty %s", bountyID)
	}
	if bounty.Status.IsTerminal() {
		return math.Int{}, sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"bounty %s is already %s", bountyID, bounty.Status)
	}

	refund := bounty.RemainingPool
	if refund.IsPositive() {
		authorityAddr, err := sdk.AccAddressFromBech32(authority)
		if err != nil {
			return math.Int{}, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
		}
		coins := sdk.NewCoins(sdk.NewCoin(k.Denom(ctx), refund))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, databountytypes.ModuleName, authorityAddr, coins); err != nil {
			return math.Int{}, sdkerrors.Wrap(err, "refunding bounty pool")
		}
	}

	old := bounty.Status
	bounty.RemainingPool = math.ZeroInt()
	bounty.Status = databountytypes.BountyStatusCancelled
	k.SetBounty(ctx, bounty)

	k.Logger(sdk.UnwrapSDKContext(ctx)).Info("bounty cancelled",
		"bounty_id", bountyID,
		"refund", refund.String(),
	)
	k.emitStatusChange(ctx, bountyID, old, bounty.Status)

	return refund, nil
}

func (k Keeper) transitionBounty(ctx context.Context, authority, bountyID string, from, to databountytypes.BountyStatus) error {
	bounty, found := k.GetBounty(ctx, bountyID)
	if !found {
		return sdkerrors.Wrapf(databountytypes.ErrBountyNotFound, "bounty %s", bountyID)
	}
	if bounty.Authority != authority {
		return sdkerrors.Wrapf(databountytypes.ErrUnauthorized, "only the bounty authority may modify bounty %s", bountyID)
	}
	if bounty.Status != from {
		return sdkerrors.Wrapf(databountytypes.ErrInvalidStatus,
			"bounty %s is %s, expected %s", bountyID, bounty.Status, from)
	}

	bounty.Status = to
	k.SetBounty(ctx, bounty)

	k.emitStatusChange(ctx, bountyID, from, to)
	return nil
}

func (k Keeper) emitStatusChange(ctx context.Context, bountyID string, from, to databountytypes.BountyStatus) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeBountyStatusChanged,
			sdk.NewAttribute(databountytypes.AttributeKeyBountyID, bountyID),
			sdk.NewAttribute(databountytypes.AttributeKeyOldStatus, from.String()),
			sdk.NewAttribute(databountytypes.AttributeKeyNewStatus, to.String()),
		),
	)
}

// GetBounty retrieves a bounty pool record.
func (k Keeper) GetBounty(ctx context.Context, bountyID string) (databountytypes.BountyPool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(BountyKey(bountyID))
	if bz == nil {
		return databountytypes.BountyPool{}, false
	}
	var bounty databountytypes.BountyPool
	k.cdc.MustUnmarshal(bz, &bounty)
	return bounty, true
}

// SetBounty writes a bounty pool record.
func (k Keeper) SetBounty(ctx context.Context, bounty databountytypes.BountyPool) {
	store := k.getStore(ctx)
	store.Set(BountyKey(bounty.BountyId), k.cdc.MustMarshal(&bounty))
}

// HasBounty reports whether a bounty record exists.
func (k Keeper) HasBounty(ctx context.Context, bountyID string) bool {
	return k.getStore(ctx).Has(BountyKey(bountyID))
}

// IterateBounties walks all bounty records, stopping when cb returns true.
func (k Keeper) IterateBounties(ctx context.Context, cb func(databountytypes.BountyPool) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, BountyKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var bounty databountytypes.BountyPool
		k.cdc.MustUnmarshal(iterator.Value(), &bounty)
		if cb(bounty) {
			break
		}
	}
}
