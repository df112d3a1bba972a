package keeper

import (
	"context"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// CreateProfile registers a contributor profile at the neutral reputation
// score. A wallet gets exactly one profile.
func (k Keeper) CreateProfile(ctx context.Context, wallet string) (*databountytypes.ContributorProfile, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasProfile(ctx, wallet) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrProfileExists, "profile for %s already exists", wallet)
	}

	profile := databountytypes.NewContributorProfile(wallet, sdkCtx.BlockTime().Unix())
	k.SetProfile(ctx, profile)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeProfileCreated,
			sdk.NewAttribute(databountytypes.AttributeKeyWallet, wallet),
			sdk.NewAttribute(databountytypes.AttributeKeyReputationScore, strconv.FormatUint(profile.ReputationScore, 10)),
		),
	)

	return &profile, nil
}

// AwardBadge grants an achievement badge to a contributor. Badge types are
// unique per profile and the badge list is capped.
func (k Keeper) AwardBadge(ctx context.Context, authority, wallet, badgeType string) error {
	if authority != k.authority {
		return sdkerrors.Wrapf(databountytypes.ErrUnauthorized,
			"badge awards are restricted to the module authority; got %s", authority)
	}

	profile, found := k.GetProfile(ctx, wallet)
	if !found {
		return sdkerrors.Wrapf(databountytypes.ErrProfileNotFound, "profile for %s", wallet)
	}
	if profile.HasBadge(badgeType) {
		return sdkerrors.Wrapf(databountytypes.ErrBadgeAlreadyEarned, "badge %s already earned by %s", badgeType, wallet)
	}
	if len(profile.Badges) >= databountytypes.MaxBadgesPerProfile {
		return sdkerrors.Wrapf(databountytypes.ErrTooManyBadges,
			"profile %s already holds %d badges", wallet, databountytypes.MaxBadgesPerProfile)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	profile.Badges = append(profile.Badges, databountytypes.Badge{
		BadgeType: badgeType,
		EarnedAt:  sdkCtx.BlockTime().Unix(),
	})
	k.SetProfile(ctx, profile)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeBadgeAwarded,
			sdk.NewAttribute(databountytypes.AttributeKeyWallet, wallet),
			sdk.NewAttribute(databountytypes.AttributeKeyBadgeType, badgeType),
		),
	)

	return nil
}

// GetProfile retrieves a contributor profile record.
func (k Keeper) GetProfile(ctx context.Context, wallet string) (databountytypes.ContributorProfile, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ProfileKey(wallet))
	if bz == nil {
		return databountytypes.ContributorProfile{}, false
	}
	var profile databountytypes.ContributorProfile
	k.cdc.MustUnmarshal(bz, &profile)
	return profile, true
}

// SetProfile writes a contributor profile record.
func (k Keeper) SetProfile(ctx context.Context, profile databountytypes.ContributorProfile) {
	store := k.getStore(ctx)
	store.Set(ProfileKey(profile.Wallet), k.cdc.MustMarshal(&profile))
}

// HasProfile reports whether a profile record exists.
func (k Keeper) HasProfile(ctx context.Context, wallet string) bool {
	return k.getStore(ctx).Has(ProfileKey(wallet))
}

// IterateProfiles walks all profile records, stopping when cb returns true.
func (k Keeper) IterateProfiles(ctx context.Context, cb func(databountytypes.ContributorProfile) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProfileKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var profile databountytypes.ContributorProfile
		k.cdc.MustUnmarshal(iterator.Value(), &profile)
		if cb(profile) {
			break
		}
	}
}
