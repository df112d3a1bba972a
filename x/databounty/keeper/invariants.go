package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// RegisterInvariants registers all databounty invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-accounting", PoolAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "collection-bounds", CollectionBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reputation-range", ReputationRangeInvariant(k))
}

// AllInvariants runs all invariants of the databounty module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolAccountingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ModuleAccountBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = CollectionBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ReputationRangeInvariant(k)(ctx)
	}
}

// PoolAccountingInvariant checks that for every non-cancelled bounty the
// remaining pool plus all committed escrow (outstanding or paid out) equals
// the total pool, and that a cancelled bounty's pool is zeroed.
func PoolAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		committed := make(map[string]math.Int)
		k.IterateSubmissions(ctx, func(s types.VideoSubmission) bool {
			if s.Status.IsResolvable() || s.Status == types.SubmissionStatusApproved {
				sum, ok := committed[s.BountyId]
				if !ok {
					sum = math.ZeroInt()
				}
				committed[s.BountyId] = sum.Add(s.EscrowAmount)
			}
			return false
		})

		k.IterateBounties(ctx, func(b types.BountyPool) bool {
			if b.Status == types.BountyStatusCancelled {
				if !b.RemainingPool.IsZero() {
					count++
					msg += fmt.Sprintf("cancelled bounty %s: remaining pool (%s) not zero\n",
						b.BountyId, b.RemainingPool.String())
				}
				return false
			}
			sum, ok := committed[b.BountyId]
			if !ok {
				sum = math.ZeroInt()
			}
			if !b.RemainingPool.Add(sum).Equal(b.TotalPool) {
				count++
				msg += fmt.Sprintf("bounty %s: remaining (%s) + committed (%s) != total (%s)\n",
					b.BountyId, b.RemainingPool.String(), sum.String(), b.TotalPool.String())
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-accounting",
			fmt.Sprintf("found %d bounties with broken pool accounting\n%s", count, msg),
		), broken
	}
}

// ModuleAccountBalanceInvariant checks that the module account holds at least
// the unreserved pool balances plus all outstanding escrow.
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := math.ZeroInt()

		k.IterateBounties(ctx, func(b types.BountyPool) bool {
			required = required.Add(b.RemainingPool)
			return false
		})
		k.IterateSubmissions(ctx, func(s types.VideoSubmission) bool {
			if s.Status.IsResolvable() {
				required = required.Add(s.EscrowAmount)
			}
			return false
		})

		balance := k.bankKeeper.GetBalance(ctx, k.moduleAddress(), k.Denom(ctx))
		broken := balance.Amount.LT(required)
		return sdk.FormatInvariant(
			types.ModuleName, "module-account-balance",
			fmt.Sprintf("module balance %s, required %s\n", balance.Amount.String(), required.String()),
		), broken
	}
}

// CollectionBoundsInvariant checks per-bounty counter and balance bounds.
func CollectionBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateBounties(ctx, func(b types.BountyPool) bool {
			if b.VideosCollected > b.VideosTarget {
				count++
				msg += fmt.Sprintf("bounty %s: collected (%d) > target (%d)\n",
					b.BountyId, b.VideosCollected, b.VideosTarget)
			}
			if b.RemainingPool.IsNegative() || b.RemainingPool.GT(b.TotalPool) {
				count++
				msg += fmt.Sprintf("bounty %s: remaining pool (%s) outside [0, %s]\n",
					b.BountyId, b.RemainingPool.String(), b.TotalPool.String())
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "collection-bounds",
			fmt.Sprintf("found %d bounties with out-of-bounds counters\n%s", count, msg),
		), broken
	}
}

// ReputationRangeInvariant checks profile score bounds and counter identity.
func ReputationRangeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateProfiles(ctx, func(p types.ContributorProfile) bool {
			if p.ReputationScore > types.MaxReputation {
				count++
				msg += fmt.Sprintf("profile %s: reputation (%d) > %d\n",
					p.Wallet, p.ReputationScore, types.MaxReputation)
			}
			if p.AverageQualityScore > types.MaxQualityScore {
				count++
				msg += fmt.Sprintf("profile %s: average quality (%d) > %d\n",
					p.Wallet, p.AverageQualityScore, types.MaxQualityScore)
			}
			if p.AcceptedSubmissions+p.RejectedSubmissions > p.TotalSubmissions {
				count++
				msg += fmt.Sprintf("profile %s: accepted (%d) + rejected (%d) > total (%d)\n",
					p.Wallet, p.AcceptedSubmissions, p.RejectedSubmissions, p.TotalSubmissions)
			}
			if len(p.Badges) > types.MaxBadgesPerProfile {
				count++
				msg += fmt.Sprintf("profile %s: %d badges exceeds %d\n",
					p.Wallet, len(p.Badges), types.MaxBadgesPerProfile)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reputation-range",
			fmt.Sprintf("found %d profiles with broken reputation state\n%s", count, msg),
		), broken
	}
}
