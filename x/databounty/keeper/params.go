package keeper

import (
	"context"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when the store has never been initialized.
func (k Keeper) GetParams(ctx context.Context) databountytypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return databountytypes.DefaultParams()
	}
	var params databountytypes.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params databountytypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(ParamsKey, k.cdc.MustMarshal(&params))
	return nil
}

// Denom returns the staking denom bounty pools and dataset sales settle in.
func (k Keeper) Denom(ctx context.Context) string {
	return k.GetParams(ctx).Denom
}
