package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// Keeper of the databounty store. Bounty pools and submission escrow are held
// in the module account; the keeper is the only writer of module state.
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           *codec.LegacyAmino
	accountKeeper databountytypes.AccountKeeper
	bankKeeper    databountytypes.BankKeeper

	// authority is the bech32 address allowed to update params and award
	// badges, normally the gov module account.
	authority string
}

// NewKeeper creates a new databounty Keeper instance.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	accountKeeper databountytypes.AccountKeeper,
	bankKeeper databountytypes.BankKeeper,
	authority string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic("invalid databounty authority address: " + err.Error())
	}
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     authority,
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+databountytypes.ModuleName)
}

// getStore returns the KVStore for the databounty module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// moduleAddress returns the module account address holding pool funds and
// escrow.
func (k Keeper) moduleAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(databountytypes.ModuleName)
}
