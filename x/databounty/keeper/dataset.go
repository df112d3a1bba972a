package keeper

import (
	"context"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// CreateDataset lists a dataset for sale under the given license terms.
func (k Keeper) CreateDataset(ctx context.Context, msg *databountytypes.MsgCreateDataset) (*databountytypes.DatasetNFT, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasDataset(ctx, msg.DatasetId) {
		return nil, sdkerrors.Wrapf(databountytypes.ErrDatasetExists, "dataset %s already exists", msg.DatasetId)
	}

	dataset := databountytypes.DatasetNFT{
		DatasetId:         msg.DatasetId,
		Creator:           msg.Creator,
		LicenseType:       msg.LicenseType,
		Price:             msg.Price,
		RoyaltyPercentage: msg.RoyaltyPercentage,
		CreatedAt:         sdkCtx.BlockTime().Unix(),
		TotalSales:        0,
	}
	k.SetDataset(ctx, dataset)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeDatasetCreated,
			sdk.NewAttribute(databountytypes.AttributeKeyDatasetID, dataset.DatasetId),
			sdk.NewAttribute(databountytypes.AttributeKeyCreator, dataset.Creator),
			sdk.NewAttribute(databountytypes.AttributeKeyPrice, dataset.Price.String()),
		),
	)

	return &dataset, nil
}

// PurchaseDataset pays the listed price from the buyer directly to the
// creator and bumps the sale counter. The royalty percentage is recorded on
// the listing but takes no part in settlement.
func (k Keeper) PurchaseDataset(ctx context.Context, buyer, datasetID string) (*databountytypes.DatasetNFT, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return nil, sdkerrors.Wrapf(databountytypes.ErrDatasetNotFound, "dataset %s", datasetID)
	}
	if buyer == dataset.Creator {
		return nil, sdkerrors.Wrapf(databountytypes.ErrInvalidRequest,
			"creator cannot purchase own dataset %s", datasetID)
	}

	buyerAddr, err := sdk.AccAddressFromBech32(buyer)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
	}
	creatorAddr, err := sdk.AccAddressFromBech32(dataset.Creator)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrInvalidAddress, err.Error())
	}

	price := sdk.NewCoins(sdk.NewCoin(k.Denom(ctx), dataset.Price))
	if err := k.bankKeeper.SendCoins(ctx, buyerAddr, creatorAddr, price); err != nil {
		return nil, sdkerrors.Wrap(err, "paying dataset price")
	}

	sales, err := SafeAddUint64(dataset.TotalSales, 1)
	if err != nil {
		return nil, sdkerrors.Wrap(databountytypes.ErrOverflow, err.Error())
	}
	dataset.TotalSales = sales
	k.SetDataset(ctx, dataset)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(databountytypes.EventTypeDatasetPurchased,
			sdk.NewAttribute(databountytypes.AttributeKeyDatasetID, datasetID),
			sdk.NewAttribute(databountytypes.AttributeKeyBuyer, buyer),
			sdk.NewAttribute(databountytypes.AttributeKeyCreator, dataset.Creator),
			sdk.NewAttribute(databountytypes.AttributeKeyPrice, dataset.Price.String()),
			sdk.NewAttribute(databountytypes.AttributeKeyTotalSales, strconv.FormatUint(dataset.TotalSales, 10)),
		),
	)

	return &dataset, nil
}

// GetDataset retrieves a dataset record.
func (k Keeper) GetDataset(ctx context.Context, datasetID string) (databountytypes.DatasetNFT, bool) {
	store := k.getStore(ctx)
	bz := store.Get(DatasetKey(datasetID))
	if bz == nil {
		return databountytypes.DatasetNFT{}, false
	}
	var dataset databountytypes.DatasetNFT
	k.cdc.MustUnmarshal(bz, &dataset)
	return dataset, true
}

// SetDataset writes a dataset record.
func (k Keeper) SetDataset(ctx context.Context, dataset databountytypes.DatasetNFT) {
	store := k.getStore(ctx)
	store.Set(DatasetKey(dataset.DatasetId), k.cdc.MustMarshal(&dataset))
}

// HasDataset reports whether a dataset record exists.
func (k Keeper) HasDataset(ctx context.Context, datasetID string) bool {
	return k.getStore(ctx).Has(DatasetKey(datasetID))
}

// IterateDatasets walks all dataset records, stopping when cb returns true.
func (k Keeper) IterateDatasets(ctx context.Context, cb func(databountytypes.DatasetNFT) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, DatasetKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var dataset databountytypes.DatasetNFT
		k.cdc.MustUnmarshal(iterator.Value(), &dataset)
		if cb(dataset) {
			break
		}
	}
}
