package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LicenseType is the licensing model of a dataset listing.
type LicenseType uint32

const (
	LicenseTypeSingleUse LicenseType = iota
	LicenseTypeUnlimited
	LicenseTypeExclusive
	LicenseTypeCommercialResale
)

// String returns the human-readable license name.
func (l LicenseType) String() string {
	switch l {
	case LicenseTypeSingleUse:
		return "single_use"
	case LicenseTypeUnlimited:
		return "unlimited"
	case LicenseTypeExclusive:
		return "exclusive"
	case LicenseTypeCommercialResale:
		return "commercial_resale"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(l))
	}
}

// Validate checks that the license type is a declared variant.
func (l LicenseType) Validate() error {
	if l > LicenseTypeCommercialResale {
		return ErrInvalidRequest.Wrapf("unknown license type %d", uint32(l))
	}
	return nil
}

// DatasetNFT is a licensable dataset listing. The royalty percentage is
// stored and validated but the purchase operation pays the full price to the
// creator; no royalty split is performed on chain.
type DatasetNFT struct {
	DatasetId         string      `json:"dataset_id"`
	Creator           string      `json:"creator"`
	LicenseType       LicenseType `json:"license_type"`
	Price             math.Int    `json:"price"`
	RoyaltyPercentage uint32      `json:"royalty_percentage"`
	CreatedAt         int64       `json:"created_at"`
	TotalSales        uint64      `json:"total_sales"`
}

// Validate checks internal consistency of a stored dataset record.
func (d DatasetNFT) Validate() error {
	if d.DatasetId == "" || len(d.DatasetId) > MaxIDLength {
		return ErrInvalidRequest.Wrapf("invalid dataset id %q", d.DatasetId)
	}
	if _, err := sdk.AccAddressFromBech32(d.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %v", err)
	}
	if err := d.LicenseType.Validate(); err != nil {
		return err
	}
	if d.Price.IsNil() || !d.Price.IsPositive() {
		return ErrInvalidAmount.Wrap("price must be positive")
	}
	if d.RoyaltyPercentage > MaxRoyaltyPercentage {
		return ErrInvalidRoyalty.Wrapf(
			"royalty percentage %d exceeds maximum %d",
			d.RoyaltyPercentage, MaxRoyaltyPercentage,
		)
	}
	return nil
}
