package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

func TestBountyStatusHelpers(t *testing.T) {
	require.Equal(t, "active", types.BountyStatusActive.String())
	require.Equal(t, "paused", types.BountyStatusPaused.String())
	require.Equal(t, "completed", types.BountyStatusCompleted.String())
	require.Equal(t, "cancelled", types.BountyStatusCancelled.String())

	require.False(t, types.BountyStatusActive.IsTerminal())
	require.False(t, types.BountyStatusPaused.IsTerminal())
	require.True(t, types.BountyStatusCompleted.IsTerminal())
	require.True(t, types.BountyStatusCancelled.IsTerminal())

	require.NoError(t, types.BountyStatusCancelled.Validate())
	require.Error(t, (types.BountyStatusCancelled + 1).Validate())
}

func TestSubmissionStatusHelpers(t *testing.T) {
	require.True(t, types.SubmissionStatusPending.IsResolvable())
	require.True(t, types.SubmissionStatusUnderReview.IsResolvable())
	require.False(t, types.SubmissionStatusApproved.IsResolvable())
	require.False(t, types.SubmissionStatusRejected.IsResolvable())
	require.False(t, types.SubmissionStatusDisputed.IsResolvable())

	require.NoError(t, types.SubmissionStatusDisputed.Validate())
	require.Error(t, (types.SubmissionStatusDisputed + 1).Validate())
}

func TestBountyPoolValidate(t *testing.T) {
	authority := testAddr()

	tests := []struct {
		name    string
		mutate  func(*types.BountyPool)
		wantErr bool
	}{
		{"valid", func(b *types.BountyPool) {}, false},
		{"empty id", func(b *types.BountyPool) { b.BountyId = "" }, true},
		{"bad authority", func(b *types.BountyPool) { b.Authority = "oops" }, true},
		{"unknown status", func(b *types.BountyPool) { b.Status = 99 }, true},
		{"zero reward", func(b *types.BountyPool) { b.RewardPerVideo = math.ZeroInt() }, true},
		{"remaining above total", func(b *types.BountyPool) { b.RemainingPool = math.NewInt(2000) }, true},
		{"negative remaining", func(b *types.BountyPool) { b.RemainingPool = math.NewInt(-1) }, true},
		{"collected above target", func(b *types.BountyPool) { b.VideosCollected = 11 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounty := validBounty("bounty-1", authority)
			tt.mutate(&bounty)
			err := bounty.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestVideoSubmissionValidate(t *testing.T) {
	contributor := testAddr()

	submission := validSubmission("sub-1", "bounty-1", contributor, types.SubmissionStatusPending)
	require.NoError(t, submission.Validate())

	submission.QualityScore = 80
	require.Error(t, submission.Validate(), "quality score on unapproved submission")

	submission.Status = types.SubmissionStatusApproved
	require.NoError(t, submission.Validate())

	submission.QualityScore = types.MaxQualityScore + 1
	require.Error(t, submission.Validate())

	submission = validSubmission("sub-1", "bounty-1", contributor, types.SubmissionStatusPending)
	submission.EscrowAmount = math.ZeroInt()
	require.Error(t, submission.Validate())
}

func TestContributorProfileValidate(t *testing.T) {
	wallet := testAddr()

	profile := types.NewContributorProfile(wallet, 0)
	require.NoError(t, profile.Validate())

	profile.AcceptedSubmissions = 2
	profile.RejectedSubmissions = 1
	profile.TotalSubmissions = 2
	require.Error(t, profile.Validate(), "resolved exceeds total")

	profile = types.NewContributorProfile(wallet, 0)
	profile.Badges = []types.Badge{{BadgeType: "a"}, {BadgeType: "a"}}
	require.Error(t, profile.Validate(), "duplicate badge")

	profile = types.NewContributorProfile(wallet, 0)
	profile.Badges = []types.Badge{{BadgeType: strings.Repeat("x", types.MaxBadgeTypeLength+1)}}
	require.Error(t, profile.Validate())

	profile = types.NewContributorProfile(wallet, 0)
	profile.TotalEarnings = math.Int{}
	require.Error(t, profile.Validate())
}

func TestDatasetNFTValidate(t *testing.T) {
	creator := testAddr()

	dataset := types.DatasetNFT{
		DatasetId:   "dataset-1",
		Creator:     creator,
		LicenseType: types.LicenseTypeExclusive,
		Price:       math.NewInt(5000),
	}
	require.NoError(t, dataset.Validate())

	dataset.RoyaltyPercentage = types.MaxRoyaltyPercentage + 1
	require.Error(t, dataset.Validate())

	dataset.RoyaltyPercentage = 0
	dataset.Price = math.NewInt(0)
	require.Error(t, dataset.Validate())

	dataset.Price = math.NewInt(1)
	dataset.LicenseType = types.LicenseTypeCommercialResale + 1
	require.Error(t, dataset.Validate())
}

func TestLicenseTypeString(t *testing.T) {
	require.Equal(t, "single_use", types.LicenseTypeSingleUse.String())
	require.Equal(t, "unlimited", types.LicenseTypeUnlimited.String())
	require.Equal(t, "exclusive", types.LicenseTypeExclusive.String())
	require.Equal(t, "commercial_resale", types.LicenseTypeCommercialResale.String())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.Denom = ""
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.MaxVideosTarget = 0
	require.Error(t, params.Validate())
}
