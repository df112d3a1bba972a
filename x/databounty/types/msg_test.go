package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

func testAddr() string {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()
}

func TestMsgCreateBountyValidateBasic(t *testing.T) {
	valid := func() *types.MsgCreateBounty {
		return types.NewMsgCreateBounty(
			testAddr(), "bounty-1", "collect driving footage",
			types.VideoRequirements{MinDurationSecs: 30, MinResolution: "1080p", MinFps: 24},
			math.NewInt(100), math.NewInt(1000), 10, 0,
		)
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgCreateBounty)
		wantErr error
	}{
		{"valid", func(m *types.MsgCreateBounty) {}, nil},
		{"bad authority", func(m *types.MsgCreateBounty) { m.Authority = "oops" }, types.ErrInvalidAddress},
		{"empty bounty id", func(m *types.MsgCreateBounty) { m.BountyId = "" }, types.ErrInvalidRequest},
		{"bounty id too long", func(m *types.MsgCreateBounty) {
			m.BountyId = strings.Repeat("x", types.MaxIDLength+1)
		}, types.ErrInvalidRequest},
		{"description too long", func(m *types.MsgCreateBounty) {
			m.TaskDescription = strings.Repeat("x", types.MaxTaskDescriptionLength+1)
		}, types.ErrInvalidRequest},
		{"zero reward", func(m *types.MsgCreateBounty) { m.RewardPerVideo = math.ZeroInt() }, types.ErrInvalidAmount},
		{"nil pool", func(m *types.MsgCreateBounty) { m.TotalPool = math.Int{} }, types.ErrInvalidAmount},
		{"negative pool", func(m *types.MsgCreateBounty) { m.TotalPool = math.NewInt(-1) }, types.ErrInvalidAmount},
		{"zero target", func(m *types.MsgCreateBounty) { m.VideosTarget = 0 }, types.ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(msg)
			err := msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMsgSubmitVideoValidateBasic(t *testing.T) {
	valid := func() *types.MsgSubmitVideo {
		return types.NewMsgSubmitVideo(testAddr(), "sub-1", "bounty-1", "QmTestHash", "", "")
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgSubmitVideo)
		wantErr bool
	}{
		{"valid", func(m *types.MsgSubmitVideo) {}, false},
		{"with optional refs", func(m *types.MsgSubmitVideo) {
			m.ArweaveTx = "ar-tx"
			m.MetadataUri = "ipfs://meta"
		}, false},
		{"bad contributor", func(m *types.MsgSubmitVideo) { m.Contributor = "oops" }, true},
		{"empty submission id", func(m *types.MsgSubmitVideo) { m.SubmissionId = "" }, true},
		{"empty bounty id", func(m *types.MsgSubmitVideo) { m.BountyId = "" }, true},
		{"empty ipfs hash", func(m *types.MsgSubmitVideo) { m.IpfsHash = "" }, true},
		{"ipfs hash too long", func(m *types.MsgSubmitVideo) {
			m.IpfsHash = strings.Repeat("x", types.MaxContentRefLength+1)
		}, true},
		{"arweave ref too long", func(m *types.MsgSubmitVideo) {
			m.ArweaveTx = strings.Repeat("x", types.MaxContentRefLength+1)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(msg)
			err := msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgApproveSubmissionValidateBasic(t *testing.T) {
	msg := types.NewMsgApproveSubmission(testAddr(), "sub-1", types.MaxQualityScore)
	require.NoError(t, msg.ValidateBasic())

	msg.QualityScore = types.MaxQualityScore + 1
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidQualityScore)

	msg = types.NewMsgApproveSubmission("oops", "sub-1", 50)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgRejectSubmissionValidateBasic(t *testing.T) {
	msg := types.NewMsgRejectSubmission(testAddr(), "sub-1", "watermarked")
	require.NoError(t, msg.ValidateBasic())

	msg.Reason = strings.Repeat("x", types.MaxTaskDescriptionLength+1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidRequest)
}

func TestMsgCreateDatasetValidateBasic(t *testing.T) {
	valid := func() *types.MsgCreateDataset {
		return types.NewMsgCreateDataset(testAddr(), "dataset-1", types.LicenseTypeUnlimited, math.NewInt(5000), 10)
	}

	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.LicenseType = types.LicenseTypeCommercialResale + 1
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.RoyaltyPercentage = types.MaxRoyaltyPercentage + 1
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidRoyalty)

	msg = valid()
	msg.Price = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestLifecycleMsgsValidateBasic(t *testing.T) {
	authority := testAddr()

	require.NoError(t, types.NewMsgPauseBounty(authority, "bounty-1").ValidateBasic())
	require.NoError(t, types.NewMsgResumeBounty(authority, "bounty-1").ValidateBasic())
	require.NoError(t, types.NewMsgCompleteBounty(authority, "bounty-1").ValidateBasic())
	require.NoError(t, types.NewMsgCancelBounty(authority, "bounty-1").ValidateBasic())
	require.NoError(t, types.NewMsgStartReview(authority, "sub-1").ValidateBasic())
	require.NoError(t, types.NewMsgPurchaseDataset(authority, "dataset-1").ValidateBasic())
	require.NoError(t, types.NewMsgCreateProfile(authority).ValidateBasic())
	require.NoError(t, types.NewMsgAwardBadge(authority, testAddr(), "early_adopter").ValidateBasic())

	require.Error(t, types.NewMsgPauseBounty("oops", "bounty-1").ValidateBasic())
	require.Error(t, types.NewMsgCancelBounty(authority, "").ValidateBasic())
	require.Error(t, types.NewMsgAwardBadge(authority, testAddr(), "").ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	authority := testAddr()
	msg := types.NewMsgCreateBounty(
		authority, "bounty-1", "",
		types.VideoRequirements{},
		math.NewInt(1), math.NewInt(1), 1, 0,
	)

	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, authority, signers[0].String())
}
