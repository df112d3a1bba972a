package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/AhegaoBurger/DataForge/testutil/keeper"
	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

func TestSubmitVideoReservesEscrow(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)

	submission := submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	require.Equal(t, types.SubmissionStatusPending, submission.Status)
	require.Equal(t, math.NewInt(100), submission.EscrowAmount)

	bounty, _ := s.Keeper.GetBounty(s.Ctx, "bounty-1")
	require.Equal(t, math.NewInt(900), bounty.RemainingPool)
	require.Zero(t, bounty.VideosCollected)

	// Submission entry counts toward the profile's running total.
	profile, found := s.Keeper.GetProfile(s.Ctx, contributor)
	require.True(t, found)
	require.Equal(t, uint64(1), profile.TotalSubmissions)
	require.Zero(t, profile.AcceptedSubmissions)
}

func TestSubmitVideoRequiresProfile(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	fundedBounty(t, s, testAddr(), "bounty-1", 100, 1000, 10)

	_, err := s.Keeper.SubmitVideo(s.Ctx, types.NewMsgSubmitVideo(
		testAddr(), "sub-1", "bounty-1", "QmTestHash", "", "",
	))
	require.ErrorIs(t, err, types.ErrProfileNotFound)
}

func TestSubmitVideoInactiveBounty(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	_, err := s.Keeper.CreateProfile(s.Ctx, contributor)
	require.NoError(t, err)

	require.NoError(t, s.Keeper.PauseBounty(s.Ctx, authority, "bounty-1"))

	_, err = s.Keeper.SubmitVideo(s.Ctx, types.NewMsgSubmitVideo(
		contributor, "sub-1", "bounty-1", "QmTestHash", "", "",
	))
	require.ErrorIs(t, err, types.ErrBountyNotActive)
}

func TestSubmitVideoDuplicateID(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	contributor := testAddr()
	fundedBounty(t, s, testAddr(), "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	_, err := s.Keeper.SubmitVideo(s.Ctx, types.NewMsgSubmitVideo(
		contributor, "sub-1", "bounty-1", "QmTestHash", "", "",
	))
	require.ErrorIs(t, err, types.ErrSubmissionExists)
}

func TestSubmitVideoBountyFull(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 100, 1)

	submittedVideo(t, s, contributor, "sub-1", "bounty-1")
	_, _, err := s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", 80)
	require.NoError(t, err)

	_, err = s.Keeper.SubmitVideo(s.Ctx, types.NewMsgSubmitVideo(
		contributor, "sub-2", "bounty-1", "QmTestHash", "", "",
	))
	require.ErrorIs(t, err, types.ErrBountyFull)
}

func TestSubmitVideoPoolExhausted(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	// Target 10 but the pool only covers one reward.
	addr, err := sdk.AccAddressFromBech32(authority)
	require.NoError(t, err)
	s.FundAccount(t, addr, sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, math.NewInt(100))))
	_, err = s.Keeper.CreateBounty(s.Ctx, types.NewMsgCreateBounty(
		authority, "bounty-1", "",
		types.VideoRequirements{},
		math.NewInt(100), math.NewInt(100), 1, 0,
	))
	require.NoError(t, err)

	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	_, err = s.Keeper.SubmitVideo(s.Ctx, types.NewMsgSubmitVideo(
		contributor, "sub-2", "bounty-1", "QmTestHash", "", "",
	))
	require.ErrorIs(t, err, types.ErrInsufficientPool)
}

func TestStartReview(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	require.NoError(t, s.Keeper.StartReview(s.Ctx, authority, "sub-1"))
	submission, _ := s.Keeper.GetSubmission(s.Ctx, "sub-1")
	require.Equal(t, types.SubmissionStatusUnderReview, submission.Status)

	// Only pending submissions enter review.
	require.ErrorIs(t, s.Keeper.StartReview(s.Ctx, authority, "sub-1"), types.ErrInvalidStatus)
}

func TestStartReviewUnauthorized(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	fundedBounty(t, s, testAddr(), "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, testAddr(), "sub-1", "bounty-1")

	require.ErrorIs(t, s.Keeper.StartReview(s.Ctx, testAddr(), "sub-1"), types.ErrUnauthorized)
}

func TestApproveSubmissionPaysReward(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	reward, reputation, err := s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", 80)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), reward)

	// 1 accepted of 2 counted submissions at quality 80:
	// 500 + 50*5/2 + 80*250/100 = 825.
	require.Equal(t, uint64(825), reputation)

	contributorAddr, err := sdk.AccAddressFromBech32(contributor)
	require.NoError(t, err)
	balance := s.BankKeeper.GetBalance(s.Ctx, contributorAddr, types.DefaultDenom)
	require.Equal(t, math.NewInt(100), balance.Amount)

	submission, _ := s.Keeper.GetSubmission(s.Ctx, "sub-1")
	require.Equal(t, types.SubmissionStatusApproved, submission.Status)
	require.Equal(t, uint32(80), submission.QualityScore)

	bounty, _ := s.Keeper.GetBounty(s.Ctx, "bounty-1")
	require.Equal(t, uint64(1), bounty.VideosCollected)
	require.Equal(t, math.NewInt(900), bounty.RemainingPool)

	profile, _ := s.Keeper.GetProfile(s.Ctx, contributor)
	require.Equal(t, uint64(2), profile.TotalSubmissions)
	require.Equal(t, uint64(1), profile.AcceptedSubmissions)
	require.Equal(t, uint64(80), profile.AverageQualityScore)
	require.Equal(t, math.NewInt(100), profile.TotalEarnings)
}

func TestApproveSubmissionQualityTooHigh(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, testAddr(), "sub-1", "bounty-1")

	_, _, err := s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", types.MaxQualityScore+1)
	require.ErrorIs(t, err, types.ErrInvalidQualityScore)
}

func TestRejectSubmissionReturnsEscrow(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	reputation, err := s.Keeper.RejectSubmission(s.Ctx, authority, "sub-1")
	require.NoError(t, err)

	// 0 accepted of 2 counted submissions, no quality history.
	require.Equal(t, uint64(types.NeutralReputation), reputation)

	bounty, _ := s.Keeper.GetBounty(s.Ctx, "bounty-1")
	require.Equal(t, math.NewInt(1000), bounty.RemainingPool)
	require.Zero(t, bounty.VideosCollected)

	submission, _ := s.Keeper.GetSubmission(s.Ctx, "sub-1")
	require.Equal(t, types.SubmissionStatusRejected, submission.Status)

	profile, _ := s.Keeper.GetProfile(s.Ctx, contributor)
	require.Equal(t, uint64(2), profile.TotalSubmissions)
	require.Equal(t, uint64(1), profile.RejectedSubmissions)
	require.True(t, profile.TotalEarnings.IsZero())
}

func TestDoubleResolutionRefused(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, testAddr(), "sub-1", "bounty-1")

	_, _, err := s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", 90)
	require.NoError(t, err)

	_, _, err = s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", 90)
	require.ErrorIs(t, err, types.ErrInvalidStatus)
	_, err = s.Keeper.RejectSubmission(s.Ctx, authority, "sub-1")
	require.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestRejectAfterCancelRefundsAuthority(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	refund, err := s.Keeper.CancelBounty(s.Ctx, authority, "bounty-1")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(900), refund)

	// The outstanding escrow goes back to the authority, not the zeroed pool.
	_, err = s.Keeper.RejectSubmission(s.Ctx, authority, "sub-1")
	require.NoError(t, err)

	authorityAddr, err := sdk.AccAddressFromBech32(authority)
	require.NoError(t, err)
	balance := s.BankKeeper.GetBalance(s.Ctx, authorityAddr, types.DefaultDenom)
	require.Equal(t, math.NewInt(1000), balance.Amount)

	bounty, _ := s.Keeper.GetBounty(s.Ctx, "bounty-1")
	require.True(t, bounty.RemainingPool.IsZero())
}

func TestApproveAfterCancelStillPays(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")

	_, err := s.Keeper.CancelBounty(s.Ctx, authority, "bounty-1")
	require.NoError(t, err)

	reward, _, err := s.Keeper.ApproveSubmission(s.Ctx, authority, "sub-1", 70)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), reward)

	contributorAddr, err := sdk.AccAddressFromBech32(contributor)
	require.NoError(t, err)
	balance := s.BankKeeper.GetBalance(s.Ctx, contributorAddr, types.DefaultDenom)
	require.Equal(t, math.NewInt(100), balance.Amount)
}

func TestIterateSubmissionsByBounty(t *testing.T) {
	s := keepertest.DataBountyKeeper(t)
	authority := testAddr()
	contributor := testAddr()
	fundedBounty(t, s, authority, "bounty-1", 100, 1000, 10)
	fundedBounty(t, s, authority, "bounty-2", 100, 1000, 10)
	submittedVideo(t, s, contributor, "sub-1", "bounty-1")
	submittedVideo(t, s, contributor, "sub-2", "bounty-2")
	submittedVideo(t, s, contributor, "sub-3", "bounty-1")

	var ids []string
	s.Keeper.IterateSubmissionsByBounty(s.Ctx, "bounty-1", func(sub types.VideoSubmission) bool {
		ids = append(ids, sub.SubmissionId)
		return false
	})
	require.ElementsMatch(t, []string{"sub-1", "sub-3"}, ids)
}
