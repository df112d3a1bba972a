package keeper

import (
	"context"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// InitGenesis seeds module state from a validated genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState databountytypes.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, bounty := range genState.Bounties {
		k.SetBounty(ctx, bounty)
	}
	for _, submission := range genState.Submissions {
		k.SetSubmission(ctx, submission)
		k.getStore(ctx).Set(SubmissionByBountyKey(submission.BountyId, submission.SubmissionId), []byte{})
	}
	for _, profile := range genState.Profiles {
		k.SetProfile(ctx, profile)
	}
	for _, dataset := range genState.Datasets {
		k.SetDataset(ctx, dataset)
	}
}

// ExportGenesis returns the full module state.
func (k Keeper) ExportGenesis(ctx context.Context) *databountytypes.GenesisState {
	genState := databountytypes.GenesisState{
		Params: k.GetParams(ctx),
	}
	k.IterateBounties(ctx, func(b databountytypes.BountyPool) bool {
		genState.Bounties = append(genState.Bounties, b)
		return false
	})
	k.IterateSubmissions(ctx, func(s databountytypes.VideoSubmission) bool {
		genState.Submissions = append(genState.Submissions, s)
		return false
	})
	k.IterateProfiles(ctx, func(p databountytypes.ContributorProfile) bool {
		genState.Profiles = append(genState.Profiles, p)
		return false
	})
	k.IterateDatasets(ctx, func(d databountytypes.DatasetNFT) bool {
		genState.Datasets = append(genState.Datasets, d)
		return false
	})
	return &genState
}
