package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState is the full exported state of the databounty module.
type GenesisState struct {
	Params      Params               `json:"params"`
	Bounties    []BountyPool         `json:"bounties,omitempty"`
	Submissions []VideoSubmission    `json:"submissions,omitempty"`
	Profiles    []ContributorProfile `json:"profiles,omitempty"`
	Datasets    []DatasetNFT         `json:"datasets,omitempty"`
}

// DefaultGenesis returns the default genesis state: default params, no
// records.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs full cross-record validation of a genesis state: every
// record validates on its own, identifiers are unique, submissions reference
// existing bounties and contributors, and per-bounty escrow accounting holds.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	bounties := make(map[string]BountyPool, len(gs.Bounties))
	for _, b := range gs.Bounties {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("invalid bounty %q: %w", b.BountyId, err)
		}
		if _, ok := bounties[b.BountyId]; ok {
			return fmt.Errorf("duplicate bounty id %q", b.BountyId)
		}
		bounties[b.BountyId] = b
	}

	profiles := make(map[string]struct{}, len(gs.Profiles))
	for _, p := range gs.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid profile %q: %w", p.Wallet, err)
		}
		if _, ok := profiles[p.Wallet]; ok {
			return fmt.Errorf("duplicate profile wallet %q", p.Wallet)
		}
		profiles[p.Wallet] = struct{}{}
	}

	// Per-bounty escrow accounting rebuilt from submissions: outstanding
	// escrow plus paid-out rewards, summed per bounty.
	committed := make(map[string]math.Int, len(gs.Bounties))
	submissions := make(map[string]struct{}, len(gs.Submissions))
	for _, s := range gs.Submissions {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid submission %q: %w", s.SubmissionId, err)
		}
		if _, ok := submissions[s.SubmissionId]; ok {
			return fmt.Errorf("duplicate submission id %q", s.SubmissionId)
		}
		submissions[s.SubmissionId] = struct{}{}

		if _, ok := bounties[s.BountyId]; !ok {
			return fmt.Errorf("submission %q references unknown bounty %q",
				s.SubmissionId, s.BountyId)
		}
		if _, ok := profiles[s.Contributor]; !ok {
			return fmt.Errorf("submission %q references unknown contributor %q",
				s.SubmissionId, s.Contributor)
		}
		if s.Status.IsResolvable() || s.Status == SubmissionStatusApproved {
			sum, ok := committed[s.BountyId]
			if !ok {
				sum = math.ZeroInt()
			}
			committed[s.BountyId] = sum.Add(s.EscrowAmount)
		}
	}

	for id, b := range bounties {
		if b.Status == BountyStatusCancelled {
			if !b.RemainingPool.IsZero() {
				return fmt.Errorf("cancelled bounty %q has non-zero remaining pool %s",
					id, b.RemainingPool)
			}
			continue
		}
		sum, ok := committed[id]
		if !ok {
			sum = math.ZeroInt()
		}
		if !b.RemainingPool.Add(sum).Equal(b.TotalPool) {
			return fmt.Errorf(
				"bounty %q accounting broken: remaining %s + committed %s != total %s",
				id, b.RemainingPool, sum, b.TotalPool)
		}
	}

	datasets := make(map[string]struct{}, len(gs.Datasets))
	for _, d := range gs.Datasets {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid dataset %q: %w", d.DatasetId, err)
		}
		if _, ok := datasets[d.DatasetId]; ok {
			return fmt.Errorf("duplicate dataset id %q", d.DatasetId)
		}
		datasets[d.DatasetId] = struct{}{}
	}

	return nil
}
