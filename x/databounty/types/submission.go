package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SubmissionStatus is the review state of a video submission.
type SubmissionStatus uint32

const (
	SubmissionStatusPending SubmissionStatus = iota
	SubmissionStatusUnderReview
	SubmissionStatusApproved
	SubmissionStatusRejected
	// SubmissionStatusDisputed is a declared value with no transition into it
	// yet; the dispute workflow lives outside this module.
	SubmissionStatusDisputed
)

// String returns the human-readable status name.
func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionStatusPending:
		return "pending"
	case SubmissionStatusUnderReview:
		return "under_review"
	case SubmissionStatusApproved:
		return "approved"
	case SubmissionStatusRejected:
		return "rejected"
	case SubmissionStatusDisputed:
		return "disputed"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

// Validate checks that the status is a declared variant.
func (s SubmissionStatus) Validate() error {
	if s > SubmissionStatusDisputed {
		return ErrInvalidStatus.Wrapf("unknown submission status %d", uint32(s))
	}
	return nil
}

// IsResolvable reports whether the submission can still be approved or
// rejected.
func (s SubmissionStatus) IsResolvable() bool {
	return s == SubmissionStatusPending || s == SubmissionStatusUnderReview
}

// VideoSubmission is one escrowed contribution against a bounty. The escrow
// amount is fixed at creation from the bounty's reward-per-video and never
// changes afterwards; the bounty's remaining pool is debited by the same
// amount in the same transition.
type VideoSubmission struct {
	SubmissionId        string           `json:"submission_id"`
	Contributor         string           `json:"contributor"`
	BountyId            string           `json:"bounty_id"`
	IpfsHash            string           `json:"ipfs_hash"`
	ArweaveTx           string           `json:"arweave_tx"`
	MetadataUri         string           `json:"metadata_uri"`
	SubmissionTimestamp int64            `json:"submission_timestamp"`
	Status              SubmissionStatus `json:"status"`
	EscrowAmount        math.Int         `json:"escrow_amount"`
	QualityScore        uint32           `json:"quality_score"`
}

// Validate checks internal consistency of a stored submission record.
func (s VideoSubmission) Validate() error {
	if s.SubmissionId == "" || len(s.SubmissionId) > MaxIDLength {
		return ErrInvalidRequest.Wrapf("invalid submission id %q", s.SubmissionId)
	}
	if _, err := sdk.AccAddressFromBech32(s.Contributor); err != nil {
		return ErrInvalidAddress.Wrapf("invalid contributor address: %v", err)
	}
	if s.BountyId == "" || len(s.BountyId) > MaxIDLength {
		return ErrInvalidRequest.Wrapf("invalid bounty id %q", s.BountyId)
	}
	if err := s.Status.Validate(); err != nil {
		return err
	}
	if s.EscrowAmount.IsNil() || !s.EscrowAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("escrow amount must be positive")
	}
	if s.QualityScore > MaxQualityScore {
		return ErrInvalidQualityScore.Wrapf(
			"quality score %d exceeds maximum %d", s.QualityScore, MaxQualityScore)
	}
	if s.QualityScore > 0 && s.Status != SubmissionStatusApproved {
		return ErrInvalidStatus.Wrap("quality score set on unapproved submission")
	}
	return nil
}
