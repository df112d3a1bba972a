package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSubmitVideo{}
	_ sdk.Msg = &MsgStartReview{}
	_ sdk.Msg = &MsgApproveSubmission{}
	_ sdk.Msg = &MsgRejectSubmission{}
)

// MsgSubmitVideo submits a video against an active bounty. One reward's worth
// of the bounty pool is reserved as escrow for the submission.
type MsgSubmitVideo struct {
	Contributor  string `json:"contributor"`
	SubmissionId string `json:"submission_id"`
	BountyId     string `json:"bounty_id"`
	IpfsHash     string `json:"ipfs_hash"`
	ArweaveTx    string `json:"arweave_tx,omitempty"`
	MetadataUri  string `json:"metadata_uri,omitempty"`
}

// NewMsgSubmitVideo creates a new MsgSubmitVideo instance.
func NewMsgSubmitVideo(contributor, submissionID, bountyID, ipfsHash, arweaveTx, metadataURI string) *MsgSubmitVideo {
	return &MsgSubmitVideo{
		Contributor:  contributor,
		SubmissionId: submissionID,
		BountyId:     bountyID,
		IpfsHash:     ipfsHash,
		ArweaveTx:    arweaveTx,
		MetadataUri:  metadataURI,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgSubmitVideo) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgSubmitVideo) Type() string { return "submit_video" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgSubmitVideo) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Contributor)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgSubmitVideo) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgSubmitVideo) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Contributor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contributor address: %s", err)
	}
	if err := validateID(msg.SubmissionId); err != nil {
		return sdkerrors.Wrap(err, "submission id")
	}
	if err := validateID(msg.BountyId); err != nil {
		return sdkerrors.Wrap(err, "bounty id")
	}
	if err := validateContentRef("ipfs hash", msg.IpfsHash); err != nil {
		return err
	}
	if len(msg.ArweaveTx) > MaxContentRefLength {
		return sdkerrors.Wrap(ErrInvalidRequest, "arweave tx reference too long")
	}
	if len(msg.MetadataUri) > MaxContentRefLength {
		return sdkerrors.Wrap(ErrInvalidRequest, "metadata uri too long")
	}
	return nil
}

// MsgStartReview moves a pending submission into review. Only the bounty
// authority may start a review.
type MsgStartReview struct {
	Authority    string `json:"authority"`
	SubmissionId string `json:"submission_id"`
}

// NewMsgStartReview creates a new MsgStartReview instance.
func NewMsgStartReview(authority, submissionID string) *MsgStartReview {
	return &MsgStartReview{Authority: authority, SubmissionId: submissionID}
}

// Route implements the sdk.Msg interface.
func (msg MsgStartReview) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgStartReview) Type() string { return "start_review" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgStartReview) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgStartReview) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgStartReview) ValidateBasic() error {
	return validateAuthorityAndID(msg.Authority, msg.SubmissionId)
}

// MsgApproveSubmission approves a submission with a quality score, releasing
// its escrow to the contributor and updating the contributor's reputation.
type MsgApproveSubmission struct {
	Authority    string `json:"authority"`
	SubmissionId string `json:"submission_id"`
	QualityScore uint32 `json:"quality_score"`
}

// NewMsgApproveSubmission creates a new MsgApproveSubmission instance.
func NewMsgApproveSubmission(authority, submissionID string, qualityScore uint32) *MsgApproveSubmission {
	return &MsgApproveSubmission{
		Authority:    authority,
		SubmissionId: submissionID,
		QualityScore: qualityScore,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgApproveSubmission) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgApproveSubmission) Type() string { return "approve_submission" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgApproveSubmission) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgApproveSubmission) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgApproveSubmission) ValidateBasic() error {
	if err := validateAuthorityAndID(msg.Authority, msg.SubmissionId); err != nil {
		return err
	}
	if msg.QualityScore > MaxQualityScore {
		return sdkerrors.Wrapf(ErrInvalidQualityScore,
			"quality score %d exceeds maximum %d", msg.QualityScore, MaxQualityScore)
	}
	return nil
}

// MsgRejectSubmission rejects a submission, returning its escrow to the
// bounty pool and updating the contributor's reputation.
type MsgRejectSubmission struct {
	Authority    string `json:"authority"`
	SubmissionId string `json:"submission_id"`
	Reason       string `json:"reason,omitempty"`
}

// NewMsgRejectSubmission creates a new MsgRejectSubmission instance.
func NewMsgRejectSubmission(authority, submissionID, reason string) *MsgRejectSubmission {
	return &MsgRejectSubmission{
		Authority:    authority,
		SubmissionId: submissionID,
		Reason:       reason,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgRejectSubmission) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgRejectSubmission) Type() string { return "reject_submission" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgRejectSubmission) GetSigners() []sdk.AccAddress {
	return signersFromBech32(msg.Authority)
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgRejectSubmission) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgRejectSubmission) ValidateBasic() error {
	if err := validateAuthorityAndID(msg.Authority, msg.SubmissionId); err != nil {
		return err
	}
	if len(msg.Reason) > MaxTaskDescriptionLength {
		return sdkerrors.Wrap(ErrInvalidRequest, "rejection reason too long")
	}
	return nil
}
