package types

import "fmt"

// Message plumbing required by the tx routing machinery. The module carries
// plain Go structs with JSON tags instead of generated code, so each message
// implements the proto interface by hand.

func (msg *MsgCreateBounty) Reset()         { *msg = MsgCreateBounty{} }
func (msg *MsgCreateBounty) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreateBounty) ProtoMessage()      {}

func (msg *MsgPauseBounty) Reset()         { *msg = MsgPauseBounty{} }
func (msg *MsgPauseBounty) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgPauseBounty) ProtoMessage()      {}

func (msg *MsgResumeBounty) Reset()         { *msg = MsgResumeBounty{} }
func (msg *MsgResumeBounty) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgResumeBounty) ProtoMessage()      {}

func (msg *MsgCompleteBounty) Reset()         { *msg = MsgCompleteBounty{} }
func (msg *MsgCompleteBounty) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCompleteBounty) ProtoMessage()      {}

func (msg *MsgCancelBounty) Reset()         { *msg = MsgCancelBounty{} }
func (msg *MsgCancelBounty) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCancelBounty) ProtoMessage()      {}

func (msg *MsgSubmitVideo) Reset()         { *msg = MsgSubmitVideo{} }
func (msg *MsgSubmitVideo) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSubmitVideo) ProtoMessage()      {}

func (msg *MsgStartReview) Reset()         { *msg = MsgStartReview{} }
func (msg *MsgStartReview) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgStartReview) ProtoMessage()      {}

func (msg *MsgApproveSubmission) Reset()         { *msg = MsgApproveSubmission{} }
func (msg *MsgApproveSubmission) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgApproveSubmission) ProtoMessage()      {}

func (msg *MsgRejectSubmission) Reset()         { *msg = MsgRejectSubmission{} }
func (msg *MsgRejectSubmission) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRejectSubmission) ProtoMessage()      {}

func (msg *MsgCreateProfile) Reset()         { *msg = MsgCreateProfile{} }
func (msg *MsgCreateProfile) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreateProfile) ProtoMessage()      {}

func (msg *MsgAwardBadge) Reset()         { *msg = MsgAwardBadge{} }
func (msg *MsgAwardBadge) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAwardBadge) ProtoMessage()      {}

func (msg *MsgCreateDataset) Reset()         { *msg = MsgCreateDataset{} }
func (msg *MsgCreateDataset) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreateDataset) ProtoMessage()      {}

func (msg *MsgPurchaseDataset) Reset()         { *msg = MsgPurchaseDataset{} }
func (msg *MsgPurchaseDataset) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgPurchaseDataset) ProtoMessage()      {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgUpdateParams) ProtoMessage()      {}
