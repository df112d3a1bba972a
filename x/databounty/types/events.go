package types

// Event types emitted by the databounty module, one per successful operation.
const (
	EventTypeBountyCreated       = "bounty_created"
	EventTypeBountyStatusChanged = "bounty_status_changed"
	EventTypeVideoSubmitted      = "video_submitted"
	EventTypeReviewStarted       = "review_started"
	EventTypeSubmissionApproved  = "submission_approved"
	EventTypeSubmissionRejected  = "submission_rejected"
	EventTypeProfileCreated      = "profile_created"
	EventTypeBadgeAwarded        = "badge_awarded"
	EventTypeDatasetCreated      = "dataset_created"
	EventTypeDatasetPurchased    = "dataset_purchased"
)

// Event attribute keys
const (
	AttributeKeyBountyID        = "bounty_id"
	AttributeKeyAuthority       = "authority"
	AttributeKeyTotalPool       = "total_pool"
	AttributeKeyRemainingPool   = "remaining_pool"
	AttributeKeyRefund          = "refund"
	AttributeKeyVideosTarget    = "videos_target"
	AttributeKeyRewardPerVideo  = "reward_per_video"
	AttributeKeyOldStatus       = "old_status"
	AttributeKeyNewStatus       = "new_status"
	AttributeKeySubmissionID    = "submission_id"
	AttributeKeyContributor     = "contributor"
	AttributeKeyEscrowAmount    = "escrow_amount"
	AttributeKeyReward          = "reward"
	AttributeKeyQualityScore    = "quality_score"
	AttributeKeyWallet          = "wallet"
	AttributeKeyReputationScore = "reputation_score"
	AttributeKeyBadgeType       = "badge_type"
	AttributeKeyDatasetID       = "dataset_id"
	AttributeKeyCreator         = "creator"
	AttributeKeyBuyer           = "buyer"
	AttributeKeyPrice           = "price"
	AttributeKeyTotalSales      = "total_sales"
)
