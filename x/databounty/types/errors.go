package types

import (
	"cosmossdk.io/errors"
)

// Databounty module sentinel errors
var (
	ErrInvalidAmount       = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidTarget       = errors.Register(ModuleName, 2, "invalid videos target")
	ErrInsufficientPool    = errors.Register(ModuleName, 3, "insufficient bounty pool")
	ErrInvalidStatus       = errors.Register(ModuleName, 4, "operation not allowed in current status")
	ErrBountyNotActive     = errors.Register(ModuleName, 5, "bounty is not active")
	ErrBountyFull          = errors.Register(ModuleName, 6, "bounty video target reached")
	ErrBountyExpired       = errors.Register(ModuleName, 7, "bounty has expired")
	ErrOverflow            = errors.Register(ModuleName, 8, "arithmetic overflow")
	ErrBadgeAlreadyEarned  = errors.Register(ModuleName, 9, "badge already earned")
	ErrTooManyBadges       = errors.Register(ModuleName, 10, "badge limit reached")
	ErrInvalidRoyalty      = errors.Register(ModuleName, 11, "royalty percentage out of range")
	ErrBountyNotFound      = errors.Register(ModuleName, 12, "bounty not found")
	ErrBountyExists        = errors.Register(ModuleName, 13, "bounty already exists")
	ErrSubmissionNotFound  = errors.Register(ModuleName, 14, "submission not found")
	ErrSubmissionExists    = errors.Register(ModuleName, 15, "submission already exists")
	ErrProfileNotFound     = errors.Register(ModuleName, 16, "contributor profile not found")
	ErrProfileExists       = errors.Register(ModuleName, 17, "contributor profile already exists")
	ErrDatasetNotFound     = errors.Register(ModuleName, 18, "dataset not found")
	ErrDatasetExists       = errors.Register(ModuleName, 19, "dataset already exists")
	ErrUnauthorized        = errors.Register(ModuleName, 20, "unauthorized")
	ErrInvalidQualityScore = errors.Register(ModuleName, 21, "quality score out of range")
	ErrInvalidAddress      = errors.Register(ModuleName, 22, "invalid address")
	ErrInvalidRequest      = errors.Register(ModuleName, 23, "invalid request")
)
