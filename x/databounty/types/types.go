package types

const (
	// ModuleName defines the module name
	ModuleName = "databounty"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// MaxBadgesPerProfile bounds the badge list on a contributor profile.
	MaxBadgesPerProfile = 10

	// MaxQualityScore is the upper bound for review quality scores.
	MaxQualityScore = 100

	// NeutralReputation is the score a freshly initialized profile starts with.
	NeutralReputation = 500

	// MaxReputation is the reputation ceiling.
	MaxReputation = 1000

	// MaxRoyaltyPercentage bounds the stored dataset royalty field.
	MaxRoyaltyPercentage = 100

	// MaxIDLength bounds bounty, submission and dataset identifiers.
	MaxIDLength = 64

	// MaxContentRefLength bounds the opaque content reference strings
	// (IPFS hash, Arweave tx, metadata URI). References are never resolved
	// or verified on chain.
	MaxContentRefLength = 512

	// MaxTaskDescriptionLength bounds the bounty task description.
	MaxTaskDescriptionLength = 1024

	// MaxBadgeTypeLength bounds badge type identifiers.
	MaxBadgeTypeLength = 64
)
