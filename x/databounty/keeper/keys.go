package keeper

// Store key prefixes. Records are keyed by their string identifier under a
// one-byte prefix; the submission-by-bounty index maps bounty id plus
// submission id to an empty value.
var (
	BountyKeyPrefix             = []byte{0x01}
	SubmissionKeyPrefix         = []byte{0x02}
	ProfileKeyPrefix            = []byte{0x03}
	DatasetKeyPrefix            = []byte{0x04}
	ParamsKey                   = []byte{0x05}
	SubmissionByBountyKeyPrefix = []byte{0x06}
)

// BountyKey returns the store key for a bounty pool record.
func BountyKey(bountyID string) []byte {
	return append(BountyKeyPrefix, []byte(bountyID)...)
}

// SubmissionKey returns the store key for a video submission record.
func SubmissionKey(submissionID string) []byte {
	return append(SubmissionKeyPrefix, []byte(submissionID)...)
}

// ProfileKey returns the store key for a contributor profile record.
func ProfileKey(wallet string) []byte {
	return append(ProfileKeyPrefix, []byte(wallet)...)
}

// DatasetKey returns the store key for a dataset record.
func DatasetKey(datasetID string) []byte {
	return append(DatasetKeyPrefix, []byte(datasetID)...)
}

// SubmissionByBountyKey returns the index key linking a submission to its
// bounty. The bounty id is length-prefixed so ids cannot collide across the
// separator.
func SubmissionByBountyKey(bountyID, submissionID string) []byte {
	key := append(SubmissionByBountyKeyPrefix, byte(len(bountyID)))
	key = append(key, []byte(bountyID)...)
	return append(key, []byte(submissionID)...)
}

// SubmissionByBountyIterKey returns the prefix covering all index entries for
// one bounty.
func SubmissionByBountyIterKey(bountyID string) []byte {
	key := append(SubmissionByBountyKeyPrefix, byte(len(bountyID)))
	return append(key, []byte(bountyID)...)
}
