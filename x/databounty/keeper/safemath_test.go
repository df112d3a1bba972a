package keeper

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestSafeAdd(t *testing.T) {
	sum, err := SafeAdd(sdkmath.NewInt(100), sdkmath.NewInt(23))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(123), sum)
}

func TestSafeMul(t *testing.T) {
	product, err := SafeMul(sdkmath.NewInt(100), sdkmath.NewInt(23))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(2300), product)

	product, err = SafeMul(sdkmath.NewInt(0), sdkmath.NewInt(23))
	require.NoError(t, err)
	require.True(t, product.IsZero())

	huge := sdkmath.NewIntWithDecimal(1, 76)
	_, err = SafeMul(huge, sdkmath.NewInt(100_000))
	require.ErrorContains(t, err, "overflow")
}

func TestSafeSub(t *testing.T) {
	diff, err := SafeSub(sdkmath.NewInt(100), sdkmath.NewInt(40))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(60), diff)

	_, err = SafeSub(sdkmath.NewInt(40), sdkmath.NewInt(100))
	require.ErrorContains(t, err, "underflow")
}

func TestSafeAddUint64(t *testing.T) {
	sum, err := SafeAddUint64(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), sum)

	_, err = SafeAddUint64(math.MaxUint64, 1)
	require.ErrorContains(t, err, "overflow")

	sum, err = SafeAddUint64(math.MaxUint64-1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), sum)
}

func TestSubmissionByBountyKeyNoCollision(t *testing.T) {
	// Without the length prefix these two pairs would collide.
	a := SubmissionByBountyKey("ab", "c")
	b := SubmissionByBountyKey("a", "bc")
	require.NotEqual(t, a, b)

	prefix := SubmissionByBountyIterKey("ab")
	require.Equal(t, prefix, a[:len(prefix)])
}
