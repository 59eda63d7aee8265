// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// The published range constants are exact derived values, not rounded
// approximations: the rata die bounds are the codec applied to the first and
// last supported dates, and the second bounds cover every second of those
// days.
func TestRangeConstants(t *testing.T) {
	require.Equal(t, int32(RdMin), DateToRd(YearMin, 1, 1))
	require.Equal(t, int32(RdMax), DateToRd(YearMax, 12, 31))
	require.Equal(t, int64(RdSecondsMin), int64(RdMin)*86400)
	require.Equal(t, int64(RdSecondsMax), int64(RdMax)*86400+86399)

	require.Equal(t, int64(-46387741132800), int64(RdSecondsMin))
	require.Equal(t, int64(46381619174399), int64(RdSecondsMax))
}

// randRd returns a uniformly distributed day count in [RdMin, RdMax].
func randRd(r *rand.Rand) int32 {
	return int32(r.Int63n(RdMax-RdMin+1) + RdMin)
}

// randDate returns a uniformly distributed valid Gregorian date.
func randDate(r *rand.Rand) (int32, uint8, uint8) {
	y := int32(r.Int63n(YearMax-YearMin+1) + YearMin)
	m := uint8(r.Intn(12) + 1)
	d := uint8(r.Intn(int(DaysInMonth(y, m)))) + 1
	return y, m, d
}

// randSecs returns a uniformly distributed second count in
// [RdSecondsMin, RdSecondsMax].
func randSecs(r *rand.Rand) int64 {
	return r.Int63n(RdSecondsMax-RdSecondsMin+1) + RdSecondsMin
}

const randIterations = 1_000_000
