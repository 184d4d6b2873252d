// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSplit(t *testing.T, cfg Config, secret []byte) []*Share {
	t.Helper()

	got, err := SplitWithRandom(cfg, secret, deterministicReader(t))
	require.NoError(t, err)

	return got
}

// TestRoundTrip_AnySubsetAboveThreshold exercises the round-trip property: for configs with
// 2 <= K <= N <= 6 and secrets of length 1, 2, 16 and 128, any M-element subset with M >= K reconstructs the secret.
func TestRoundTrip_AnySubsetAboveThreshold(t *testing.T) {
	lengths := []int{1, 2, 16, 128}

	for n := 2; n <= 6; n++ {
		for k := 2; k <= n; k++ {
			for _, l := range lengths {
				name := fmt.Sprintf("N=%d/K=%d/L=%d", n, k, l)
				t.Run(name, func(t *testing.T) {
					cfg := Config{SharesToCreate: n, Threshold: k, MaxSecretSize: 256}
					secret := bytes.Repeat([]byte{0x5A}, l)
					for i := range secret {
						secret[i] += byte(i)
					}

					all := mustSplit(t, cfg, secret)
					require.Len(t, all, n)

					subset := all[:k]
					recovered, err := Combine(subset)
					require.NoError(t, err)
					require.Equal(t, secret, recovered)

					if n > k {
						fullSet, err := Combine(all)
						require.NoError(t, err)
						require.Equal(t, secret, fullSet)
					}

					for m := k; m <= n; m++ {
						for _, combo := range combinations(n, m) {
							subset := make([]*Share, len(combo))
							for i, idx := range combo {
								subset[i] = all[idx]
							}

							got, err := Combine(subset)
							require.NoError(t, err)
							require.Equal(t, secret, got)
						}
					}
				})
			}
		}
	}
}

func TestSplit_DistinctIDs(t *testing.T) {
	cfg := Config{SharesToCreate: 10, Threshold: 4, MaxSecretSize: 64}
	all := mustSplit(t, cfg, []byte("distinct ids please"))

	seen := make(map[byte]bool, len(all))
	for _, s := range all {
		require.False(t, seen[s.ID])
		seen[s.ID] = true
		require.True(t, s.ID >= 1 && int(s.ID) <= cfg.SharesToCreate)
	}
}

func TestSplit_DeterministicGivenSameSeed(t *testing.T) {
	cfg := DefaultConfig()
	secret := []byte("reproducible")

	a, err := SplitWithRandom(cfg, secret, deterministicReaderSeeded(t, 42))
	require.NoError(t, err)

	b, err := SplitWithRandom(cfg, secret, deterministicReaderSeeded(t, 42))
	require.NoError(t, err)

	require.Len(t, a, len(b))

	for i := range a {
		require.True(t, a[i].Equal(b[i]))
	}
}

func TestSplit_InvalidConfig(t *testing.T) {
	secret := []byte("x")

	cases := map[string]Config{
		"K=1": {SharesToCreate: 5, Threshold: 1, MaxSecretSize: 1024},
		"K=0": {SharesToCreate: 5, Threshold: 0, MaxSecretSize: 1024},
		"K>N": {SharesToCreate: 4, Threshold: 5, MaxSecretSize: 1024},
		"N=1": {SharesToCreate: 1, Threshold: 1, MaxSecretSize: 1024},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Split(cfg, secret)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSplit_EmptySecret(t *testing.T) {
	_, err := Split(DefaultConfig(), nil)
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestSplit_OversizeSecret(t *testing.T) {
	cfg := Config{SharesToCreate: 5, Threshold: 3, MaxSecretSize: 4}
	_, err := Split(cfg, bytes.Repeat([]byte{1}, 5))
	require.ErrorIs(t, err, ErrSecretTooLarge)
}

func TestCombine_NoShares(t *testing.T) {
	_, err := Combine(nil)
	require.ErrorIs(t, err, ErrNoShares)
}

func TestCombine_OneShare(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 2, MaxSecretSize: 64}
	all := mustSplit(t, cfg, []byte("hi"))

	_, err := Combine(all[:1])
	require.ErrorIs(t, err, ErrInsufficientShares)
}

func TestCombine_DuplicateShareID(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 2, MaxSecretSize: 64}
	all := mustSplit(t, cfg, []byte("hi"))

	tampered := &Share{ID: all[0].ID, Points: all[1].Points}
	_, err := Combine([]*Share{all[0], tampered})
	require.ErrorIs(t, err, ErrDuplicateShareID)
}

func TestCombine_RaggedShares(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 2, MaxSecretSize: 64}
	a := mustSplit(t, cfg, []byte("short"))
	b := mustSplit(t, cfg, []byte("a bit longer input"))

	_, err := Combine([]*Share{a[0], b[1]})
	require.ErrorIs(t, err, ErrRaggedShares)
}

// TestUnderThreshold_NonRecovery exercises the under-threshold non-recovery property: with K >= 3,
// combining exactly K-1 shares almost never yields the original secret.
func TestUnderThreshold_NonRecovery(t *testing.T) {
	cfg := Config{SharesToCreate: 5, Threshold: 3, MaxSecretSize: 256}
	secret := bytes.Repeat([]byte{0xFF}, 32)

	all := mustSplit(t, cfg, secret)

	recovered, err := Combine(all[:cfg.Threshold-1])
	if err == nil {
		require.NotEqual(t, secret, recovered)
	}
}

// Scenario: a short passphrase split with N=5, K=3.
func TestScenario_CorrectHorseBatteryStaple(t *testing.T) {
	cfg := Config{SharesToCreate: 5, Threshold: 3, MaxSecretSize: 64}
	secret := []byte("correct horse battery staple")

	all := mustSplit(t, cfg, secret)
	require.Len(t, all, 5)

	for _, s := range all {
		require.Len(t, s.Points, len(secret))
	}

	full, err := Combine(all)
	require.NoError(t, err)
	require.Equal(t, secret, full)

	three, err := Combine([]*Share{all[0], all[2], all[4]})
	require.NoError(t, err)
	require.Equal(t, secret, three)

	two, err := Combine([]*Share{all[1], all[3]})
	if err == nil {
		require.NotEqual(t, secret, two)
	}
}

// Scenario: a single zero byte, the smallest possible secret.
func TestScenario_SingleZeroByte(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 2, MaxSecretSize: 64}
	secret := []byte{0x00}

	all := mustSplit(t, cfg, secret)

	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, pair := range pairs {
		recovered, err := Combine([]*Share{all[pair[0]], all[pair[1]]})
		require.NoError(t, err)
		require.Equal(t, secret, recovered)
	}
}

// Scenario: every 7-of-10 combination of shares recovers the same secret.
func TestScenario_AllSevenOfTenSubsets(t *testing.T) {
	cfg := Config{SharesToCreate: 10, Threshold: 7, MaxSecretSize: 512}
	secret := bytes.Repeat([]byte{0xFF}, 256)

	all := mustSplit(t, cfg, secret)

	combos := combinations(len(all), cfg.Threshold)
	require.Len(t, combos, 120)

	for _, combo := range combos {
		subset := make([]*Share, len(combo))
		for i, idx := range combo {
			subset[i] = all[idx]
		}

		recovered, err := Combine(subset)
		require.NoError(t, err)
		require.Equal(t, secret, recovered)
	}
}

// Scenario: a threshold greater than the share count is rejected up front.
func TestScenario_KGreaterThanN_InvalidConfig(t *testing.T) {
	cfg := Config{SharesToCreate: 4, Threshold: 5, MaxSecretSize: 64}
	_, err := Split(cfg, []byte("x"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// Scenario: a hand-crafted duplicate share ID is rejected.
func TestScenario_HandCraftedDuplicateID(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 2, MaxSecretSize: 64}
	all := mustSplit(t, cfg, []byte("hi"))

	crafted := &Share{ID: 1, Points: all[1].Points}
	_, err := Combine([]*Share{all[0], crafted})
	require.ErrorIs(t, err, ErrDuplicateShareID)
}

// Scenario: threshold equals share count, one share short of it does not recover.
func TestScenario_ExactThreshold_TwoOfThree_NotEqual(t *testing.T) {
	cfg := Config{SharesToCreate: 3, Threshold: 3, MaxSecretSize: 64}
	secret := []byte("threshold equals total shares")

	all := mustSplit(t, cfg, secret)

	recovered, err := Combine(all[:2])
	if err == nil {
		require.NotEqual(t, secret, recovered)
	}
}

// combinations returns all k-element index combinations of [0, n).
func combinations(n, k int) [][]int {
	var out [][]int
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	for {
		combo := append([]int(nil), indices...)
		out = append(out, combo)

		i := k - 1
		for i >= 0 && indices[i] == i+n-k {
			i--
		}

		if i < 0 {
			return out
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
