// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import (
	"io"
	"math/big"

	"github.com/coreshare/shamir/shares"
)

// Share is an alias of shares.Share, re-exported so callers of Split and Combine do not need to import the shares
// subpackage directly for the common case.
type Share = shares.Share

// ShareBundle is an alias of shares.ShareBundle, re-exported for the same reason as Share.
type ShareBundle = shares.ShareBundle

// Split divides secret into cfg.SharesToCreate shares, any cfg.Threshold of which reconstruct it exactly, using
// crypto/rand as the source of coefficient randomness. See SplitWithRandom to inject a different source, for
// example for deterministic testing.
func Split(cfg Config, secret []byte) ([]*Share, error) {
	return SplitWithRandom(cfg, secret, osRandom)
}

// SplitWithRandom is Split with an explicit random source. random must be suitable for cryptographic use; a
// predictable source destroys the scheme's secrecy guarantee.
func SplitWithRandom(cfg Config, secret []byte, random io.Reader) ([]*Share, error) {
	if err := validateSplitArgs(cfg, secret); err != nil {
		return nil, err
	}

	xs := xCoordinates(cfg.SharesToCreate)
	out := make([]*Share, cfg.SharesToCreate)

	for i := range out {
		out[i] = &Share{ID: byte(i + 1), Points: make([]*big.Int, len(secret))}
	}

	for byteIndex, secretByte := range secret {
		p, err := newRandomPolynomial(random, secretByte, cfg.Threshold)
		if err != nil {
			return nil, err
		}

		for shareIndex, x := range xs {
			out[shareIndex].Points[byteIndex] = p.evaluate(x)
		}
	}

	return out, nil
}

// validateSplitArgs enforces preconditions in the order the error taxonomy documents them.
func validateSplitArgs(cfg Config, secret []byte) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(secret) == 0 {
		return ErrEmptySecret
	}

	if len(secret) > cfg.MaxSecretSize {
		return ErrSecretTooLarge
	}

	return nil
}

// xCoordinates returns the deterministic reference x-coordinate set {1, ..., n}: the utility this scheme uses,
// specialized to the reference design's choice of public, sequential share identifiers.
func xCoordinates(n int) []*big.Int {
	xs := make([]*big.Int, n)
	for i := range xs {
		xs[i] = big.NewInt(int64(i + 1))
	}

	return xs
}

// Combine reconstructs a secret from a set of shares produced by one Split call. It requires at least two shares,
// pairwise-distinct IDs, and points slices of identical length across all shares.
//
// Combine does not know the threshold the shares were created with: it interpolates whatever shares it is given.
// With fewer than the original threshold, the interpolated columns are usually, but not reliably, caught by
// ErrReconstructionOutOfRange. Callers who must detect under-threshold combination
// reliably need to track the threshold themselves.
func Combine(input []*Share) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrNoShares
	}

	if len(input) < 2 {
		return nil, ErrInsufficientShares
	}

	length, err := validateCombineArgs(input)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, length)

	for byteIndex := 0; byteIndex < length; byteIndex++ {
		points := make([]point, len(input))
		for i, s := range input {
			points[i] = point{x: big.NewInt(int64(s.ID)), y: s.Points[byteIndex]}
		}

		r, err := interpolateAtZero(points)
		if err != nil {
			return nil, err
		}

		if r.Sign() < 0 || r.Cmp(big.NewInt(256)) >= 0 {
			return nil, ErrReconstructionOutOfRange
		}

		secret[byteIndex] = byte(r.Int64())
	}

	return secret, nil
}

// validateCombineArgs checks the duplicate-ID and ragged-length invariants and returns the common
// points length.
func validateCombineArgs(input []*Share) (int, error) {
	seen := make(map[byte]struct{}, len(input))
	length := len(input[0].Points)

	for _, s := range input {
		if _, ok := seen[s.ID]; ok {
			return 0, ErrDuplicateShareID
		}

		seen[s.ID] = struct{}{}

		if len(s.Points) != length {
			return 0, ErrRaggedShares
		}
	}

	return length, nil
}
