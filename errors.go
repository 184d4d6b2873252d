// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import "errors"

var (
	// ErrInvalidConfig is returned when a Config's threshold, share count or maximum secret size is out of range.
	ErrInvalidConfig = errors.New("invalid config: threshold, share count or max secret size constraint violated")

	// ErrEmptySecret is returned when Split is given a zero-length secret.
	ErrEmptySecret = errors.New("the provided secret is empty")

	// ErrSecretTooLarge is returned when the secret exceeds the configured maximum size.
	ErrSecretTooLarge = errors.New("the provided secret exceeds the configured maximum size")

	// ErrNoShares is returned when Combine is given zero shares.
	ErrNoShares = errors.New("no shares provided")

	// ErrInsufficientShares is returned when Combine is given fewer than two shares.
	ErrInsufficientShares = errors.New("at least two shares are required to combine")

	// ErrDuplicateShareID is returned when two shares given to Combine carry the same identifier.
	ErrDuplicateShareID = errors.New("two or more shares share the same identifier")

	// ErrRaggedShares is returned when shares given to Combine disagree on the number of points they carry.
	ErrRaggedShares = errors.New("shares disagree on the number of points they carry")

	// ErrReconstructionOutOfRange is returned when an interpolated byte column does not fall in [0, 256).
	ErrReconstructionOutOfRange = errors.New("reconstructed value is not a valid byte")

	// ErrZeroInverse is returned when a modular inverse is requested for zero. Unreachable from the public API
	// under documented preconditions; its appearance indicates a bug.
	ErrZeroInverse = errors.New("cannot invert zero in the field")

	// ErrDuplicateX is returned when interpolation is given two points with the same x-coordinate. Unreachable
	// from the public API under documented preconditions; its appearance indicates a bug.
	ErrDuplicateX = errors.New("interpolation points contain a duplicate x-coordinate")

	// ErrRandomnessFailure is returned when the configured random source refuses to produce bytes.
	ErrRandomnessFailure = errors.New("random source failed to produce randomness")
)
