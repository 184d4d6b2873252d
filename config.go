// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import "fmt"

// MaxShares is the ceiling on Config.SharesToCreate. It keeps a share's identifier representable in a single byte
// for external, on-wire encodings (see the shares subpackage).
const MaxShares = 255

// Config drives Split: how many shares to create, how many of them are required to reconstruct the secret, and the
// largest secret Split will accept.
type Config struct {
	// SharesToCreate is N, the total number of shares Split produces. Must be in [2, MaxShares].
	SharesToCreate int

	// Threshold is K, the minimum number of shares required to reconstruct the secret. Must be in [2, SharesToCreate].
	Threshold int

	// MaxSecretSize is the largest secret, in bytes, that Split will accept. Must be at least 1.
	MaxSecretSize int
}

// DefaultConfig returns the reference configuration: 5 shares, a threshold of 3, and a 1024-byte secret ceiling.
func DefaultConfig() Config {
	return Config{
		SharesToCreate: 5,
		Threshold:      3,
		MaxSecretSize:  1024,
	}
}

// Validate reports ErrInvalidConfig, wrapped with the specific violated constraint, if the configuration is
// unusable. A threshold of 0 or 1 is rejected: 0 is ill-defined and 1 would let a single share reveal the secret.
func (c Config) Validate() error {
	switch {
	case c.SharesToCreate < 2:
		return fmt.Errorf("%w: shares to create must be at least 2, got %d", ErrInvalidConfig, c.SharesToCreate)
	case c.SharesToCreate > MaxShares:
		return fmt.Errorf("%w: shares to create must be at most %d, got %d", ErrInvalidConfig, MaxShares, c.SharesToCreate)
	case c.Threshold < 2:
		return fmt.Errorf("%w: threshold must be at least 2, got %d", ErrInvalidConfig, c.Threshold)
	case c.Threshold > c.SharesToCreate:
		return fmt.Errorf(
			"%w: threshold (%d) must not exceed shares to create (%d)",
			ErrInvalidConfig, c.Threshold, c.SharesToCreate,
		)
	case c.MaxSecretSize < 1:
		return fmt.Errorf("%w: max secret size must be at least 1, got %d", ErrInvalidConfig, c.MaxSecretSize)
	}

	return nil
}
