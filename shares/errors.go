// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shares

import "errors"

var (
	// ErrInvalidLength is returned when a Share or ShareBundle encoding has the wrong length for its declared
	// header.
	ErrInvalidLength = errors.New("invalid encoding length")

	// ErrDuplicateID is returned when adding a share to a ShareBundle whose ID is already registered.
	ErrDuplicateID = errors.New("a share with this ID is already registered")

	// ErrBundleFull is returned when adding a share to a ShareBundle that has already reached its declared
	// share count.
	ErrBundleFull = errors.New("the share bundle is already at capacity")

	// ErrUnknownShareID is returned when looking up a share ID that was never registered in a ShareBundle.
	ErrUnknownShareID = errors.New("the requested share ID is not registered")
)
