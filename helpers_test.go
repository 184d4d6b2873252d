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
	mrand "math/rand"
	"testing"
)

// deterministicReader returns a reproducible, seeded io.Reader suitable for exercising SplitWithRandom's
// determinism guarantee in tests. It must never be used outside of tests: math/rand is not cryptographically
// secure.
func deterministicReader(t *testing.T) io.Reader {
	t.Helper()
	return mrand.New(mrand.NewSource(1))
}

// deterministicReaderSeeded is deterministicReader parameterized by seed, for tests that need two independent but
// reproducible streams.
func deterministicReaderSeeded(t *testing.T, seed int64) io.Reader {
	t.Helper()
	return mrand.New(mrand.NewSource(seed))
}
