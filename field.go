// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package shamir implements Shamir's Secret Sharing Scheme: splitting a secret byte string into a set of shares such
// that any threshold-sized subset of them reconstructs the secret exactly, while smaller subsets reveal nothing about
// it beyond its length.
package shamir

import (
	"crypto/rand"
	"io"
	"math/big"
)

// prime is the field modulus: 2^257 - 93, a 257-bit prime. Every byte value (0-255) is representable well below it,
// and it is fixed for the lifetime of this module's wire format: shares produced under one prime are not
// interpolatable against another.
var prime *big.Int

// primeByteLen is the fixed width, in bytes, of a field element's canonical big-endian encoding.
const primeByteLen = 33

func init() {
	prime, _ = new(big.Int).SetString("231584178474632390847141970017375815706539969331281128078915168015826259279779", 10)
}

// Prime returns a copy of the field modulus used by this package.
func Prime() *big.Int {
	return new(big.Int).Set(prime)
}

// fieldAdd returns (a + b) mod prime.
func fieldAdd(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, prime)
}

// fieldSub returns (a - b) mod prime, normalized to [0, prime).
func fieldSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), prime)
}

// fieldMul returns (a * b) mod prime.
func fieldMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), prime)
}

// fieldInv returns the unique x such that a*x ≡ 1 (mod prime), or ErrZeroInverse if a is zero mod prime.
func fieldInv(a *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(a, prime).Sign() == 0 {
		return nil, ErrZeroInverse
	}

	return new(big.Int).ModInverse(a, prime), nil
}

// randomFieldElement draws a uniform element of [0, prime) from random.
func randomFieldElement(random io.Reader) (*big.Int, error) {
	n, err := rand.Int(random, prime)
	if err != nil {
		return nil, ErrRandomnessFailure
	}

	return n, nil
}

// osRandom is the default CSPRNG source for the package's convenience entry points.
var osRandom io.Reader = rand.Reader
