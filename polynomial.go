// SPDX-License-Identifier: MIT
//
// Copyright (C) 2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import (
	"io"
	"math/big"
)

// polynomial over the field, represented as a list of threshold coefficients, where the constant term (index 0) is
// the secret byte for this column and the highest-degree coefficient is last.
type polynomial []*big.Int

// newRandomPolynomial builds a degree-(threshold-1) polynomial with secretByte as its constant term and the
// remaining threshold-1 coefficients drawn independently and uniformly from the field using random.
func newRandomPolynomial(random io.Reader, secretByte byte, threshold int) (polynomial, error) {
	p := make(polynomial, threshold)
	p[0] = big.NewInt(int64(secretByte))

	for i := 1; i < threshold; i++ {
		coeff, err := randomFieldElement(random)
		if err != nil {
			return nil, err
		}

		p[i] = coeff
	}

	return p, nil
}

// evaluate evaluates p at point x using Horner's method:
// ((...(c_{k-1}*x + c_{k-2})*x + ...)*x + c_0).
func (p polynomial) evaluate(x *big.Int) *big.Int {
	value := new(big.Int).Set(p[len(p)-1])

	for i := len(p) - 2; i >= 0; i-- {
		value = fieldMul(value, x)
		value = fieldAdd(value, p[i])
	}

	return value
}

// point is one (x, y) pair on some polynomial.
type point struct {
	x, y *big.Int
}

// interpolateAtZero recovers f(0) from a set of distinct-x points on a polynomial, via Lagrange interpolation:
//
//	f(0) = Σ_i y_i * Π_{j≠i} ( x_j * (x_j - x_i)^-1 )
//
// It fails with ErrDuplicateX if two points share an x-coordinate, and with ErrZeroInverse if a denominator
// vanishes (which duplicate-x detection should already have ruled out).
func interpolateAtZero(points []point) (*big.Int, error) {
	if err := checkDistinctX(points); err != nil {
		return nil, err
	}

	result := big.NewInt(0)

	for i := range points {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range points {
			if i == j {
				continue
			}

			numerator = fieldMul(numerator, points[j].x)
			denominator = fieldMul(denominator, fieldSub(points[j].x, points[i].x))
		}

		invDenominator, err := fieldInv(denominator)
		if err != nil {
			return nil, err
		}

		basis := fieldMul(numerator, invDenominator)
		term := fieldMul(points[i].y, basis)
		result = fieldAdd(result, term)
	}

	return result, nil
}

// checkDistinctX returns ErrDuplicateX if any two points share an x-coordinate.
func checkDistinctX(points []point) error {
	seen := make(map[string]struct{}, len(points))

	for _, p := range points {
		key := p.x.String()
		if _, ok := seen[key]; ok {
			return ErrDuplicateX
		}

		seen[key] = struct{}{}
	}

	return nil
}
