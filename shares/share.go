// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package shares defines the in-memory and on-wire representation of a Shamir Secret Sharing share, and a small
// bundle type to hold a set of them.
package shares

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
)

// FieldByteLen is the fixed width, in bytes, of a field element's canonical big-endian encoding, matching the
// package prime pinned by the shamir package (a 257-bit prime needs 33 bytes).
const FieldByteLen = 33

// headerLen is the byte length of a single Share's Encode header: ID (1 byte) || L (4-byte big-endian).
const headerLen = 1 + 4

// Share is one of the outputs of splitting a secret: an identifier (the x-coordinate, shared across every
// byte-column of one split) and one y-value per secret byte. It carries no explicit record of the threshold or
// secret length used to produce it; threshold is a property of a share set, reconstructible only by attempting
// combine, and length is implicit in len(Points).
type Share struct {
	// ID is the non-zero x-coordinate for this share, in 1..N.
	ID byte

	// Points holds one field element per secret byte, Points[i] = f_i(ID).
	Points []*big.Int
}

// Equal reports whether s and other are structurally identical: same ID and pointwise-equal Points of the same
// length.
func (s *Share) Equal(other *Share) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.ID != other.ID || len(s.Points) != len(other.Points) {
		return false
	}

	for i, p := range s.Points {
		if p.Cmp(other.Points[i]) != 0 {
			return false
		}
	}

	return true
}

// Encode serializes s into its canonical compact byte form: ID (1 byte) || L (4-byte big-endian) || for each point,
// its fixed-width (FieldByteLen) big-endian encoding.
func (s *Share) Encode() []byte {
	out := make([]byte, headerLen, headerLen+len(s.Points)*FieldByteLen)
	out[0] = s.ID
	binary.BigEndian.PutUint32(out[1:5], uint32(len(s.Points)))

	for _, p := range s.Points {
		out = append(out, fieldElementBytes(p)...)
	}

	return out
}

// Hex returns the hexadecimal representation of the byte encoding returned by Encode.
func (s *Share) Hex() string {
	return hex.EncodeToString(s.Encode())
}

// Decode deserializes the compact encoding obtained from Encode, or returns an error.
func (s *Share) Decode(data []byte) error {
	if len(data) < headerLen {
		return ErrInvalidLength
	}

	id := data[0]
	l := binary.BigEndian.Uint32(data[1:5])
	expected := headerLen + int(l)*FieldByteLen

	if len(data) != expected {
		return ErrInvalidLength
	}

	points := make([]*big.Int, l)
	offset := headerLen

	for i := range points {
		points[i] = new(big.Int).SetBytes(data[offset : offset+FieldByteLen])
		offset += FieldByteLen
	}

	s.ID = id
	s.Points = points

	return nil
}

// DecodeHex sets s to the decoding of the hex-encoded representation returned by Hex.
func (s *Share) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}

	return s.Decode(b)
}

// fieldElementBytes encodes n as a fixed-width, big-endian byte string of length FieldByteLen.
func fieldElementBytes(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) >= FieldByteLen {
		return b[len(b)-FieldByteLen:]
	}

	out := make([]byte, FieldByteLen)
	copy(out[FieldByteLen-len(b):], b)

	return out
}
