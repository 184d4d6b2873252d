// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shares

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// bundleHeaderLen is the byte length of a ShareBundle's Encode header: Total (2) || Threshold (2) || share count (2).
const bundleHeaderLen = 2 + 2 + 2

// ShareBundle regroups the shares produced by one split together with the N/K they were created under, keyed by
// share ID. It rejects duplicate IDs and refuses to grow past Total, which the bare slice returned by Split does
// not do on its own.
type ShareBundle struct {
	Shares    map[byte]*Share `json:"shares"`
	Total     int             `json:"total"`
	Threshold int             `json:"threshold"`
}

// NewShareBundle returns an empty ShareBundle sized for total shares.
func NewShareBundle(threshold, total int) *ShareBundle {
	return &ShareBundle{
		Threshold: threshold,
		Total:     total,
		Shares:    make(map[byte]*Share, total),
	}
}

// Add registers share in the bundle, or returns ErrDuplicateID if its ID is already present, or ErrBundleFull if
// the bundle already holds Total shares.
func (b *ShareBundle) Add(share *Share) error {
	if _, ok := b.Shares[share.ID]; ok {
		return ErrDuplicateID
	}

	if len(b.Shares) == b.Total {
		return ErrBundleFull
	}

	b.Shares[share.ID] = share

	return nil
}

// Get returns the registered share for id, or nil if none is registered.
func (b *ShareBundle) Get(id byte) *Share {
	return b.Shares[id]
}

// MustGet returns the registered share for id, or ErrUnknownShareID if none is registered.
func (b *ShareBundle) MustGet(id byte) (*Share, error) {
	s, ok := b.Shares[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShareID, id)
	}

	return s, nil
}

// List returns the bundle's shares as a slice, in no particular order.
func (b *ShareBundle) List() []*Share {
	out := make([]*Share, 0, len(b.Shares))
	for _, s := range b.Shares {
		out = append(out, s)
	}

	return out
}

// Encode serializes the bundle into a compact byte form: Total (2 bytes, big-endian) || Threshold (2 bytes) ||
// share count (2 bytes) || each share's Encode() output, each prefixed by its own length (4 bytes).
func (b *ShareBundle) Encode() []byte {
	out := make([]byte, bundleHeaderLen)
	binary.BigEndian.PutUint16(out[0:2], uint16(b.Total))
	binary.BigEndian.PutUint16(out[2:4], uint16(b.Threshold))
	binary.BigEndian.PutUint16(out[4:6], uint16(len(b.Shares)))

	for _, s := range b.Shares {
		enc := s.Encode()
		lenPrefix := make([]byte, 4)
		binary.BigEndian.PutUint32(lenPrefix, uint32(len(enc)))
		out = append(out, lenPrefix...)
		out = append(out, enc...)
	}

	return out
}

// Hex returns the hexadecimal representation of the byte encoding returned by Encode.
func (b *ShareBundle) Hex() string {
	return hex.EncodeToString(b.Encode())
}

// Decode deserializes the input into the bundle, expecting the encoding produced by Encode. It does not modify the
// receiver when it returns an error.
func (b *ShareBundle) Decode(data []byte) error {
	if len(data) < bundleHeaderLen {
		return ErrInvalidLength
	}

	total := int(binary.BigEndian.Uint16(data[0:2]))
	threshold := int(binary.BigEndian.Uint16(data[2:4]))
	count := int(binary.BigEndian.Uint16(data[4:6]))

	offset := bundleHeaderLen
	shares := make(map[byte]*Share, count)

	for i := 0; i < count; i++ {
		if offset+4 > len(data) {
			return ErrInvalidLength
		}

		shareLen := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		offset += 4

		if offset+shareLen > len(data) {
			return ErrInvalidLength
		}

		share := new(Share)
		if err := share.Decode(data[offset : offset+shareLen]); err != nil {
			return fmt.Errorf("could not decode share %d: %w", i+1, err)
		}

		if _, ok := shares[share.ID]; ok {
			return ErrDuplicateID
		}

		shares[share.ID] = share
		offset += shareLen
	}

	if offset != len(data) {
		return ErrInvalidLength
	}

	b.Total = total
	b.Threshold = threshold
	b.Shares = shares

	return nil
}

// DecodeHex sets b to the decoding of the hex-encoded representation returned by Hex.
func (b *ShareBundle) DecodeHex(h string) error {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return err
	}

	return b.Decode(raw)
}
