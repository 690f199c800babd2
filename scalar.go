// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// ModNScalar implements optimized fixed-precision arithmetic over the group
// order N of the secp256k1 curve.  See the FieldVal doc comment in field.go
// for why this is backed by math/big rather than the upstream fixed limb
// representation — the same reasoning applies here.
type ModNScalar struct {
	val big.Int
}

func (s *ModNScalar) reduce() *ModNScalar {
	s.val.Mod(&s.val, curveParams.N)
	return s
}

// SetInt sets the scalar to the passed small integer and returns it for
// chaining.
func (s *ModNScalar) SetInt(ui uint64) *ModNScalar {
	s.val.SetUint64(ui)
	return s
}

// Set sets the scalar equal to the passed one and returns it for chaining.
func (s *ModNScalar) Set(s2 *ModNScalar) *ModNScalar {
	s.val.Set(&s2.val)
	return s
}

// Zero sets the scalar to zero and clears any sensitive state it held.
func (s *ModNScalar) Zero() {
	words := s.val.Bits()
	words = words[:cap(words)]
	for i := range words {
		words[i] = 0
	}
	s.val.SetInt64(0)
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian unsigned
// integer, truncating to the first 32 bytes if it is longer, sets the scalar
// to the resulting value reduced modulo N, and returns whether or not the
// value overflowed N (i.e. whether it was reduced).
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	if len(b) > 32 {
		b = b[:32]
	}
	s.val.SetBytes(b)
	overflow := s.val.Cmp(curveParams.N) >= 0
	s.reduce()
	return overflow
}

// SetBytes interprets the passed 32-byte big-endian array as a 256-bit
// unsigned integer, sets the scalar to the resulting value reduced modulo N,
// and returns whether or not the value overflowed N.
func (s *ModNScalar) SetBytes(b *[32]byte) uint32 {
	if s.SetByteSlice(b[:]) {
		return 1
	}
	return 0
}

// IsZero returns whether or not the scalar is equal to zero.
func (s *ModNScalar) IsZero() bool {
	return len(s.val.Bits()) == 0
}

// IsOverHalfOrder returns whether or not the scalar exceeds the group order
// divided by two.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.val.Cmp(halfOrder) > 0
}

// Equals returns whether or not the two scalars are the same.
func (s *ModNScalar) Equals(s2 *ModNScalar) bool {
	return s.val.Cmp(&s2.val) == 0
}

// Add adds the passed scalar to this one modulo N and returns it for
// chaining.
func (s *ModNScalar) Add(s2 *ModNScalar) *ModNScalar {
	s.val.Add(&s.val, &s2.val)
	return s.reduce()
}

// Add2 adds the two passed scalars together modulo N, stores the result in s,
// and returns it for chaining.
func (s *ModNScalar) Add2(s1, s2 *ModNScalar) *ModNScalar {
	s.val.Add(&s1.val, &s2.val)
	return s.reduce()
}

// Negate negates the scalar modulo N and returns it for chaining.
func (s *ModNScalar) Negate() *ModNScalar {
	s.val.Sub(curveParams.N, &s.val)
	return s.reduce()
}

// Mul multiplies this scalar by the passed one modulo N and returns it for
// chaining.
func (s *ModNScalar) Mul(s2 *ModNScalar) *ModNScalar {
	s.val.Mul(&s.val, &s2.val)
	return s.reduce()
}

// Mul2 multiplies the two passed scalars together modulo N, stores the result
// in s, and returns it for chaining.
func (s *ModNScalar) Mul2(s1, s2 *ModNScalar) *ModNScalar {
	s.val.Mul(&s1.val, &s2.val)
	return s.reduce()
}

// InverseValNonConst finds the modular multiplicative inverse of the passed
// scalar modulo N, stores the result in s, and returns it for chaining.
func (s *ModNScalar) InverseValNonConst(s2 *ModNScalar) *ModNScalar {
	if s2.IsZero() {
		panic(makeError(ErrInvertOfZero, "attempt to invert zero scalar"))
	}
	s.val.ModInverse(&s2.val, curveParams.N)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	s.PutBytes(&b)
	return b
}

// PutBytes unpacks the scalar to a passed 32-byte array.
func (s *ModNScalar) PutBytes(b *[32]byte) {
	s.PutBytesUnchecked(b[:])
}

// PutBytesUnchecked unpacks the scalar to the passed byte slice, which must
// have at least 32 bytes available or it will panic.
func (s *ModNScalar) PutBytesUnchecked(b []byte) {
	src := s.val.Bytes()
	for i := range b[:32] {
		b[i] = 0
	}
	copy(b[32-len(src):32], src)
}

// halfOrder is N/2, used to determine canonical signature low-s form.
var halfOrder = new(big.Int).Rsh(curveParams.N, 1)

// bigIntFromScalar returns the scalar's value as a freshly-allocated big.Int.
// It is used internally by the GLV scalar split and wNAF code in curve.go.
func bigIntFromScalar(s *ModNScalar) *big.Int {
	return new(big.Int).Set(&s.val)
}

// scalarFromBigInt reduces the passed big.Int modulo N and returns it as a
// ModNScalar.
func scalarFromBigInt(v *big.Int) ModNScalar {
	var s ModNScalar
	s.val.Mod(v, curveParams.N)
	return s
}
