// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// FieldVal implements optimized fixed-precision arithmetic over the secp256k1
// base field.  The field prime is P = 2^256 - 2^32 - 977.
//
// The canonical upstream implementation that this package descends from packs
// the 256-bit value into ten 26-bit limbs and defers modular reduction across
// chained operations, tracking a "magnitude" bound on each intermediate value
// so that Normalize need only be called once a result is required in
// canonical [0, P) form.  That representation is reconstructed here on top of
// math/big instead: every mutating method eagerly reduces modulo P, so the
// magnitude argument accepted by Negate is retained for API compatibility
// with the rest of this package (and so the call-site chains read exactly as
// they would against the limb-based implementation) but carries no
// information — eager reduction makes every intermediate value already
// canonical, which is always a valid magnitude-1 value in the original
// scheme.
type FieldVal struct {
	val big.Int
}

// fieldPrime is P = 2^256 - 2^32 - 977, the secp256k1 base field modulus.
var fieldPrime = func() *big.Int {
	p := new(big.Int).Lsh(bigOne, 256)
	p.Sub(p, new(big.Int).Lsh(bigOne, 32))
	p.Sub(p, big.NewInt(977))
	return p
}()

var bigOne = big.NewInt(1)

// fieldOne is simply the integer 1 in field representation.  It is used to
// avoid needing to create it multiple times during the internal arithmetic.
var fieldOne = new(FieldVal).SetInt(1)

func (f *FieldVal) reduce() *FieldVal {
	f.val.Mod(&f.val, fieldPrime)
	return f
}

// SetInt sets the field value to the passed small integer and returns the
// field value for chaining.  Only small (< 2^16) values are supported since
// this is only used to set well-known constants.
func (f *FieldVal) SetInt(ui uint64) *FieldVal {
	f.val.SetUint64(ui)
	return f
}

// Set sets the field value equal to the passed one and returns it for
// chaining.
func (f *FieldVal) Set(f2 *FieldVal) *FieldVal {
	f.val.Set(&f2.val)
	return f
}

// SetBytes packs the passed 32-byte big-endian value into the field value and
// returns it for chaining.
func (f *FieldVal) SetBytes(b *[32]byte) *FieldVal {
	f.val.SetBytes(b[:])
	return f.reduce()
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian unsigned
// integer, truncating to the first 32 bytes if it is longer, sets the field
// value to the resulting value, and returns whether or not the value
// overflowed the field prime (i.e. whether it was reduced).
func (f *FieldVal) SetByteSlice(b []byte) bool {
	if len(b) > 32 {
		b = b[:32]
	}
	f.val.SetBytes(b)
	overflow := f.val.Cmp(fieldPrime) >= 0
	f.reduce()
	return overflow
}

// SetHex decodes the passed big-endian hex string into the field value and
// returns it for chaining.  It will panic if the string is not valid hex,
// since it is only used for hard-coded constants.
func (f *FieldVal) SetHex(hexString string) *FieldVal {
	if len(hexString)%2 != 0 {
		hexString = "0" + hexString
	}
	if _, ok := f.val.SetString(hexString, 16); !ok {
		panic("invalid hex in source file: " + hexString)
	}
	return f.reduce()
}

// Normalize reduces the field value to its unique canonical representative in
// [0, P) and returns it for chaining.
func (f *FieldVal) Normalize() *FieldVal {
	return f.reduce()
}

// Add adds the passed value to the field value and returns it for chaining.
func (f *FieldVal) Add(f2 *FieldVal) *FieldVal {
	f.val.Add(&f.val, &f2.val)
	return f.reduce()
}

// Add2 adds the two passed field values together and stores the result in f,
// returning it for chaining.
func (f *FieldVal) Add2(f1, f2 *FieldVal) *FieldVal {
	f.val.Add(&f1.val, &f2.val)
	return f.reduce()
}

// Negate negates the field value and returns it for chaining.  The magnitude
// parameter mirrors the upstream limb-based API (see the FieldVal doc
// comment) and has no effect here since every value is already held in
// canonical form.
func (f *FieldVal) Negate(magnitude uint32) *FieldVal {
	f.val.Sub(fieldPrime, &f.val)
	return f.reduce()
}

// Mul multiplies the field value by the passed one and returns it for
// chaining.
func (f *FieldVal) Mul(f2 *FieldVal) *FieldVal {
	f.val.Mul(&f.val, &f2.val)
	return f.reduce()
}

// Mul2 multiplies the two passed field values together and stores the result
// in f, returning it for chaining.
func (f *FieldVal) Mul2(f1, f2 *FieldVal) *FieldVal {
	f.val.Mul(&f1.val, &f2.val)
	return f.reduce()
}

// MulInt multiplies the field value by the passed small integer and returns
// it for chaining.
func (f *FieldVal) MulInt(val uint) *FieldVal {
	f.val.Mul(&f.val, new(big.Int).SetUint64(uint64(val)))
	return f.reduce()
}

// Square squares the field value and returns it for chaining.
func (f *FieldVal) Square() *FieldVal {
	f.val.Mul(&f.val, &f.val)
	return f.reduce()
}

// SquareVal squares the passed field value and stores the result in f,
// returning it for chaining.
func (f *FieldVal) SquareVal(f2 *FieldVal) *FieldVal {
	f.val.Mul(&f2.val, &f2.val)
	return f.reduce()
}

// IsZero returns whether or not the field value is equal to zero.
func (f *FieldVal) IsZero() bool {
	return len(f.val.Bits()) == 0
}

// IsOdd returns whether or not the field value is an odd number.
func (f *FieldVal) IsOdd() bool {
	return f.val.Bit(0) == 1
}

// IsOddBit returns 1 if the field value is odd and 0 otherwise as a uint32
// suitable for building bitmasks without introducing a data-dependent branch.
func (f *FieldVal) IsOddBit() uint32 {
	return uint32(f.val.Bit(0))
}

// Equals returns whether or not the two field values are the same.
func (f *FieldVal) Equals(f2 *FieldVal) bool {
	return f.val.Cmp(&f2.val) == 0
}

// Bytes returns the field value as a normalized, 32-byte big-endian array.
func (f *FieldVal) Bytes() [32]byte {
	var b [32]byte
	f.PutBytes(&b)
	return b
}

// PutBytes unpacks the normalized field value to a passed 32-byte array.
func (f *FieldVal) PutBytes(b *[32]byte) {
	f.PutBytesUnchecked(b[:])
}

// PutBytesUnchecked unpacks the normalized field value to the passed byte
// slice, which must have at least 32 bytes available or it will panic.
func (f *FieldVal) PutBytesUnchecked(b []byte) {
	src := f.val.Bytes()
	for i := range b[:32] {
		b[i] = 0
	}
	copy(b[32-len(src):32], src)
}

// Inverse finds the modular multiplicative inverse of the field value and
// returns it for chaining.  It will panic if the value is zero since that
// indicates a bug in the calling code — a signature- or point-level algorithm
// that reaches here with a zero value has already failed to check for it at
// the appropriate earlier step.
func (f *FieldVal) Inverse() *FieldVal {
	if f.IsZero() {
		panic(makeError(ErrInvertOfZero, "attempt to invert zero field value"))
	}
	f.val.ModInverse(&f.val, fieldPrime)
	return f
}

// sqrtExponent is (P+1)/4.  Since P ≡ 3 (mod 4) for the secp256k1 prime,
// raising a quadratic residue to this power yields one of its square roots.
// The canonical implementation this package descends from computes this
// exponentiation via an explicit addition chain of field squarings and
// multiplications rather than a general-purpose modexp; here the modular
// exponentiation is delegated to math/big.
//
// Exponent bit pattern (254 bits, most significant first): 223 one bits, a
// zero bit, 22 one bits, then 00001100.
var sqrtExponent = func() *big.Int {
	e := new(big.Int).Add(fieldPrime, bigOne)
	return e.Rsh(e, 2)
}()

// SqrtVal computes the square root of the passed field value (if one exists)
// using the fact that the field prime is of the form 3 mod 4 and stores the
// result in f, returning it for chaining.  Callers must verify the result via
// squaring since this function returns a value for every input and the
// caller is responsible for distinguishing a true square root from a
// non-residue's bogus "root".
func (f *FieldVal) SqrtVal(f2 *FieldVal) *FieldVal {
	f.val.Exp(&f2.val, sqrtExponent, fieldPrime)
	return f
}

// IsGtOrEqPrimeMinusOrder returns whether or not the field value, interpreted
// as an unsigned integer, is greater than or equal to P - N, where N is the
// group order.  This is used when recovering public keys and verifying
// signatures per secp256k1's cofactor-1 property (see signature.go).
func (f *FieldVal) IsGtOrEqPrimeMinusOrder() bool {
	return f.val.Cmp(primeMinusOrder) >= 0
}

// primeMinusOrder is P - N, precomputed since it is used repeatedly.
var primeMinusOrder = new(big.Int).Sub(fieldPrime, curveParams.N)
