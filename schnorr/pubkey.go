// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	secp256k1 "github.com/kedromelon/gosecp256k1"
)

// PubKeyBytesLen is the number of bytes in a serialized BIP-340 x-only
// public key.
const PubKeyBytesLen = 32

// PublicKey is a BIP-340 x-only public key: the x coordinate of a point on
// the curve with an implicit even y.  Unlike the full (x, y) public keys
// used by ECDSA, two private keys d and n-d share the same x-only public
// key, which is why Sign below negates the private key scalar whenever the
// corresponding full point has an odd y.
type PublicKey struct {
	x secp256k1.FieldVal
}

// NewPublicKey instantiates a new x-only public key from a field value
// x-coordinate.  As with secp256k1.NewPublicKey, this does not verify x
// corresponds to a point on the curve.
func NewPublicKey(x *secp256k1.FieldVal) *PublicKey {
	var pubKey PublicKey
	pubKey.x.Set(x)
	return &pubKey
}

// ParsePubKey parses a serialized 32-byte x-only public key, reconstructing
// the unique point on the curve with that x coordinate and an even y.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	if len(serialized) != PubKeyBytesLen {
		str := "malformed public key: invalid length"
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	var x secp256k1.FieldVal
	if overflow := x.SetByteSlice(serialized); overflow {
		str := "invalid public key: x >= field prime"
		return nil, makeError(ErrPubKeyXTooBig, str)
	}

	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&x, false, &y) {
		str := "invalid public key: x is not a valid curve coordinate"
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}

	return NewPublicKey(&x), nil
}

// asJacobian converts the x-only public key to the unique full Jacobian
// point on the curve with that x coordinate and an even y.
func (p *PublicKey) asJacobian() (secp256k1.JacobianPoint, error) {
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&p.x, false, &y) {
		str := "invalid public key: x is not a valid curve coordinate"
		return secp256k1.JacobianPoint{}, makeError(ErrPubKeyNotOnCurve, str)
	}

	var point secp256k1.JacobianPoint
	point.X.Set(&p.x)
	point.Y.Set(&y)
	point.Z.SetInt(1)
	return point, nil
}

// SerializeCompressed serializes the x-only public key as its 32-byte
// big-endian x coordinate.
func (p *PublicKey) SerializeCompressed() []byte {
	b := p.x.Bytes()
	out := make([]byte, PubKeyBytesLen)
	copy(out, b[:])
	return out
}
