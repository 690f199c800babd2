// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
	pubkeyHybrid       byte = 0x6 // y_bit + x coord + y coord
)

// PublicKey provides facilities for efficiently working with secp256k1 public
// keys within this package and includes functions to serialize in both
// compressed and uncompressed formats.
type PublicKey struct {
	x FieldVal
	y FieldVal
}

// NewPublicKey instantiates a new public key with the given X and Y
// coordinates.
//
// It should be noted that, unlike ParsePubKey, since this accepts arbitrary
// X and Y coordinates, it allows creation of public keys that are not valid
// points on the secp256k1 curve.  The IsOnCurve method can be used to
// determine validity.
func NewPublicKey(x, y *FieldVal) *PublicKey {
	var pubKey PublicKey
	pubKey.x.Set(x)
	pubKey.y.Set(y)
	return &pubKey
}

// ParsePubKey parses a public key for the secp256k1 curve from the passed
// serialized byte slice in either the compressed, uncompressed, or hybrid
// format and returns it along with any possible error.
func ParsePubKey(serialized []byte) (key *PublicKey, err error) {
	var x, y FieldVal
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		format := serialized[0]
		ybit := (format & 0x1) == 0x1
		switch format {
		case pubkeyUncompressed, pubkeyHybrid, pubkeyHybrid | 0x1:
		default:
			str := "invalid public key: unsupported format: " + string(rune(format))
			return nil, signatureError(ErrPubKeyInvalidFormat, str)
		}

		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			str := "invalid public key: x >= field prime"
			return nil, signatureError(ErrPubKeyXTooBig, str)
		}
		if overflow := y.SetByteSlice(serialized[33:65]); overflow {
			str := "invalid public key: y >= field prime"
			return nil, signatureError(ErrPubKeyYTooBig, str)
		}
		if format&^0x1 == pubkeyHybrid && ybit != y.IsOdd() {
			str := "invalid public key: hybrid format parity mismatch"
			return nil, signatureError(ErrPubKeyMismatchedOddness, str)
		}
		if !isOnCurve(&x, &y) {
			str := "invalid public key: point not on curve"
			return nil, signatureError(ErrPubKeyNotOnCurve, str)
		}

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		ybit := (format & 0x1) == 0x1
		format &= ^byte(0x1)
		if format != pubkeyCompressed {
			str := "invalid public key: unsupported format"
			return nil, signatureError(ErrPubKeyInvalidFormat, str)
		}
		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			str := "invalid public key: x >= field prime"
			return nil, signatureError(ErrPubKeyXTooBig, str)
		}
		if !DecompressY(&x, ybit, &y) {
			str := "invalid public key: x coordinate is not on the curve"
			return nil, signatureError(ErrPubKeyNotOnCurve, str)
		}
		y.Normalize()

	default:
		str := "malformed public key: invalid length: " + string(rune(len(serialized)))
		return nil, signatureError(ErrPubKeyInvalidLen, str)
	}

	return NewPublicKey(&x, &y), nil
}

// AsJacobian converts the public key into a Jacobian point with Z=1 and
// stores the result in the provided result param.
func (p *PublicKey) AsJacobian(result *JacobianPoint) {
	result.X.Set(&p.x)
	result.Y.Set(&p.y)
	result.Z.SetInt(1)
}

// X returns the x coordinate of the public key.
func (p *PublicKey) X() *FieldVal {
	return &p.x
}

// Y returns the y coordinate of the public key.
func (p *PublicKey) Y() *FieldVal {
	return &p.y
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (p PublicKey) SerializeUncompressed() []byte {
	var b [PubKeyBytesLenUncompressed]byte
	b[0] = pubkeyUncompressed
	x := p.x.Bytes()
	y := p.y.Bytes()
	copy(b[1:33], x[:])
	copy(b[33:65], y[:])
	return b[:]
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p PublicKey) SerializeCompressed() []byte {
	var b [PubKeyBytesLenCompressed]byte
	format := pubkeyCompressed
	if p.y.IsOdd() {
		format |= 0x1
	}
	b[0] = format
	x := p.x.Bytes()
	copy(b[1:33], x[:])
	return b[:]
}

// IsEqual returns whether or not the two public keys are equal.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.x.Equals(&otherPubKey.x) && p.y.Equals(&otherPubKey.y)
}

// IsOnCurve returns whether or not the public key represents a point on the
// secp256k1 curve.
func (p *PublicKey) IsOnCurve() bool {
	return isOnCurve(&p.x, &p.y)
}
