// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	secp256k1 "github.com/kedromelon/gosecp256k1"
)

// SignatureSize is the size in bytes of an encoded BIP-340 Schnorr
// signature.
const SignatureSize = 64

// Signature is a BIP-340 Schnorr signature: a field element R.x paired with
// a scalar s.
type Signature struct {
	r secp256k1.FieldVal
	s secp256k1.ModNScalar
}

// NewSignature instantiates a new Schnorr signature given the R.x field
// value and s scalar.
func NewSignature(r *secp256k1.FieldVal, s *secp256k1.ModNScalar) *Signature {
	var sig Signature
	sig.r.Set(r)
	sig.s.Set(s)
	return &sig
}

// Serialize returns the Schnorr signature in the standard 64-byte wire
// format: r (32 bytes) || s (32 bytes), both big-endian.
func (sig *Signature) Serialize() []byte {
	var b [SignatureSize]byte
	rBytes := sig.r.Bytes()
	sBytes := sig.s.Bytes()
	copy(b[0:32], rBytes[:])
	copy(b[32:64], sBytes[:])
	return b[:]
}

// ParseSignature parses a 64-byte Schnorr signature, rejecting r values
// that do not fall in [0, P) and s values that do not fall in [0, N).
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) != SignatureSize {
		str := "malformed signature: invalid length"
		return nil, makeError(ErrSigInvalidLen, str)
	}

	var r secp256k1.FieldVal
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		str := "invalid signature: r >= field prime"
		return nil, makeError(ErrSigRTooBig, str)
	}

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		str := "invalid signature: s >= group order"
		return nil, makeError(ErrSigSTooBig, str)
	}

	return NewSignature(&r, &s), nil
}

// xorBytes32 xors two 32-byte arrays together.
func xorBytes32(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Sign produces a BIP-340 Schnorr signature over msg (which must be exactly
// 32 bytes, typically a message hash) using privKey.  auxRand, if non-nil,
// must be exactly 32 bytes and is mixed into nonce generation per BIP-340's
// auxiliary randomness construction; if nil, 32 bytes are drawn from u's
// RandomBytes.  The produced signature is self-verified before being
// returned — a failure here indicates a bug in this package rather than bad
// input, since every signature this algorithm produces must verify against
// its own public key.
func Sign(privKey *secp256k1.PrivateKey, msg []byte, auxRand []byte) (*Signature, error) {
	return SignWithUtils(secp256k1.DefaultUtils, privKey, msg, auxRand)
}

// SignWithUtils is identical to Sign except the hashing and randomness
// primitives come from the passed Utils rather than the package default.
func SignWithUtils(u *secp256k1.Utils, privKey *secp256k1.PrivateKey, msg []byte, auxRand []byte) (*Signature, error) {
	if privKey.Key.IsZero() {
		return nil, makeError(ErrPrivateKeyIsZero, "attempt to sign with a zero private key")
	}

	var d0 secp256k1.ModNScalar
	d0.Set(&privKey.Key)

	var P secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&d0, &P)
	P.ToAffine()

	var d secp256k1.ModNScalar
	d.Set(&d0)
	if P.Y.IsOdd() {
		d.Negate()
	}
	dBytes := d.Bytes()
	defer zeroArray32(&dBytes)

	if auxRand == nil {
		var drawn [32]byte
		if err := u.RandomBytes(drawn[:]); err != nil {
			return nil, secp256k1.Error{Err: secp256k1.ErrNoRandomSource, Description: err.Error()}
		}
		auxRand = drawn[:]
	}
	auxHash := taggedHash(u, "BIP0340/aux", auxRand)
	t := xorBytes32(dBytes, auxHash)

	pBytes := P.X.Bytes()
	nonceHash := taggedHash(u, "BIP0340/nonce", t[:], pBytes[:], msg)
	var k0 secp256k1.ModNScalar
	k0.SetByteSlice(nonceHash[:])
	if k0.IsZero() {
		return nil, makeError(ErrNonceIsZero, "BIP-340 nonce derivation produced a zero scalar")
	}

	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k0, &R)
	R.ToAffine()

	k := k0
	if R.Y.IsOdd() {
		k.Negate()
	}

	rBytes := R.X.Bytes()
	challengeHash := taggedHash(u, "BIP0340/challenge", rBytes[:], pBytes[:], msg)
	var e secp256k1.ModNScalar
	e.SetByteSlice(challengeHash[:])

	s := new(secp256k1.ModNScalar).Mul2(&e, &d).Add(&k)
	sig := NewSignature(&R.X, s)

	if !VerifyWithUtils(u, sig, msg, NewPublicKey(&P.X)) {
		return nil, makeError(ErrSchnorrSelfVerifyFailed,
			"freshly produced signature failed self-verification")
	}
	return sig, nil
}

// Verify reports whether sig is a valid BIP-340 Schnorr signature over msg
// for the given x-only public key.
func (sig *Signature) Verify(msg []byte, pubKey *PublicKey) bool {
	return VerifyWithUtils(secp256k1.DefaultUtils, sig, msg, pubKey)
}

// VerifyWithUtils is identical to Signature.Verify except the hashing
// primitive comes from the passed Utils rather than the package default.
func VerifyWithUtils(u *secp256k1.Utils, sig *Signature, msg []byte, pubKey *PublicKey) bool {
	P, err := pubKey.asJacobian()
	if err != nil {
		return false
	}

	rBytes := sig.r.Bytes()
	pBytes := P.X.Bytes()
	challengeHash := taggedHash(u, "BIP0340/challenge", rBytes[:], pBytes[:], msg)
	var e secp256k1.ModNScalar
	e.SetByteSlice(challengeHash[:])
	e.Negate()

	var sG, eP, R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&sig.s, &sG)
	secp256k1.ScalarMultNonConst(&e, &P, &eP)
	secp256k1.AddNonConst(&sG, &eP, &R)

	if (R.X.IsZero() && R.Y.IsZero()) || R.Z.IsZero() {
		return false
	}

	R.ToAffine()
	if R.Y.IsOdd() {
		return false
	}

	return R.X.Equals(&sig.r)
}

// PubKeyFromPrivate derives the BIP-340 x-only public key corresponding to
// privKey.
func PubKeyFromPrivate(privKey *secp256k1.PrivateKey) *PublicKey {
	var P secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&privKey.Key, &P)
	P.ToAffine()
	return NewPublicKey(&P.X)
}

func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}
