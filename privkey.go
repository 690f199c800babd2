// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// PrivateKey provides facilities for working with secp256k1 private keys within
// this package and includes functionality such as serializing and parsing them
// as well as computing their associated public key.
type PrivateKey struct {
	Key ModNScalar
}

// NewPrivateKey instantiates a new private key from the passed scalar.
func NewPrivateKey(key *ModNScalar) *PrivateKey {
	return &PrivateKey{Key: *key}
}

// PrivKeyFromBytes returns a private based on the provided byte slice which is
// interpreted as an unsigned 256-bit big-endian integer in the range [0, N-1],
// where N is the order of the curve.
//
// Note that this means passing a slice with more than 32 bytes is truncated and
// that truncated value is reduced modulo N.  It is up to the caller to either
// provide a value in the appropriate range or choose to accept the described
// behavior.
//
// Typically callers should simply make use of GeneratePrivateKey when creating
// private keys which properly handles generation of appropriate values.
func PrivKeyFromBytes(privKeyBytes []byte) *PrivateKey {
	var d ModNScalar
	d.SetByteSlice(privKeyBytes)
	return NewPrivateKey(&d)
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1 using the byte source configured on DefaultUtils (crypto/rand by
// default; see utils.go).  A freshly drawn candidate that is zero or does not
// reduce to a nonzero scalar is vanishingly unlikely, but is rejected and
// redrawn up to privateKeyGenMaxAttempts times rather than silently returning
// a degenerate key.
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFromUtils(DefaultUtils)
}

// privateKeyGenMaxAttempts bounds the number of redraws GeneratePrivateKey
// will perform before giving up.
const privateKeyGenMaxAttempts = 16

// GeneratePrivateKeyFromUtils is identical to GeneratePrivateKey except the
// randomness and hashing used come from the passed Utils rather than the
// package default, allowing callers to inject a deterministic or hardware
// source for testing or HSM-backed deployments.
func GeneratePrivateKeyFromUtils(u *Utils) (*PrivateKey, error) {
	for attempt := 0; attempt < privateKeyGenMaxAttempts; attempt++ {
		var buf [PrivKeyBytesLen]byte
		if err := u.RandomBytes(buf[:]); err != nil {
			return nil, makeError(ErrNoRandomSource, err.Error())
		}

		var d ModNScalar
		overflow := d.SetByteSlice(buf[:])
		zeroArray32(&buf)
		if overflow || d.IsZero() {
			continue
		}
		return NewPrivateKey(&d), nil
	}
	return nil, makeError(ErrPrivateKeyGenExhausted,
		"exhausted attempts to generate a private key in range")
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	var result JacobianPoint
	ScalarBaseMultNonConst(&p.Key, &result)
	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y)
}

// Sign generates an ECDSA signature for the provided hash (which should be the
// result of hashing a larger message) using the private key. With no opts, the
// produced signature is deterministic (same message and same key yield the
// same signature) and canonical in accordance with RFC6979 and BIP0062; see
// SignOpts to opt out of either.
func (p *PrivateKey) Sign(hash []byte, opts ...SignOpts) *Signature {
	o := DefaultSignOpts()
	if len(opts) > 0 {
		o = opts[0]
	}
	return signRFC6979(p, hash, o)
}

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p PrivateKey) Serialize() []byte {
	privKeyBytes := p.Key.Bytes()
	return privKeyBytes[:]
}

// Zero manually clears the memory associated with the private key, making the
// key unusable afterwards.  This is intended to be used to explicitly clear
// key material from memory for enhanced security against memory scraping.
func (p *PrivateKey) Zero() {
	p.Key.Zero()
}
