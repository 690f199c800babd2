// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/rand"

	sha256simd "github.com/minio/sha256-simd"
)

// Utils bundles the hashing and randomness primitives that RFC 6979 nonce
// generation, BIP-340 tagged hashing, and private key generation need but
// never compute on their own — every caller injects them (directly, or via
// DefaultUtils) rather than this package reaching for crypto/sha256 or
// crypto/rand internally.  This lets a caller substitute a hardware RNG, a
// FIPS-validated hash implementation, or a deterministic stub for testing
// without this package needing to know about any of them.
type Utils struct {
	// SHA256 computes the SHA-256 digest of msg.
	SHA256 func(msg []byte) [32]byte

	// HMACSHA256 computes the HMAC-SHA256 of msg under key.
	HMACSHA256 func(key, msg []byte) [32]byte

	// RandomBytes fills buf with cryptographically secure random bytes,
	// returning an error if a sufficiently strong source is unavailable.
	RandomBytes func(buf []byte) error
}

// sha256Simd computes a SHA-256 digest using the accelerated sha256-simd
// implementation.
func sha256Simd(msg []byte) [32]byte {
	return sha256simd.Sum256(msg)
}

// hmacSha256Simd computes an HMAC-SHA256 using sha256-simd as the underlying
// hash.  The HMAC construction itself is the stdlib's crypto/hmac, since it
// is a thin, standard wrapper around any hash.Hash and the pack carries no
// dedicated HMAC library.
func hmacSha256Simd(key, msg []byte) [32]byte {
	mac := hmac.New(sha256simd.New, key)
	mac.Write(msg)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// cryptoRandBytes fills buf using crypto/rand.
func cryptoRandBytes(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// DefaultUtils is the package-wide default set of injected primitives, used
// by every exported function that accepts no explicit Utils of its own.
var DefaultUtils = &Utils{
	SHA256:      sha256Simd,
	HMACSHA256:  hmacSha256Simd,
	RandomBytes: cryptoRandBytes,
}

// zeroArray32 overwrites the contents of b with zeros.  It is used to scrub
// sensitive 32-byte buffers (private key bytes, nonce material) from memory
// as soon as they are no longer needed.
func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}
