// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// This implements the deterministic nonce generation scheme described in
// RFC 6979 section 3.2, specialized to HMAC-SHA256 as the underlying PRF
// and to this package's curve order N as the output range.  The HMAC-SHA256
// primitive itself always comes from the injected Utils (see utils.go)
// rather than a hardcoded hash.Hash, so callers may substitute their own
// implementation.

// bits2octets converts the passed hash value, which is assumed to already be
// the correct bit length for the curve order, into the fixed-length byte
// encoding RFC 6979 section 2.3.4 requires: the hash is first reduced modulo
// N (bits2int followed by mod q), then re-encoded as a fixed-length
// big-endian byte string of the same length as N.
func bits2octets(hash []byte) []byte {
	var reduced ModNScalar
	reduced.SetByteSlice(hash)
	b := reduced.Bytes()
	return b[:]
}

// int2octets encodes the passed 32-byte scalar value as a fixed-length
// big-endian byte string per RFC 6979 section 2.3.3.  For this curve, the
// private key is already 32 bytes, so this is the identity.
func int2octets(privKey []byte) []byte {
	var padded [32]byte
	copy(padded[32-len(privKey):], privKey)
	return padded[:]
}

// NonceRFC6979 generates a deterministic ECDSA nonce per RFC 6979 for the
// given private key and message hash, using extraData and version as
// additional domain-separating input appended to the initial seed per
// sections 3.6 and 3.2 respectively (either may be nil).  extraIterations
// requests the (extraIterations+1)-th candidate in the deterministic stream
// rather than the first, which is how callers retry after an unusable nonce
// (k producing r=0 or s=0) without losing determinism.
func NonceRFC6979(privKey, hash, extraData, version []byte, extraIterations uint32) *ModNScalar {
	return nonceRFC6979(DefaultUtils, privKey, hash, extraData, version, extraIterations)
}

func nonceRFC6979(u *Utils, privKey, hash, extraData, version []byte, extraIterations uint32) *ModNScalar {
	// Step (a)/(b): h1 is the message hash, already assumed to be the
	// curve-order-sized digest the caller wants signed; bits2octets reduces
	// and re-encodes it as required by the RFC.
	// A private key longer than 32 bytes is truncated to its first 32 bytes.
	if len(privKey) > 32 {
		privKey = privKey[:32]
	}
	h1 := bits2octets(hash)
	key := int2octets(privKey)

	seedMaterial := make([]byte, 0, len(key)+len(h1)+len(extraData)+len(version))
	seedMaterial = append(seedMaterial, key...)
	seedMaterial = append(seedMaterial, h1...)
	seedMaterial = append(seedMaterial, extraData...)
	seedMaterial = append(seedMaterial, version...)

	// Step (b): V = 0x01 0x01 ... 0x01
	var v [32]byte
	for i := range v {
		v[i] = 0x01
	}

	// Step (c): K = 0x00 0x00 ... 0x00
	var k [32]byte

	// Step (d): K = HMAC_K(V || 0x00 || seedMaterial)
	msg := append(append([]byte{}, v[:]...), 0x00)
	msg = append(msg, seedMaterial...)
	k = u.HMACSHA256(k[:], msg)

	// Step (e): V = HMAC_K(V)
	v = u.HMACSHA256(k[:], v[:])

	// Step (f): K = HMAC_K(V || 0x01 || seedMaterial)
	msg = append(append([]byte{}, v[:]...), 0x01)
	msg = append(msg, seedMaterial...)
	k = u.HMACSHA256(k[:], msg)

	// Step (g): V = HMAC_K(V)
	v = u.HMACSHA256(k[:], v[:])

	// Step (h): generate candidates, each time checking the candidate falls
	// in [1, N-1], until extraIterations further valid candidates beyond the
	// first have been produced and discarded.
	generated := uint32(0)
	for {
		v = u.HMACSHA256(k[:], v[:])

		var candidate ModNScalar
		overflow := candidate.SetByteSlice(v[:])
		if !overflow && !candidate.IsZero() {
			if generated == extraIterations {
				return &candidate
			}
			generated++
		}

		// Candidate was zero, overflowed N, or was an already-consumed
		// retry; update K and V and try again per RFC 6979 section 3.2
		// step (h.3).
		k = u.HMACSHA256(k[:], append(append([]byte{}, v[:]...), 0x00))
		v = u.HMACSHA256(k[:], v[:])
	}
}
