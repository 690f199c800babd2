// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	secp256k1 "github.com/kedromelon/gosecp256k1"
)

// taggedHash implements the BIP-340 tagged hash construction:
//
//	SHA256(SHA256(tag) || SHA256(tag) || parts...)
//
// domain-separating otherwise-identical hash inputs across the three
// contexts ("BIP0340/aux", "BIP0340/nonce", "BIP0340/challenge") this package
// uses it for.  The SHA-256 primitive itself is never hardcoded; it always
// comes from the passed Utils so callers may override it exactly as they
// can for RFC 6979 nonce generation.
func taggedHash(u *secp256k1.Utils, tag string, parts ...[]byte) [32]byte {
	tagHash := u.SHA256([]byte(tag))

	msg := make([]byte, 0, 64+totalLen(parts))
	msg = append(msg, tagHash[:]...)
	msg = append(msg, tagHash[:]...)
	for _, p := range parts {
		msg = append(msg, p...)
	}
	return u.SHA256(msg)
}

func totalLen(parts [][]byte) int {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	return n
}
