// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// GenerateSharedSecret derives the ECDH shared secret a*B for a private
// scalar a and a public point B, and returns it serialized as a public key
// per the compressed parameter.  Unlike RFC 5903's x-coordinate-only
// convention, the full point is returned so the caller can choose either
// serialization, matching the facade's getSharedSecret contract.
//
// It is recommended to securely hash the result before using it as a
// cryptographic key.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey, compressed bool) []byte {
	var point, result JacobianPoint
	pubkey.AsJacobian(&point)
	ScalarMultNonConst(&privkey.Key, &point, &result)
	result.ToAffine()

	secret := NewPublicKey(&result.X, &result.Y)
	if compressed {
		return secret.SerializeCompressed()
	}
	return secret.SerializeUncompressed()
}

// ECDH generates a compressed shared secret and is an alias to
// GenerateSharedSecret, however by being part of the private key it is closer
// to go's own ecdh api.
func (privkey *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	return GenerateSharedSecret(privkey, remote, true), nil
}
