// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kedromelon/gosecp256k1"
	"github.com/kedromelon/gosecp256k1/schnorr"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSchnorrSignCmd() *cobra.Command {
	var (
		privKeyHex string
		message    string
		auxRandHex string
	)

	cmd := &cobra.Command{
		Use:   "schnorr-sign",
		Short: "Sign a message with a BIP-340 Schnorr signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			privBytes, err := hex.DecodeString(privKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --priv-key hex: %w", err)
			}
			priv := secp256k1.PrivKeyFromBytes(privBytes)
			defer priv.Zero()

			var auxRand []byte
			if auxRandHex != "" {
				auxRand, err = hex.DecodeString(auxRandHex)
				if err != nil {
					return fmt.Errorf("invalid --aux-rand hex: %w", err)
				}
			}

			hash := secp256k1.DefaultUtils.SHA256([]byte(message))
			sig, err := schnorr.Sign(priv, hash[:], auxRand)
			if err != nil {
				return fmt.Errorf("failed to sign: %w", err)
			}

			log.Info().Msg("signed message (BIP-340 Schnorr)")
			fmt.Println(hex.EncodeToString(sig.Serialize()))
			return nil
		},
	}

	cmd.Flags().StringVar(&privKeyHex, "priv-key", "", "hex-encoded private key (required)")
	cmd.Flags().StringVar(&message, "message", "", "message to sign (required)")
	cmd.Flags().StringVar(&auxRandHex, "aux-rand", "", "hex-encoded 32-byte auxiliary randomness (optional, defaults to the package CSPRNG)")
	_ = cmd.MarkFlagRequired("priv-key")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newSchnorrVerifyCmd() *cobra.Command {
	var (
		pubKeyHex string
		message   string
		sigHex    string
	)

	cmd := &cobra.Command{
		Use:   "schnorr-verify",
		Short: "Verify a BIP-340 Schnorr signature against a message and x-only public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := hex.DecodeString(pubKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --pub-key hex: %w", err)
			}
			pubKey, err := schnorr.ParsePubKey(pubBytes)
			if err != nil {
				return fmt.Errorf("failed to parse public key: %w", err)
			}

			sigBytes, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("invalid --sig hex: %w", err)
			}
			sig, err := schnorr.ParseSignature(sigBytes)
			if err != nil {
				return fmt.Errorf("failed to parse signature: %w", err)
			}

			hash := secp256k1.DefaultUtils.SHA256([]byte(message))
			valid := sig.Verify(hash[:], pubKey)
			log.Info().Bool("valid", valid).Msg("verified Schnorr signature")
			if !valid {
				return fmt.Errorf("signature is invalid")
			}
			fmt.Println("valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&pubKeyHex, "pub-key", "", "hex-encoded 32-byte x-only public key (required)")
	cmd.Flags().StringVar(&message, "message", "", "message that was signed (required)")
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex-encoded 64-byte signature (required)")
	_ = cmd.MarkFlagRequired("pub-key")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
