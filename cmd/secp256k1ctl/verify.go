// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kedromelon/gosecp256k1"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		pubKeyHex string
		message   string
		sigHex    string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an ECDSA signature (DER or compact) against a message and public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := hex.DecodeString(pubKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --pub-key hex: %w", err)
			}
			pubKey, err := secp256k1.ParsePubKey(pubBytes)
			if err != nil {
				return fmt.Errorf("failed to parse public key: %w", err)
			}

			sigBytes, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("invalid --sig hex: %w", err)
			}

			hash := secp256k1.DefaultUtils.SHA256([]byte(message))

			var sig *secp256k1.Signature
			if len(sigBytes) == 65 {
				sig, _, err = secp256k1.ParseCompactSignature(sigBytes)
				if err != nil {
					return fmt.Errorf("failed to parse compact signature: %w", err)
				}
			} else {
				sig, err = secp256k1.ParseDERSignature(sigBytes)
				if err != nil {
					return fmt.Errorf("failed to parse DER signature: %w", err)
				}
			}

			valid := sig.Verify(hash[:], pubKey, strict)
			log.Info().Bool("valid", valid).Bool("strict", strict).Msg("verified signature")
			if !valid {
				return fmt.Errorf("signature is invalid")
			}
			fmt.Println("valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&pubKeyHex, "pub-key", "", "hex-encoded public key, compressed or uncompressed (required)")
	cmd.Flags().StringVar(&message, "message", "", "message that was signed (required)")
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex-encoded signature, DER or compact (required)")
	cmd.Flags().BoolVar(&strict, "strict", true, "reject signatures whose S component is over the group's half order")
	_ = cmd.MarkFlagRequired("pub-key")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
