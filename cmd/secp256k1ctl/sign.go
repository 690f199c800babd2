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

func newSignCmd() *cobra.Command {
	var (
		privKeyHex   string
		message      string
		compact      bool
		canonical    bool
		extraEntropy string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with ECDSA, producing a DER or compact signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			privBytes, err := hex.DecodeString(privKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --priv-key hex: %w", err)
			}
			priv := secp256k1.PrivKeyFromBytes(privBytes)
			defer priv.Zero()

			hash := secp256k1.DefaultUtils.SHA256([]byte(message))

			opts := secp256k1.DefaultSignOpts()
			opts.Canonical = canonical
			if extraEntropy != "" {
				entropy, err := hex.DecodeString(extraEntropy)
				if err != nil {
					return fmt.Errorf("invalid --extra-entropy hex: %w", err)
				}
				opts.ExtraEntropy = entropy
			}

			if compact {
				sig := secp256k1.SignCompact(priv, hash[:], true, opts)
				log.Info().Msg("signed message (compact)")
				fmt.Println(hex.EncodeToString(sig))
				return nil
			}

			sig := secp256k1.Sign(priv, hash[:], opts)
			log.Info().Msg("signed message (DER)")
			fmt.Println(hex.EncodeToString(sig.Serialize()))
			return nil
		},
	}

	cmd.Flags().StringVar(&privKeyHex, "priv-key", "", "hex-encoded private key (required)")
	cmd.Flags().StringVar(&message, "message", "", "message to sign (required)")
	cmd.Flags().BoolVar(&compact, "compact", false, "produce a compact (recoverable) signature instead of DER")
	cmd.Flags().BoolVar(&canonical, "canonical", true, "normalize the S component of the in-memory signature to the group's low-order half (BIP0062); the printed DER and compact encodings are low-S either way")
	cmd.Flags().StringVar(&extraEntropy, "extra-entropy", "", "hex-encoded extra entropy to mix into the RFC 6979 nonce")
	_ = cmd.MarkFlagRequired("priv-key")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
