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

func newRecoverCmd() *cobra.Command {
	var (
		message string
		sigHex  string
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover the public key from a compact ECDSA signature and message",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigBytes, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("invalid --sig hex: %w", err)
			}

			hash := secp256k1.DefaultUtils.SHA256([]byte(message))

			pubKey, wasCompressed, err := secp256k1.RecoverCompact(sigBytes, hash[:])
			if err != nil {
				return fmt.Errorf("failed to recover public key: %w", err)
			}

			log.Info().Bool("was_compressed", wasCompressed).Msg("recovered public key")
			if wasCompressed {
				fmt.Println(hex.EncodeToString(pubKey.SerializeCompressed()))
			} else {
				fmt.Println(hex.EncodeToString(pubKey.SerializeUncompressed()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "message that was signed (required)")
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex-encoded compact signature (required)")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
