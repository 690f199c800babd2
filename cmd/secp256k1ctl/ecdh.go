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

func newECDHCmd() *cobra.Command {
	var (
		privKeyHex string
		pubKeyHex  string
	)

	cmd := &cobra.Command{
		Use:   "ecdh",
		Short: "Derive a shared secret from a private key and a remote public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			privBytes, err := hex.DecodeString(privKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --priv-key hex: %w", err)
			}
			priv := secp256k1.PrivKeyFromBytes(privBytes)
			defer priv.Zero()

			pubBytes, err := hex.DecodeString(pubKeyHex)
			if err != nil {
				return fmt.Errorf("invalid --pub-key hex: %w", err)
			}
			remote, err := secp256k1.ParsePubKey(pubBytes)
			if err != nil {
				return fmt.Errorf("failed to parse public key: %w", err)
			}

			secret, err := priv.ECDH(remote)
			if err != nil {
				return fmt.Errorf("failed to derive shared secret: %w", err)
			}

			log.Info().Msg("derived shared secret")
			fmt.Println(hex.EncodeToString(secret))
			return nil
		},
	}

	cmd.Flags().StringVar(&privKeyHex, "priv-key", "", "hex-encoded private key (required)")
	cmd.Flags().StringVar(&pubKeyHex, "pub-key", "", "hex-encoded remote public key, compressed or uncompressed (required)")
	_ = cmd.MarkFlagRequired("priv-key")
	_ = cmd.MarkFlagRequired("pub-key")
	return cmd
}
