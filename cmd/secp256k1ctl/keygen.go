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

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new secp256k1 keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := secp256k1.GeneratePrivateKey()
			if err != nil {
				return fmt.Errorf("failed to generate private key: %w", err)
			}
			defer priv.Zero()

			pub := priv.PubKey()
			log.Info().Msg("generated new keypair")
			fmt.Printf("private: %s\n", hex.EncodeToString(priv.Serialize()))
			fmt.Printf("public (compressed):   %s\n", hex.EncodeToString(pub.SerializeCompressed()))
			fmt.Printf("public (uncompressed): %s\n", hex.EncodeToString(pub.SerializeUncompressed()))
			return nil
		},
	}
	return cmd
}
