// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// secp256k1ctl is an operator CLI around the secp256k1 facade: key
// generation, ECDSA sign/verify/recover, BIP-340 Schnorr sign/verify, and
// ECDH shared-secret derivation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
	pretty   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secp256k1ctl",
		Short: "secp256k1ctl operates keys and signatures on the secp256k1 curve",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			initLog()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.secp256k1ctl.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&pretty, "pretty-log", false, "enable unstructured prettified logging")
	_ = viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("pretty-log", cmd.PersistentFlags().Lookup("pretty-log"))

	cmd.AddCommand(
		newKeygenCmd(),
		newSignCmd(),
		newVerifyCmd(),
		newRecoverCmd(),
		newSchnorrSignCmd(),
		newSchnorrVerifyCmd(),
		newECDHCmd(),
	)
	return cmd
}

// initConfig wires viper to an optional config file plus SECP256K1CTL_-
// prefixed environment variables, so persistent flags, env vars, and a
// config file all resolve through a single precedence order.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".secp256k1ctl")
	}

	viper.SetEnvPrefix("SECP256K1CTL")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "failed to read config: %v\n", err)
		}
	}

	if viper.IsSet("log-level") {
		logLevel = viper.GetString("log-level")
	}
	if viper.IsSet("pretty-log") {
		pretty = viper.GetBool("pretty-log")
	}
}

func initLog() {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", logLevel)
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(out).With().Timestamp().Str("service", "secp256k1ctl").Logger()
}
