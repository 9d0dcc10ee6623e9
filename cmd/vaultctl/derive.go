package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultkit/xexstore/keystate"
)

var (
	deriveSeedHex string
	deriveSaltHex string
	deriveInfo    string
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a 32-byte master key from a wallet seed via HKDF-SHA256",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := hex.DecodeString(deriveSeedHex)
		if err != nil {
			return fmt.Errorf("vaultctl: --seed is not valid hex: %w", err)
		}

		var salt []byte
		if deriveSaltHex != "" {
			salt, err = hex.DecodeString(deriveSaltHex)
			if err != nil {
				return fmt.Errorf("vaultctl: --salt is not valid hex: %w", err)
			}
		}

		key, err := keystate.DeriveMasterKey(seed, salt, []byte(deriveInfo))
		if err != nil {
			return fmt.Errorf("vaultctl: unable to derive master key: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key[:]))
		return nil
	},
}

func init() {
	deriveCmd.Flags().StringVar(&deriveSeedHex, "seed", "", "wallet seed material, hex encoded (required)")
	deriveCmd.Flags().StringVar(&deriveSaltHex, "salt", "", "HKDF salt, hex encoded (optional)")
	deriveCmd.Flags().StringVar(&deriveInfo, "info", "xexstore-master-key-v1", "HKDF info/context string")
	deriveCmd.MarkFlagRequired("seed")
}
