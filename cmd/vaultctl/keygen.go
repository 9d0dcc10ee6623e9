package main

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultkit/xexstore/generator/randomness"
	"github.com/vaultkit/xexstore/keystate"
)

var keygenOut string

// keygenTag derives a short, non-secret decimal label an operator can read
// aloud or paste into a ticket to refer to "the key generated just now"
// without quoting the key material itself. It carries no relation to the
// key bytes beyond having been generated in the same process invocation.
func keygenTag() uint32 {
	r := rand.New(rand.NewSource(randomness.CryptoSeed()))
	return r.Uint32() % 1_000_000
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh 32-byte master key",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := randomness.Bytes(keystate.KeySize)
		if err != nil {
			return fmt.Errorf("vaultctl: unable to generate master key: %w", err)
		}

		encoded := hex.EncodeToString(raw)
		tag := keygenTag()

		if keygenOut != "" {
			if err := os.WriteFile(keygenOut, []byte(encoded+"\n"), 0o600); err != nil {
				return fmt.Errorf("vaultctl: unable to write key file %q: %w", keygenOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote key to %s (reference #%06d)\n", keygenOut, tag)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (reference #%06d)\n", encoded, tag)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenOut, "out", "", "write the hex-encoded key to this file instead of stdout")
}
