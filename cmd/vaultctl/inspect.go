package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultkit/xexstore/keystate"
	"github.com/vaultkit/xexstore/storage"
)

var (
	inspectAddress uint32
	inspectBlocks  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report key-installed status and dump raw vs. decrypted block contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKeyFromFlag(); err != nil {
			return err
		}

		nonzero, err := keystate.IsKeyNonzero()
		if err != nil {
			return fmt.Errorf("vaultctl: unable to check key state: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "key installed: %v\n", nonzero)

		if imagePath == "" {
			return nil
		}

		fs, err := openImage()
		if err != nil {
			return err
		}
		defer fs.Close()

		for i := 0; i < inspectBlocks; i++ {
			address := inspectAddress + uint32(i*storage.BlockSize)

			raw := make([]byte, storage.BlockSize)
			if err := fs.Read(raw, address); err != nil {
				return fmt.Errorf("vaultctl: raw read at block %d failed: %w", address, err)
			}

			decrypted := make([]byte, storage.BlockSize)
			decryptErr := storage.EncryptedRead(decrypted, address)

			if decryptErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "block %d: raw=%s decrypted=<error: %v>\n",
					address, hex.EncodeToString(raw), decryptErr)
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "block %d: raw=%s decrypted=%s\n",
				address, hex.EncodeToString(raw), hex.EncodeToString(decrypted))
		}

		return nil
	},
}

func init() {
	inspectCmd.Flags().Uint32Var(&inspectAddress, "address", 0, "starting byte address of the first block to dump")
	inspectCmd.Flags().IntVar(&inspectBlocks, "blocks", 4, "number of consecutive blocks to dump")
}
