package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultkit/xexstore/storage"
)

var (
	rwAddress uint32
	rwDataHex string
	rwLength  int
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Encrypted-write hex-encoded data to the image at an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKeyFromFlag(); err != nil {
			return err
		}

		fs, err := openImage()
		if err != nil {
			return err
		}
		defer fs.Close()

		data, err := hex.DecodeString(rwDataHex)
		if err != nil {
			return fmt.Errorf("vaultctl: --data is not valid hex: %w", err)
		}

		if err := storage.EncryptedWrite(data, rwAddress); err != nil {
			return fmt.Errorf("vaultctl: encrypted write failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes at address %d\n", len(data), rwAddress)
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Encrypted-read length bytes from the image at an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadKeyFromFlag(); err != nil {
			return err
		}

		fs, err := openImage()
		if err != nil {
			return err
		}
		defer fs.Close()

		buf := make([]byte, rwLength)
		if err := storage.EncryptedRead(buf, rwAddress); err != nil {
			return fmt.Errorf("vaultctl: encrypted read failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
		return nil
	},
}

func init() {
	writeCmd.Flags().Uint32Var(&rwAddress, "address", 0, "byte address to write at")
	writeCmd.Flags().StringVar(&rwDataHex, "data", "", "hex-encoded bytes to write (required)")
	writeCmd.MarkFlagRequired("data")

	readCmd.Flags().Uint32Var(&rwAddress, "address", 0, "byte address to read from")
	readCmd.Flags().IntVar(&rwLength, "length", 16, "number of bytes to read")
}
