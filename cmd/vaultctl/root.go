package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultkit/xexstore/internal/device"
	"github.com/vaultkit/xexstore/keystate"
	"github.com/vaultkit/xexstore/log"
	"github.com/vaultkit/xexstore/storage"
)

var (
	imagePath string
	keyHex    string
)

var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "Inspect and drive an xexstore encrypted block image",
	Long: `vaultctl is a development CLI over the encrypted storage adapter:
it provisions or derives a master key, performs encrypted reads and writes
against a file-backed image, and dumps raw versus decrypted block contents
for manual QA.`,
	Version: "0.1.0-dev",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&imagePath, "image", "", "path to the backing image file")
	rootCmd.PersistentFlags().StringVar(&keyHex, "key-hex", "", "32-byte master key, hex encoded (encrypt_key||tweak_key)")

	rootCmd.AddCommand(keygenCmd, deriveCmd, writeCmd, readCmd, inspectCmd)
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openImage opens --image using the Viper-backed FileStoreConfig and wires
// it as the package-level default storage adapter. Call from any subcommand
// that reads or writes through the encrypted adapter.
func openImage() (*device.FileStore, error) {
	if imagePath == "" {
		return nil, fmt.Errorf("vaultctl: --image is required")
	}

	cfg, err := device.LoadFileStoreConfig()
	if err != nil {
		return nil, err
	}

	fs, err := device.OpenFileStore(imagePath, *cfg)
	if err != nil {
		return nil, err
	}

	storage.UseStore(fs)
	return fs, nil
}

// loadKeyFromFlag decodes --key-hex and installs it on the package-level
// default keystate, when provided.
func loadKeyFromFlag() error {
	if keyHex == "" {
		return nil
	}

	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("vaultctl: --key-hex is not valid hex: %w", err)
	}
	if len(raw) != keystate.KeySize {
		return fmt.Errorf("vaultctl: --key-hex must decode to exactly %d bytes, got %d", keystate.KeySize, len(raw))
	}

	var blob [keystate.KeySize]byte
	copy(blob[:], raw)
	keystate.SetKey(blob)

	log.Component("vaultctl").Level(log.DebugLevel).Message("master key installed from --key-hex")
	return nil
}
