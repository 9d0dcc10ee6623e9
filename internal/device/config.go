package device

import (
	"fmt"

	"github.com/spf13/viper"
)

// FileStoreConfig holds FileStore's defaults, loaded via Viper so the CLI
// and integration tests can override them from a config file or environment
// variables without threading a dozen parameters through constructors.
type FileStoreConfig struct {
	// BlockSize is loaded with the other settings (default 16, matching
	// storage.BlockSize). FileStore does not read it: the image file is
	// sized by PreallocateBytes and the adapter always uses storage.BlockSize.
	BlockSize int `mapstructure:"block_size"`
	// PreallocateBytes is how large a freshly created image file is, when
	// the caller does not specify a size explicitly.
	PreallocateBytes int64 `mapstructure:"preallocate_bytes"`
	// SyncOnWrite calls File.Sync after every Write when true; off by
	// default since the adapter's own read-modify-write loop already does
	// one Write syscall per touched block and the spec defines no
	// durability barrier within a single call.
	SyncOnWrite bool `mapstructure:"sync_on_write"`
}

// LoadFileStoreConfig loads FileStoreConfig using Viper: a config file
// named vaultctl-config in the current directory, ./config, or
// $HOME/.vaultctl, plus VAULTCTL_-prefixed environment variables, layered
// over documented defaults.
func LoadFileStoreConfig() (*FileStoreConfig, error) {
	viper.SetConfigName("vaultctl-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.vaultctl")

	viper.SetDefault("block_size", 16)
	viper.SetDefault("preallocate_bytes", int64(1<<20)) // 1 MiB default image
	viper.SetDefault("sync_on_write", false)

	viper.SetEnvPrefix("VAULTCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("device: error reading config file: %w", err)
		}
	}

	var cfg FileStoreConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("device: error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
