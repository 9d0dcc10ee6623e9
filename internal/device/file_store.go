package device

import (
	"fmt"
	"os"

	"github.com/vaultkit/xexstore/log"
	"github.com/vaultkit/xexstore/storage"
)

// FileStore implements storage.RawStore over a plain os.File: the on-disk
// byte layout is exactly what the adapter writes through it, at the same
// offsets. There is no header, no metadata, no wear leveling — it exists so
// vaultctl can drive the encrypted storage adapter against a real file
// instead of an in-memory storage.RawStore.
type FileStore struct {
	file   *os.File
	size   int64
	cfg    FileStoreConfig
	logger log.Logger
}

var _ storage.RawStore = (*FileStore)(nil)

// OpenFileStore opens (creating if necessary) the image file at path,
// preallocating it to cfg.PreallocateBytes when it is newly created.
func OpenFileStore(path string, cfg FileStoreConfig) (*FileStore, error) {
	logger := log.Component("device.FileStore").Field("path", path)

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("device: unable to open image file %q: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("device: unable to stat image file %q: %w", path, err)
	}

	size := info.Size()
	if size == 0 {
		size = cfg.PreallocateBytes
		if err := file.Truncate(size); err != nil {
			file.Close()
			return nil, fmt.Errorf("device: unable to preallocate image file %q to %d bytes: %w", path, size, err)
		}
		logger.Level(log.InfoLevel).Messagef("created new %d-byte image at %s", size, path)
	}

	return &FileStore{file: file, size: size, cfg: cfg, logger: logger}, nil
}

// Close closes the backing file.
func (f *FileStore) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("device: unable to close image file: %w", err)
	}
	return nil
}

func (f *FileStore) bounds(n int, address uint32) error {
	end := int64(address) + int64(n)
	if end > f.size {
		return fmt.Errorf("device: access [%d, %d) exceeds image size %d", address, end, f.size)
	}
	return nil
}

// Read fills buf from the image file starting at address.
func (f *FileStore) Read(buf []byte, address uint32) error {
	if err := f.bounds(len(buf), address); err != nil {
		return err
	}
	if _, err := f.file.ReadAt(buf, int64(address)); err != nil {
		return fmt.Errorf("device: read at offset %d failed: %w", address, err)
	}
	return nil
}

// Write stores buf into the image file starting at address.
func (f *FileStore) Write(buf []byte, address uint32) error {
	if err := f.bounds(len(buf), address); err != nil {
		return err
	}
	if _, err := f.file.WriteAt(buf, int64(address)); err != nil {
		return fmt.Errorf("device: write at offset %d failed: %w", address, err)
	}
	if f.cfg.SyncOnWrite {
		if err := f.file.Sync(); err != nil {
			return fmt.Errorf("device: sync after write at offset %d failed: %w", address, err)
		}
	}
	return nil
}

// Flush fsyncs the backing file.
func (f *FileStore) Flush() error {
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("device: flush failed: %w", err)
	}
	return nil
}

// Size returns the image file's total addressable size in bytes.
func (f *FileStore) Size() int64 {
	return f.size
}
