// Package device provides FileStore, a file-backed storage.RawStore that
// stands in for the wallet's hardware EEPROM/flash driver during
// development and testing. It is a convenience only: no wear leveling, no
// crash-safety, no write barrier beyond what the OS file system itself
// provides.
package device
