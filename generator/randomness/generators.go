// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package randomness provides CSPRNG-backed byte generation used to
// provision fresh master keys and to produce reproducible pseudo-random
// fill content for storage adapter property tests.
package randomness

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Bytes generates a new byte slice of the given size read from crypto/rand.
//
// Used by the vaultctl keygen command to provision a fresh 32-byte master
// key blob (encrypt_key || tweak_key).
func Bytes(size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("error generating bytes: %w", err)
	}
	return buf, nil
}
