// Command vaultctl is a diagnostics CLI over a file-backed encrypted
// storage image. It provisions or derives the master key, drives the
// encrypted read/write adapter against the image, and dumps raw versus
// decrypted block contents for manual QA. It is a development and testing
// convenience only — no part of vaultctl is on the security boundary the
// rest of this module implements.
package main

func main() {
	Execute()
}
