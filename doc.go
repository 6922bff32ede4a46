// Package classical implements two classical keyed ciphers - a
// columnar transposition cipher and a monoalphabetic substitution
// cipher - together with the PKCS#7-style block padding the
// transposition cipher depends on.
//
// # Overview
//
// Both ciphers implement the Cipher interface, a uniform
// Encrypt/Decrypt contract over byte slices. The transposition cipher
// composes with a pluggable PaddingStrategy; PKCS7 is the provided
// implementation. Cipher instances hold only fixed configuration, so
// they are safe for concurrent use.
//
// # Basic Usage
//
//	padding, _ := classical.NewPadding(classical.PaddingPKCS7)
//	cipher, _ := classical.NewTranspositionCipher(padding)
//
//	encrypted, err := cipher.Encrypt([]byte("attack at dawn"), []byte("zebra"))
//	if err != nil {
//	    panic(err)
//	}
//
//	decrypted, err := cipher.Decrypt(encrypted, []byte("zebra"))
//	if err != nil {
//	    panic(err)
//	}
//
// Keys can be derived from a passphrase with PasswordKeyProvider,
// which produces transposition column keys of any length and true
// alphabet permutations for the substitution cipher. FileCrypter runs
// either cipher over whole files on any absfs filesystem.
//
// # Security Considerations
//
// These are pedagogical and legacy ciphers. Neither resists modern
// cryptanalysis: the transposition cipher leaks byte frequencies and
// the substitution cipher falls to simple frequency analysis. Do not
// use this package to protect real secrets; use an AEAD cipher from
// the standard crypto packages instead.
//
// # Errors
//
// All failures are deterministic input-validation errors: KeySizeError
// for unacceptable key lengths, ParameterError for empty data and
// out-of-range block lengths, PaddingError for malformed padding
// bytes, and ErrInvalidMessageLength for ciphertext that is not a
// multiple of the key length. Cipher operations wrap padding failures
// in CipherError without swallowing them, so errors.Is and errors.As
// reach the cause.
package classical
