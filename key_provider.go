package classical

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// HashFunc represents hash function types for PBKDF2
type HashFunc uint8

const (
	// SHA256 hash function
	SHA256 HashFunc = iota
	// SHA512 hash function
	SHA512
)

// PBKDF2Params contains parameters for PBKDF2 key derivation
type PBKDF2Params struct {
	Iterations int      // Number of iterations (minimum 100,000 recommended)
	HashFunc   HashFunc // Hash function to use
	SaltSize   int      // Salt size in bytes (default 32)
	KeySize    int      // Derived master key size in bytes (default 32)
}

// Argon2idParams contains parameters for Argon2id key derivation
type Argon2idParams struct {
	Memory      uint32 // Memory in KiB (e.g., 64*1024 for 64MB)
	Iterations  uint32 // Number of iterations (time parameter)
	Parallelism uint8  // Degree of parallelism
	SaltSize    int    // Salt size in bytes (default 32)
	KeySize     int    // Derived master key size in bytes (default 32)
}

// KeyProvider supplies cipher keys derived from some secret.
type KeyProvider interface {
	// DeriveKey derives a master key from the given salt
	DeriveKey(salt []byte) ([]byte, error)

	// GenerateSalt generates a new random salt
	GenerateSalt() ([]byte, error)
}

// PasswordKeyProvider implements KeyProvider using password-based key
// derivation. Beyond the raw master key it can derive ready-to-use
// cipher keys: a column key of any length for the transposition
// cipher, and a true alphabet permutation for the substitution cipher.
// All derivations are deterministic for a given (password, salt,
// params) triple, so both ends of a conversation can reproduce the
// same key.
type PasswordKeyProvider struct {
	password     []byte
	useArgon2id  bool
	pbkdf2Params PBKDF2Params
	argon2Params Argon2idParams
}

// NewPasswordKeyProviderPBKDF2 creates a new password-based key provider using PBKDF2
func NewPasswordKeyProviderPBKDF2(password []byte, params PBKDF2Params) *PasswordKeyProvider {
	// Set defaults
	if params.Iterations == 0 {
		params.Iterations = 100000
	}
	if params.SaltSize == 0 {
		params.SaltSize = 32
	}
	if params.KeySize == 0 {
		params.KeySize = 32
	}

	return &PasswordKeyProvider{
		password:     password,
		useArgon2id:  false,
		pbkdf2Params: params,
	}
}

// NewPasswordKeyProvider creates a new password-based key provider using Argon2id (recommended)
func NewPasswordKeyProvider(password []byte, params Argon2idParams) *PasswordKeyProvider {
	// Set defaults
	if params.Memory == 0 {
		params.Memory = 64 * 1024 // 64 MB
	}
	if params.Iterations == 0 {
		params.Iterations = 3
	}
	if params.Parallelism == 0 {
		params.Parallelism = 4
	}
	if params.SaltSize == 0 {
		params.SaltSize = 32
	}
	if params.KeySize == 0 {
		params.KeySize = 32
	}

	return &PasswordKeyProvider{
		password:     password,
		useArgon2id:  true,
		argon2Params: params,
	}
}

// DeriveKey derives a master key from the password and salt
func (p *PasswordKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	if len(p.password) == 0 {
		return nil, &ParameterError{Field: "password", Message: "password cannot be empty"}
	}
	if len(salt) == 0 {
		return nil, &ParameterError{Field: "salt", Message: "salt cannot be empty"}
	}

	if p.useArgon2id {
		key := argon2.IDKey(
			p.password,
			salt,
			p.argon2Params.Iterations,
			p.argon2Params.Memory,
			p.argon2Params.Parallelism,
			uint32(p.argon2Params.KeySize),
		)
		return key, nil
	}

	var hashFunc func() hash.Hash
	switch p.pbkdf2Params.HashFunc {
	case SHA256:
		hashFunc = sha256.New
	case SHA512:
		hashFunc = sha512.New
	default:
		return nil, &ParameterError{
			Field:   "hashFunc",
			Value:   p.pbkdf2Params.HashFunc,
			Message: "unsupported hash function",
		}
	}

	key := pbkdf2.Key(
		p.password,
		salt,
		p.pbkdf2Params.Iterations,
		p.pbkdf2Params.KeySize,
		hashFunc,
	)
	return key, nil
}

// GenerateSalt generates a new random salt
func (p *PasswordKeyProvider) GenerateSalt() ([]byte, error) {
	var saltSize int
	if p.useArgon2id {
		saltSize = p.argon2Params.SaltSize
	} else {
		saltSize = p.pbkdf2Params.SaltSize
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveTranspositionKey derives a column key of the given length for
// the transposition cipher. The length is capped at 255 because it
// doubles as the padding block length.
func (p *PasswordKeyProvider) DeriveTranspositionKey(salt []byte, length int) ([]byte, error) {
	if length <= 0 || length > 255 {
		return nil, &ParameterError{
			Field:   "length",
			Value:   length,
			Message: "key length must be greater than 0 and smaller than 256",
		}
	}

	stream, err := p.expand(salt, "transposition key")
	if err != nil {
		return nil, err
	}

	key := make([]byte, length)
	if _, err := io.ReadFull(stream, key); err != nil {
		return nil, fmt.Errorf("failed to expand key material: %w", err)
	}
	return key, nil
}

// DeriveSubstitutionKey derives a true permutation of the substitution
// alphabet by running a Fisher-Yates shuffle over it, drawing indices
// from an HKDF stream bound to the master key.
func (p *PasswordKeyProvider) DeriveSubstitutionKey(salt []byte) ([]byte, error) {
	stream, err := p.expand(salt, "substitution key")
	if err != nil {
		return nil, err
	}

	key := NewSubstitutionCipher().Alphabet()
	var buf [4]byte
	for i := len(key) - 1; i > 0; i-- {
		if _, err := io.ReadFull(stream, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to expand key material: %w", err)
		}
		j := int(binary.BigEndian.Uint32(buf[:]) % uint32(i+1))
		key[i], key[j] = key[j], key[i]
	}
	return key, nil
}

// expand derives the master key for salt and returns an HKDF stream
// separated by the given purpose label, so the transposition and
// substitution keys never share bytes.
func (p *PasswordKeyProvider) expand(salt []byte, purpose string) (io.Reader, error) {
	master, err := p.DeriveKey(salt)
	if err != nil {
		return nil, err
	}
	return hkdf.New(sha256.New, master, salt, []byte(purpose)), nil
}
