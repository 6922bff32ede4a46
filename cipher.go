package classical

// Cipher is the uniform operation contract all cipher variants
// implement. Implementations borrow the plaintext and key only for
// the duration of a call, allocate fresh output buffers and retain
// nothing, so a single instance is safe for concurrent use.
type Cipher interface {
	// Encrypt encrypts plain with key.
	Encrypt(plain, key []byte) ([]byte, error)

	// Decrypt decrypts encrypted with key.
	Decrypt(encrypted, key []byte) ([]byte, error)
}

// PaddingScheme selects a block-padding implementation
type PaddingScheme uint8

const (
	// PaddingPKCS7 uses block-size-relative byte padding
	PaddingPKCS7 PaddingScheme = iota
)

// String returns the string representation of the padding scheme
func (s PaddingScheme) String() string {
	switch s {
	case PaddingPKCS7:
		return "pkcs7"
	default:
		return "unknown"
	}
}

// NewPadding returns the padding strategy for the given scheme.
func NewPadding(scheme PaddingScheme) (PaddingStrategy, error) {
	switch scheme {
	case PaddingPKCS7:
		return PKCS7{}, nil
	default:
		return nil, &ParameterError{
			Field:   "scheme",
			Value:   scheme,
			Message: "unsupported padding scheme",
		}
	}
}

// validateKey rejects empty keys.
func validateKey(key []byte) error {
	if len(key) == 0 {
		return &KeySizeError{Size: 0}
	}
	return nil
}
