package classical

import (
	"errors"
	"fmt"
)

// Error types represent the different categories of failures. All of
// them are deterministic input-validation errors: nothing here is
// transient or retryable, and no operation ever returns a partial
// result alongside an error.

// KeySizeError reports a key whose length is unacceptable for the
// chosen cipher (empty for transposition, wrong length for
// substitution).
type KeySizeError struct {
	Size int // The offending key length
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("invalid key size: %d", e.Size)
}

// ParameterError reports an invalid argument: empty data, an
// out-of-range block length, a data length that is not a multiple of
// the block length, or a bad constructor argument.
type ParameterError struct {
	Field   string // The parameter that failed validation
	Value   any    // The invalid value, if useful
	Message string // Human-readable error message
}

func (e *ParameterError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parameter error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("parameter error: %s", e.Message)
}

// PaddingError reports malformed padding bytes: a padding value of
// zero, a value larger than the block length, or trailing bytes that
// do not all equal the claimed value.
type PaddingError struct {
	Value   byte   // The claimed padding value read from the last byte
	Message string // Human-readable error message
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("padding error: %s", e.Message)
}

// CipherError wraps a lower-layer error with the cipher operation that
// hit it. Unwrap exposes the cause, so errors.Is and errors.As see
// through the wrapper.
type CipherError struct {
	Op      string // "encrypt" or "decrypt"
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Op, e.Message)
}

func (e *CipherError) Unwrap() error {
	return e.Err
}

// Common sentinel errors
var (
	// ErrInvalidMessageLength means a ciphertext length is not a
	// multiple of the key length.
	ErrInvalidMessageLength = errors.New("encrypted message has an invalid length")
)

// Helper functions for creating structured errors

// NewParameterError creates a new parameter error
func NewParameterError(field string, value any, message string) error {
	return &ParameterError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewCipherError wraps err with the cipher operation that failed
func NewCipherError(op string, err error) error {
	return &CipherError{
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}
}

// Error checking helpers

// IsKeySizeError checks if an error is a key size error
func IsKeySizeError(err error) bool {
	var ke *KeySizeError
	return errors.As(err, &ke)
}

// IsParameterError checks if an error is a parameter error
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

// IsPaddingError checks if an error is a padding error
func IsPaddingError(err error) bool {
	var pe *PaddingError
	return errors.As(err, &pe)
}
