package classical

// AlphabetSize is the number of symbols the substitution cipher
// recognizes; substitution keys must be exactly this long.
const AlphabetSize = 62

// SubstitutionCipher implements a keyed monoalphabetic substitution
// over a fixed alphabet of uppercase letters, lowercase letters and
// digits, in that order. Bytes outside the alphabet pass through
// unchanged in both directions. The alphabet is built once at
// construction and never changes.
type SubstitutionCipher struct {
	alphabet []byte
	index    [256]int // byte value -> alphabet position, -1 if absent
}

// NewSubstitutionCipher creates a substitution cipher over the fixed
// 62-symbol alphabet A-Z, a-z, 0-9.
func NewSubstitutionCipher() *SubstitutionCipher {
	c := &SubstitutionCipher{alphabet: make([]byte, 0, AlphabetSize)}
	for b := byte('A'); b <= 'Z'; b++ {
		c.alphabet = append(c.alphabet, b)
	}
	for b := byte('a'); b <= 'z'; b++ {
		c.alphabet = append(c.alphabet, b)
	}
	for b := byte('0'); b <= '9'; b++ {
		c.alphabet = append(c.alphabet, b)
	}

	for i := range c.index {
		c.index[i] = -1
	}
	for i, b := range c.alphabet {
		c.index[b] = i
	}
	return c
}

// Alphabet returns a copy of the cipher's alphabet in order.
func (c *SubstitutionCipher) Alphabet() []byte {
	return append([]byte(nil), c.alphabet...)
}

// substitute maps each alphabet byte of text to the key byte at the
// same alphabet position; everything else is copied through.
func (c *SubstitutionCipher) substitute(text, key []byte) []byte {
	result := make([]byte, len(text))
	for i, b := range text {
		if pos := c.index[b]; pos >= 0 {
			result[i] = key[pos]
		} else {
			result[i] = b
		}
	}
	return result
}

// Encrypt substitutes every alphabet byte of plain according to key.
// The key must be exactly AlphabetSize bytes long; it is expected to
// be a permutation of the alphabet, but only the length is checked.
func (c *SubstitutionCipher) Encrypt(plain, key []byte) ([]byte, error) {
	if len(key) != len(c.alphabet) {
		return nil, &KeySizeError{Size: len(key)}
	}
	return c.substitute(plain, key), nil
}

// Decrypt inverts Encrypt by building the reverse key and substituting
// with it. Round-tripping requires key to be a true permutation of the
// alphabet; with duplicate or foreign key bytes the output is
// undefined. Callers that cannot trust their key source should run
// ValidateSubstitutionKey first.
func (c *SubstitutionCipher) Decrypt(encrypted, key []byte) ([]byte, error) {
	if len(key) != len(c.alphabet) {
		return nil, &KeySizeError{Size: len(key)}
	}

	reverseKey := make([]byte, len(key))
	for i, b := range key {
		if pos := c.index[b]; pos >= 0 {
			reverseKey[pos] = c.alphabet[i]
		}
	}
	return c.substitute(encrypted, reverseKey), nil
}

// ValidateSubstitutionKey reports whether key is a true permutation of
// the cipher's alphabet. Encrypt and Decrypt deliberately skip this
// check, matching the documented precondition that keys are
// permutations.
func (c *SubstitutionCipher) ValidateSubstitutionKey(key []byte) error {
	if len(key) != len(c.alphabet) {
		return &KeySizeError{Size: len(key)}
	}

	var seen [256]bool
	for _, b := range key {
		if c.index[b] < 0 {
			return &ParameterError{
				Field:   "key",
				Value:   b,
				Message: "key contains a byte outside the alphabet",
			}
		}
		if seen[b] {
			return &ParameterError{
				Field:   "key",
				Value:   b,
				Message: "key contains duplicate bytes",
			}
		}
		seen[b] = true
	}
	return nil
}
