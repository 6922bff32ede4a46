package classical

import "sort"

// TranspositionCipher implements a keyed columnar transposition over
// block-padded input. The key's length sets the column count and the
// padding block length; the key's byte values set the order in which
// columns are read out.
type TranspositionCipher struct {
	padding PaddingStrategy
}

// NewTranspositionCipher creates a transposition cipher composed with
// the given padding strategy.
func NewTranspositionCipher(padding PaddingStrategy) (*TranspositionCipher, error) {
	if padding == nil {
		return nil, &ParameterError{
			Field:   "padding",
			Message: "padding strategy cannot be nil",
		}
	}
	return &TranspositionCipher{padding: padding}, nil
}

// Encrypt pads plain to a multiple of len(key), lays it into rows of
// len(key) columns and reads the columns back in key-sorted order.
// The ciphertext length always equals the padded plaintext length.
func (c *TranspositionCipher) Encrypt(plain, key []byte) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	padded, err := c.padding.ApplyPadding(plain, len(key))
	if err != nil {
		return nil, NewCipherError("encrypt", err)
	}

	matrix := buildMatrix(padded, len(key))
	indices := sortedKeyIndices(key)

	encrypted := make([]byte, 0, len(padded))
	for _, col := range indices {
		for _, row := range matrix {
			encrypted = append(encrypted, row[col])
		}
	}
	return encrypted, nil
}

// Decrypt refills the matrix column by column in key-sorted order,
// flattens it row-major and strips the padding.
func (c *TranspositionCipher) Decrypt(encrypted, key []byte) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	keyLength := len(key)
	if len(encrypted)%keyLength != 0 {
		return nil, ErrInvalidMessageLength
	}

	numRows := len(encrypted) / keyLength
	matrix := make([][]byte, numRows)
	for i := range matrix {
		matrix[i] = make([]byte, keyLength)
	}

	indices := sortedKeyIndices(key)
	pos := 0
	for _, col := range indices {
		for row := 0; row < numRows; row++ {
			matrix[row][col] = encrypted[pos]
			pos++
		}
	}

	flattened := make([]byte, 0, len(encrypted))
	for _, row := range matrix {
		flattened = append(flattened, row...)
	}

	plain, err := c.padding.StripPadding(flattened, keyLength)
	if err != nil {
		return nil, NewCipherError("decrypt", err)
	}
	return plain, nil
}

// buildMatrix lays data into rows of columnCount bytes, row-major.
// Padding already makes the length an exact multiple, but a short
// final chunk is tolerated: the rest of its row stays zero filled.
func buildMatrix(data []byte, columnCount int) [][]byte {
	numRows := (len(data) + columnCount - 1) / columnCount
	matrix := make([][]byte, 0, numRows)
	for off := 0; off < len(data); off += columnCount {
		end := off + columnCount
		if end > len(data) {
			end = len(data)
		}
		row := make([]byte, columnCount)
		copy(row, data[off:end])
		matrix = append(matrix, row)
	}
	return matrix
}

// sortedKeyIndices returns the column indices 0..len(key) ordered by
// ascending key byte value. Equal bytes keep their original relative
// order, so the permutation is a pure function of the key and both
// sides recompute it identically.
func sortedKeyIndices(key []byte) []int {
	indices := make([]int, len(key))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return key[indices[a]] < key[indices[b]]
	})
	return indices
}
